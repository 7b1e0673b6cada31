package models

import (
	"time"

	"github.com/google/uuid"
)

// Region is the top level of the geographic hierarchy
type Region struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Chapters []Chapter `json:"chapters,omitempty" gorm:"foreignKey:RegionID;constraint:OnDelete:CASCADE"`
}

// Chapter is a regional subdivision served by one local office
type Chapter struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RegionID  uuid.UUID `json:"region_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name      string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Region   *Region  `json:"region,omitempty" gorm:"foreignKey:RegionID"`
	Counties []County `json:"counties,omitempty" gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE"`
}

// County is the finest grain of the geographic hierarchy
type County struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ChapterID uuid.UUID `json:"chapter_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name      string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	State     string    `json:"state" gorm:"size:2"`
	FIPSCode  string    `json:"fips_code" gorm:"size:5;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Chapter *Chapter `json:"chapter,omitempty" gorm:"foreignKey:ChapterID"`
}

// TableName returns the table name for Region
func (Region) TableName() string {
	return "regions"
}

// TableName returns the table name for Chapter
func (Chapter) TableName() string {
	return "chapters"
}

// TableName returns the table name for County
func (County) TableName() string {
	return "counties"
}
