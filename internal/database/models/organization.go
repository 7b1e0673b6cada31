package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Organization represents a partner organization tracked by the CRM
type Organization struct {
	BaseModel
	Name             string             `json:"name" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Status           OrganizationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index" validate:"required"`
	MissionArea      MissionArea        `json:"mission_area" gorm:"type:varchar(50);index"`
	OrganizationType OrganizationType   `json:"organization_type" gorm:"type:varchar(50);index"`
	Address          string             `json:"address" gorm:"size:255"`
	City             string             `json:"city" gorm:"size:100"`
	State            string             `json:"state" gorm:"size:2"`
	Zip              string             `json:"zip" gorm:"size:10"`
	Website          string             `json:"website" gorm:"size:255"`
	Phone            string             `json:"phone" gorm:"size:30"`
	RegionID         *uuid.UUID         `json:"region_id,omitempty" gorm:"type:uuid;index"`
	ChapterID        *uuid.UUID         `json:"chapter_id,omitempty" gorm:"type:uuid;index"`
	CountyID         *uuid.UUID         `json:"county_id,omitempty" gorm:"type:uuid;index"`

	// SearchText is the precomputed free-text search field, refreshed on every write
	SearchText string `json:"-" gorm:"size:1000;index"`

	// Derived counts populated by the list/detail selects, never stored
	PeopleCount  int64 `json:"people_count" gorm:"->;-:migration"`
	MeetingCount int64 `json:"meeting_count" gorm:"->;-:migration"`

	// Relationships
	Region   *Region   `json:"region,omitempty" gorm:"foreignKey:RegionID;constraint:OnDelete:SET NULL"`
	Chapter  *Chapter  `json:"chapter,omitempty" gorm:"foreignKey:ChapterID;constraint:OnDelete:SET NULL"`
	County   *County   `json:"county,omitempty" gorm:"foreignKey:CountyID;constraint:OnDelete:SET NULL"`
	People   []Person  `json:"people,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Meetings []Meeting `json:"meetings,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

// ComputeSearchText builds the precomputed free-text search field from the
// searchable columns. Partial updates refresh it through the repository since
// GORM map updates bypass struct hooks.
func (o *Organization) ComputeSearchText() string {
	parts := []string{o.Name, string(o.MissionArea), string(o.OrganizationType), o.City, o.Website}
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.ToLower(strings.Join(nonEmpty, " "))
}

// BeforeSave refreshes the precomputed search field on full-struct writes
func (o *Organization) BeforeSave(tx *gorm.DB) error {
	o.SearchText = o.ComputeSearchText()
	return nil
}
