package models

import (
	"github.com/google/uuid"
)

// Person represents a contact at a partner organization
type Person struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	FirstName      string    `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName       string    `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Title          string    `json:"title" gorm:"size:100"`
	Email          string    `json:"email" gorm:"size:255;index" validate:"omitempty,email,max=255"`
	Phone          string    `json:"phone" gorm:"size:30"`
	Notes          string    `json:"notes" gorm:"type:text"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Person
func (Person) TableName() string {
	return "people"
}
