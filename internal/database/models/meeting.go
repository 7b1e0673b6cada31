package models

import (
	"time"

	"github.com/google/uuid"
)

// Meeting represents a logged interaction with a partner organization
type Meeting struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date           time.Time  `json:"date" gorm:"not null;index" validate:"required"`
	Location       string     `json:"location" gorm:"size:255"`
	Summary        string     `json:"summary" gorm:"type:text"`
	FollowUpDate   *time.Time `json:"follow_up_date,omitempty" gorm:"index"`

	// Relationships
	Organization *Organization     `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Attendees    []MeetingAttendee `json:"attendees,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	Attachments  []Attachment      `json:"attachments,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
}

// MeetingAttendee links a person to a meeting, keeping the caller-supplied order
type MeetingAttendee struct {
	MeetingID uuid.UUID `json:"meeting_id" gorm:"type:uuid;primaryKey"`
	PersonID  uuid.UUID `json:"person_id" gorm:"type:uuid;primaryKey"`
	Position  int       `json:"position" gorm:"not null;default:0"`

	Person *Person `json:"person,omitempty" gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// TableName returns the table name for MeetingAttendee
func (MeetingAttendee) TableName() string {
	return "meeting_attendees"
}

// HasFollowUpDue reports whether a follow-up is due as of the given moment
func (m *Meeting) HasFollowUpDue(now time.Time) bool {
	return m.FollowUpDate != nil && !m.FollowUpDate.After(now)
}
