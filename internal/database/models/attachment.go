package models

import (
	"github.com/google/uuid"
)

// Attachment represents a file record attached to a meeting. The file bytes
// live in external storage; only the descriptor is kept here.
type Attachment struct {
	BaseModel
	MeetingID   uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index" validate:"required"`
	FileName    string    `json:"file_name" gorm:"not null;size:255" validate:"required,max=255"`
	ContentType string    `json:"content_type" gorm:"size:100"`
	SizeBytes   int64     `json:"size_bytes"`
	StoragePath string    `json:"storage_path" gorm:"size:500"`
}

// TableName returns the table name for Attachment
func (Attachment) TableName() string {
	return "attachments"
}
