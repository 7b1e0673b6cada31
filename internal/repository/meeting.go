package repository

import (
	"context"
	"time"

	"partner-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingRepository handles database operations for meetings
type MeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// Create creates a new meeting together with its attendee links
func (r *MeetingRepository) Create(ctx context.Context, meeting *models.Meeting, attendeeIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meeting).Error; err != nil {
			return err
		}
		return insertAttendees(tx, meeting.ID, attendeeIDs)
	})
}

// GetByID retrieves a meeting by ID with its organization, ordered attendees
// and attachments
func (r *MeetingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.db.WithContext(ctx).
		Preload("Organization").
		Preload("Attendees", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Attendees.Person").
		Preload("Attachments").
		First(&meeting, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// GetAll retrieves meetings matching the filters, newest first
func (r *MeetingRepository) GetAll(ctx context.Context, filters *SearchFilters) ([]models.Meeting, error) {
	var meetings []models.Meeting
	query := r.db.WithContext(ctx).Model(&models.Meeting{}).Preload("Organization")
	query = applyFilters(query, filters, meetingFilterColumns())
	if err := query.Order("date DESC").Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// GetByOrganization retrieves all meetings for one organization, newest first
func (r *MeetingRepository) GetByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("date DESC").
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

// GetUpcoming retrieves meetings dated today or later, soonest first, capped at limit
func (r *MeetingRepository) GetUpcoming(ctx context.Context, limit int) ([]models.Meeting, error) {
	var meetings []models.Meeting
	today := startOfDay(time.Now())
	err := r.db.WithContext(ctx).
		Preload("Organization").
		Where("date >= ?", today).
		Order("date ASC").
		Limit(limit).
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

// GetFollowUps retrieves meetings whose follow-up date has arrived, ascending
// by follow-up date
func (r *MeetingRepository) GetFollowUps(ctx context.Context) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := r.db.WithContext(ctx).
		Preload("Organization").
		Where("follow_up_date IS NOT NULL AND follow_up_date <= ?", endOfDay(time.Now())).
		Order("follow_up_date ASC").
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

// Update applies a partial update keyed by id; a non-nil attendeeIDs replaces
// the attendee list in the given order
func (r *MeetingRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}, attendeeIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(&models.Meeting{}).Where("id = ?", id).Updates(fields).Error; err != nil {
				return err
			}
		}
		if attendeeIDs == nil {
			return nil
		}
		if err := tx.Delete(&models.MeetingAttendee{}, "meeting_id = ?", id).Error; err != nil {
			return err
		}
		return insertAttendees(tx, id, attendeeIDs)
	})
}

// Delete removes a meeting by id; deleting a missing row is not an error
func (r *MeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Meeting{}, "id = ?", id).Error
}

// AddAttachment records a file descriptor against a meeting
func (r *MeetingRepository) AddAttachment(ctx context.Context, attachment *models.Attachment) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}

// DeleteAttachment removes an attachment record by id
func (r *MeetingRepository) DeleteAttachment(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Attachment{}, "id = ?", id).Error
}

func insertAttendees(tx *gorm.DB, meetingID uuid.UUID, attendeeIDs []uuid.UUID) error {
	for i, personID := range attendeeIDs {
		link := models.MeetingAttendee{
			MeetingID: meetingID,
			PersonID:  personID,
			Position:  i,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

func meetingFilterColumns() filterColumns {
	return filterColumns{
		search: func(db *gorm.DB, query string) *gorm.DB {
			q := "%" + query + "%"
			return db.Where("location ILIKE ? OR summary ILIKE ?", q, q)
		},
		organization: "organization_id",
		dateField:    "date",
		updatedAt:    "updated_at",
	}
}
