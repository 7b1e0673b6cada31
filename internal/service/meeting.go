package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"partner-crm-backend/internal/database/models"
	apperrors "partner-crm-backend/internal/errors"
	"partner-crm-backend/internal/logger"
	"partner-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultUpcomingLimit caps the upcoming-meetings list when no limit is given
const DefaultUpcomingLimit = 10

// MeetingService handles business logic for meetings
type MeetingService struct {
	repo       repository.MeetingRepositoryInterface
	orgRepo    repository.OrganizationRepositoryInterface
	personRepo repository.PersonRepositoryInterface
	validator  *validator.Validate
}

// NewMeetingService creates a new meeting service
func NewMeetingService(repo repository.MeetingRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, personRepo repository.PersonRepositoryInterface, validator *validator.Validate) *MeetingService {
	return &MeetingService{
		repo:       repo,
		orgRepo:    orgRepo,
		personRepo: personRepo,
		validator:  validator,
	}
}

// CreateMeetingRequest represents the request to create a meeting
type CreateMeetingRequest struct {
	OrganizationID uuid.UUID   `json:"organization_id" validate:"required"`
	Date           time.Time   `json:"date" validate:"required"`
	Location       string      `json:"location,omitempty" validate:"max=255"`
	Summary        string      `json:"summary,omitempty"`
	FollowUpDate   *time.Time  `json:"follow_up_date,omitempty"`
	AttendeeIDs    []uuid.UUID `json:"attendee_ids,omitempty"`
}

// UpdateMeetingRequest represents a partial update; nil fields are left
// unmodified. A non-nil AttendeeIDs replaces the attendee list, and
// ClearFollowUpDate removes an existing follow-up date, since an absent
// FollowUpDate cannot be told apart from a null one.
type UpdateMeetingRequest struct {
	Date              *time.Time  `json:"date,omitempty"`
	Location          *string     `json:"location,omitempty" validate:"omitempty,max=255"`
	Summary           *string     `json:"summary,omitempty"`
	FollowUpDate      *time.Time  `json:"follow_up_date,omitempty"`
	ClearFollowUpDate bool        `json:"clear_follow_up_date,omitempty"`
	AttendeeIDs       []uuid.UUID `json:"attendee_ids,omitempty"`
}

// AddAttachmentRequest records a file descriptor against a meeting
type AddAttachmentRequest struct {
	FileName    string `json:"file_name" validate:"required,max=255"`
	ContentType string `json:"content_type,omitempty" validate:"max=100"`
	SizeBytes   int64  `json:"size_bytes,omitempty" validate:"omitempty,min=0"`
	StoragePath string `json:"storage_path,omitempty" validate:"max=500"`
}

// MeetingResponse represents the response for meeting operations
type MeetingResponse struct {
	ID             uuid.UUID            `json:"id"`
	OrganizationID uuid.UUID            `json:"organization_id"`
	Organization   *models.Organization `json:"organization,omitempty"`
	Date           time.Time            `json:"date"`
	Location       string               `json:"location,omitempty"`
	Summary        string               `json:"summary,omitempty"`
	FollowUpDate   *time.Time           `json:"follow_up_date,omitempty"`
	FollowUpDue    bool                 `json:"follow_up_due"`
	Overdue        bool                 `json:"overdue"`
	Attendees      []models.Person      `json:"attendees,omitempty"`
	Attachments    []models.Attachment  `json:"attachments,omitempty"`
	CreatedAt      string               `json:"created_at"`
	CreatedBy      string               `json:"created_by,omitempty"`
	UpdatedAt      string               `json:"updated_at"`
	UpdatedBy      string               `json:"updated_by,omitempty"`
}

// Create creates a new meeting stamped with the acting principal. The target
// organization must exist and every attendee must be a contact of it.
func (s *MeetingService) Create(ctx context.Context, actor string, req *CreateMeetingRequest) (*MeetingResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.orgRepo.GetByID(ctx, req.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to check organization: %w", err)
	}
	if err := s.checkAttendees(ctx, req.OrganizationID, req.AttendeeIDs); err != nil {
		return nil, err
	}

	meeting := &models.Meeting{
		BaseModel: models.BaseModel{
			CreatedBy: actor,
			UpdatedBy: actor,
		},
		OrganizationID: req.OrganizationID,
		Date:           req.Date,
		Location:       req.Location,
		Summary:        req.Summary,
		FollowUpDate:   req.FollowUpDate,
	}

	log := logger.WithContext(ctx).WithField("organization_id", req.OrganizationID)
	if err := s.repo.Create(ctx, meeting, req.AttendeeIDs); err != nil {
		log.Errorf("Failed to create meeting: %v", err)
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	log.Infof("Created meeting %s with %d attendees", meeting.ID, len(req.AttendeeIDs))

	created, err := s.repo.GetByID(ctx, meeting.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload meeting: %w", err)
	}
	return s.toResponse(created), nil
}

// GetByID retrieves a meeting by ID with its organization, attendees and attachments
func (s *MeetingService) GetByID(ctx context.Context, id uuid.UUID) (*MeetingResponse, error) {
	meeting, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return s.toResponse(meeting), nil
}

// GetAll retrieves meetings matching the filters, newest first
func (s *MeetingService) GetAll(ctx context.Context, filters *repository.SearchFilters) ([]MeetingResponse, error) {
	meetings, err := s.repo.GetAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get meetings: %w", err)
	}
	return s.toResponses(meetings), nil
}

// GetByOrganization retrieves all meetings for one organization, newest first
func (s *MeetingService) GetByOrganization(ctx context.Context, orgID uuid.UUID) ([]MeetingResponse, error) {
	meetings, err := s.repo.GetByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get meetings: %w", err)
	}
	return s.toResponses(meetings), nil
}

// GetUpcoming retrieves meetings dated today or later, soonest first
func (s *MeetingService) GetUpcoming(ctx context.Context, limit int) ([]MeetingResponse, error) {
	if limit < 1 {
		limit = DefaultUpcomingLimit
	}
	meetings, err := s.repo.GetUpcoming(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming meetings: %w", err)
	}
	return s.toResponses(meetings), nil
}

// GetFollowUps retrieves meetings whose follow-up date has arrived, ascending
// by follow-up date
func (s *MeetingService) GetFollowUps(ctx context.Context) ([]MeetingResponse, error) {
	meetings, err := s.repo.GetFollowUps(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get follow-ups: %w", err)
	}
	return s.toResponses(meetings), nil
}

// Update applies a partial update and refreshes the updated-by stamp
func (s *MeetingService) Update(ctx context.Context, id uuid.UUID, actor string, req *UpdateMeetingRequest) (*MeetingResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	if req.AttendeeIDs != nil {
		if err := s.checkAttendees(ctx, existing.OrganizationID, req.AttendeeIDs); err != nil {
			return nil, err
		}
	}

	fields := map[string]interface{}{"updated_by": actor}
	if req.Date != nil {
		fields["date"] = *req.Date
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Summary != nil {
		fields["summary"] = *req.Summary
	}
	if req.ClearFollowUpDate {
		fields["follow_up_date"] = nil
	} else if req.FollowUpDate != nil {
		fields["follow_up_date"] = *req.FollowUpDate
	}

	if err := s.repo.Update(ctx, id, fields, req.AttendeeIDs); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}

	meeting, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload meeting: %w", err)
	}
	return s.toResponse(meeting), nil
}

// Delete removes a meeting; deleting a missing row succeeds
func (s *MeetingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}

// AddAttachment records a file descriptor against an existing meeting
func (s *MeetingService) AddAttachment(ctx context.Context, meetingID uuid.UUID, actor string, req *AddAttachmentRequest) (*MeetingResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(ctx, meetingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	attachment := &models.Attachment{
		BaseModel: models.BaseModel{
			CreatedBy: actor,
			UpdatedBy: actor,
		},
		MeetingID:   meetingID,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
		StoragePath: req.StoragePath,
	}
	if err := s.repo.AddAttachment(ctx, attachment); err != nil {
		return nil, fmt.Errorf("failed to add attachment: %w", err)
	}

	meeting, err := s.repo.GetByID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload meeting: %w", err)
	}
	return s.toResponse(meeting), nil
}

// DeleteAttachment removes an attachment record; a missing row succeeds
func (s *MeetingService) DeleteAttachment(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteAttachment(ctx, id); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}

// checkAttendees confirms the list holds no repeats and that each attendee
// exists and is a contact of the meeting's organization. Repeats would
// violate the attendee link primary key mid-transaction.
func (s *MeetingService) checkAttendees(ctx context.Context, orgID uuid.UUID, attendeeIDs []uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(attendeeIDs))
	for _, personID := range attendeeIDs {
		if _, dup := seen[personID]; dup {
			return apperrors.ErrDuplicateAttendee
		}
		seen[personID] = struct{}{}
		person, err := s.personRepo.GetByID(ctx, personID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrPersonNotFound
			}
			return fmt.Errorf("failed to check attendee: %w", err)
		}
		if person.OrganizationID != orgID {
			return apperrors.ErrAttendeeNotInOrg
		}
	}
	return nil
}

func (s *MeetingService) toResponses(meetings []models.Meeting) []MeetingResponse {
	responses := make([]MeetingResponse, len(meetings))
	for i, meeting := range meetings {
		responses[i] = *s.toResponse(&meeting)
	}
	return responses
}

// toResponse converts a meeting model to response. The overdue classification
// (follow-up date strictly before now) is computed here, at render time.
func (s *MeetingService) toResponse(meeting *models.Meeting) *MeetingResponse {
	now := time.Now()

	attendees := make([]models.Person, 0, len(meeting.Attendees))
	for _, link := range meeting.Attendees {
		if link.Person != nil {
			attendees = append(attendees, *link.Person)
		}
	}

	return &MeetingResponse{
		ID:             meeting.ID,
		OrganizationID: meeting.OrganizationID,
		Organization:   meeting.Organization,
		Date:           meeting.Date,
		Location:       meeting.Location,
		Summary:        meeting.Summary,
		FollowUpDate:   meeting.FollowUpDate,
		FollowUpDue:    meeting.HasFollowUpDue(now),
		Overdue:        meeting.FollowUpDate != nil && meeting.FollowUpDate.Before(now),
		Attendees:      attendees,
		Attachments:    meeting.Attachments,
		CreatedAt:      meeting.CreatedAt.Format(time.RFC3339),
		CreatedBy:      meeting.CreatedBy,
		UpdatedAt:      meeting.UpdatedAt.Format(time.RFC3339),
		UpdatedBy:      meeting.UpdatedBy,
	}
}
