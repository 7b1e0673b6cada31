package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"partner-crm-backend/internal/database/models"
	apperrors "partner-crm-backend/internal/errors"
	"partner-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonService handles business logic for contacts
type PersonService struct {
	repo      repository.PersonRepositoryInterface
	orgRepo   repository.OrganizationRepositoryInterface
	validator *validator.Validate
}

// NewPersonService creates a new person service
func NewPersonService(repo repository.PersonRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, validator *validator.Validate) *PersonService {
	return &PersonService{
		repo:      repo,
		orgRepo:   orgRepo,
		validator: validator,
	}
}

// CreatePersonRequest represents the request to create a person
type CreatePersonRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	FirstName      string    `json:"first_name" validate:"required,max=100"`
	LastName       string    `json:"last_name" validate:"required,max=100"`
	Title          string    `json:"title,omitempty" validate:"max=100"`
	Email          string    `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone          string    `json:"phone,omitempty" validate:"max=30"`
	Notes          string    `json:"notes,omitempty"`
}

// UpdatePersonRequest represents a partial update; nil fields are left unmodified
type UpdatePersonRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Title     *string `json:"title,omitempty" validate:"omitempty,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Notes     *string `json:"notes,omitempty"`
}

// PersonResponse represents the response for person operations
type PersonResponse struct {
	ID             uuid.UUID            `json:"id"`
	OrganizationID uuid.UUID            `json:"organization_id"`
	Organization   *models.Organization `json:"organization,omitempty"`
	FirstName      string               `json:"first_name"`
	LastName       string               `json:"last_name"`
	Title          string               `json:"title,omitempty"`
	Email          string               `json:"email,omitempty"`
	Phone          string               `json:"phone,omitempty"`
	Notes          string               `json:"notes,omitempty"`
	CreatedAt      string               `json:"created_at"`
	CreatedBy      string               `json:"created_by,omitempty"`
	UpdatedAt      string               `json:"updated_at"`
	UpdatedBy      string               `json:"updated_by,omitempty"`
}

// Create creates a new person stamped with the acting principal. The target
// organization must exist.
func (s *PersonService) Create(ctx context.Context, actor string, req *CreatePersonRequest) (*PersonResponse, error) {
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

	person := &models.Person{
		BaseModel: models.BaseModel{
			CreatedBy: actor,
			UpdatedBy: actor,
		},
		OrganizationID: req.OrganizationID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Title:          req.Title,
		Email:          req.Email,
		Phone:          req.Phone,
		Notes:          req.Notes,
	}

	if err := s.repo.Create(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	created, err := s.repo.GetByID(ctx, person.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload person: %w", err)
	}
	return s.toResponse(created), nil
}

// GetByID retrieves a person by ID with their organization
func (s *PersonService) GetByID(ctx context.Context, id uuid.UUID) (*PersonResponse, error) {
	person, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return s.toResponse(person), nil
}

// GetAll retrieves people matching the filters, most recently updated first
func (s *PersonService) GetAll(ctx context.Context, filters *repository.SearchFilters) ([]PersonResponse, error) {
	people, err := s.repo.GetAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get people: %w", err)
	}

	responses := make([]PersonResponse, len(people))
	for i, person := range people {
		responses[i] = *s.toResponse(&person)
	}
	return responses, nil
}

// GetByOrganization retrieves all contacts at one organization
func (s *PersonService) GetByOrganization(ctx context.Context, orgID uuid.UUID) ([]PersonResponse, error) {
	people, err := s.repo.GetByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get people: %w", err)
	}

	responses := make([]PersonResponse, len(people))
	for i, person := range people {
		responses[i] = *s.toResponse(&person)
	}
	return responses, nil
}

// Update applies a partial update and refreshes the updated-by stamp
func (s *PersonService) Update(ctx context.Context, id uuid.UUID, actor string, req *UpdatePersonRequest) (*PersonResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	fields := map[string]interface{}{"updated_by": actor}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}

	person, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload person: %w", err)
	}
	return s.toResponse(person), nil
}

// Delete removes a person; deleting a missing row succeeds
func (s *PersonService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	return nil
}

// toResponse converts a person model to response
func (s *PersonService) toResponse(person *models.Person) *PersonResponse {
	return &PersonResponse{
		ID:             person.ID,
		OrganizationID: person.OrganizationID,
		Organization:   person.Organization,
		FirstName:      person.FirstName,
		LastName:       person.LastName,
		Title:          person.Title,
		Email:          person.Email,
		Phone:          person.Phone,
		Notes:          person.Notes,
		CreatedAt:      person.CreatedAt.Format(time.RFC3339),
		CreatedBy:      person.CreatedBy,
		UpdatedAt:      person.UpdatedAt.Format(time.RFC3339),
		UpdatedBy:      person.UpdatedBy,
	}
}
