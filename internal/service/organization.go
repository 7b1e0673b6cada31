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

// OrganizationService handles business logic for partner organizations
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	geoRepo   repository.GeographyRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, geoRepo repository.GeographyRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		geoRepo:   geoRepo,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name             string     `json:"name" validate:"required,min=1,max=200"`
	Status           string     `json:"status" validate:"required"`
	MissionArea      string     `json:"mission_area,omitempty"`
	OrganizationType string     `json:"organization_type,omitempty"`
	Address          string     `json:"address,omitempty" validate:"max=255"`
	City             string     `json:"city,omitempty" validate:"max=100"`
	State            string     `json:"state,omitempty" validate:"max=2"`
	Zip              string     `json:"zip,omitempty" validate:"max=10"`
	Website          string     `json:"website,omitempty" validate:"omitempty,url,max=255"`
	Phone            string     `json:"phone,omitempty" validate:"max=30"`
	RegionID         *uuid.UUID `json:"region_id,omitempty"`
	ChapterID        *uuid.UUID `json:"chapter_id,omitempty"`
	CountyID         *uuid.UUID `json:"county_id,omitempty"`
}

// UpdateOrganizationRequest represents a partial update; nil fields are left unmodified
type UpdateOrganizationRequest struct {
	Name             *string    `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Status           *string    `json:"status,omitempty"`
	MissionArea      *string    `json:"mission_area,omitempty"`
	OrganizationType *string    `json:"organization_type,omitempty"`
	Address          *string    `json:"address,omitempty" validate:"omitempty,max=255"`
	City             *string    `json:"city,omitempty" validate:"omitempty,max=100"`
	State            *string    `json:"state,omitempty" validate:"omitempty,max=2"`
	Zip              *string    `json:"zip,omitempty" validate:"omitempty,max=10"`
	Website          *string    `json:"website,omitempty" validate:"omitempty,url,max=255"`
	Phone            *string    `json:"phone,omitempty" validate:"omitempty,max=30"`
	RegionID         *uuid.UUID `json:"region_id,omitempty"`
	ChapterID        *uuid.UUID `json:"chapter_id,omitempty"`
	CountyID         *uuid.UUID `json:"county_id,omitempty"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID               uuid.UUID        `json:"id"`
	Name             string           `json:"name"`
	Status           string           `json:"status"`
	MissionArea      string           `json:"mission_area,omitempty"`
	OrganizationType string           `json:"organization_type,omitempty"`
	Address          string           `json:"address,omitempty"`
	City             string           `json:"city,omitempty"`
	State            string           `json:"state,omitempty"`
	Zip              string           `json:"zip,omitempty"`
	Website          string           `json:"website,omitempty"`
	Phone            string           `json:"phone,omitempty"`
	Region           *models.Region   `json:"region,omitempty"`
	Chapter          *models.Chapter  `json:"chapter,omitempty"`
	County           *models.County   `json:"county,omitempty"`
	PeopleCount      int64            `json:"people_count"`
	MeetingCount     int64            `json:"meeting_count"`
	People           []models.Person  `json:"people,omitempty"`
	Meetings         []models.Meeting `json:"meetings,omitempty"`
	CreatedAt        string           `json:"created_at"`
	CreatedBy        string           `json:"created_by,omitempty"`
	UpdatedAt        string           `json:"updated_at"`
	UpdatedBy        string           `json:"updated_by,omitempty"`
}

// Create creates a new organization stamped with the acting principal
func (s *OrganizationService) Create(ctx context.Context, actor string, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateOrganizationEnums(req.Status, req.MissionArea, req.OrganizationType); err != nil {
		return nil, err
	}

	org := &models.Organization{
		BaseModel: models.BaseModel{
			CreatedBy: actor,
			UpdatedBy: actor,
		},
		Name:             req.Name,
		Status:           models.OrganizationStatus(req.Status),
		MissionArea:      models.MissionArea(req.MissionArea),
		OrganizationType: models.OrganizationType(req.OrganizationType),
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		Zip:              req.Zip,
		Website:          req.Website,
		Phone:            req.Phone,
		RegionID:         req.RegionID,
		ChapterID:        req.ChapterID,
		CountyID:         req.CountyID,
	}

	log := logger.WithContext(ctx).WithField("organization", req.Name)
	if err := s.repo.Create(ctx, org); err != nil {
		log.Errorf("Failed to create organization: %v", err)
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	log.Infof("Created organization %s", org.ID)

	// Re-fetch so the response carries the joined geography
	created, err := s.repo.GetByID(ctx, org.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload organization: %w", err)
	}

	return s.toResponse(created), nil
}

// GetByID retrieves an organization by ID with its related entities
func (s *OrganizationService) GetByID(ctx context.Context, id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return s.toResponse(org), nil
}

// GetAll retrieves organizations matching the filters, most recently updated first
func (s *OrganizationService) GetAll(ctx context.Context, filters *repository.SearchFilters) ([]OrganizationResponse, error) {
	orgs, err := s.repo.GetAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		responses[i] = *s.toResponse(&org)
	}
	return responses, nil
}

// Update applies a partial update and refreshes the updated-by stamp
func (s *OrganizationService) Update(ctx context.Context, id uuid.UUID, actor string, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Confirm the row exists before updating
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	fields := map[string]interface{}{"updated_by": actor}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Status != nil {
		if !models.OrganizationStatus(*req.Status).IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		fields["status"] = *req.Status
	}
	if req.MissionArea != nil {
		if *req.MissionArea != "" && !models.MissionArea(*req.MissionArea).IsValid() {
			return nil, apperrors.ErrInvalidMissionArea
		}
		fields["mission_area"] = *req.MissionArea
	}
	if req.OrganizationType != nil {
		if *req.OrganizationType != "" && !models.OrganizationType(*req.OrganizationType).IsValid() {
			return nil, apperrors.ErrInvalidOrganizationType
		}
		fields["organization_type"] = *req.OrganizationType
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.State != nil {
		fields["state"] = *req.State
	}
	if req.Zip != nil {
		fields["zip"] = *req.Zip
	}
	if req.Website != nil {
		fields["website"] = *req.Website
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.RegionID != nil {
		fields["region_id"] = *req.RegionID
	}
	if req.ChapterID != nil {
		fields["chapter_id"] = *req.ChapterID
	}
	if req.CountyID != nil {
		fields["county_id"] = *req.CountyID
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	org, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload organization: %w", err)
	}
	return s.toResponse(org), nil
}

// Delete removes an organization; deleting a missing row succeeds
func (s *OrganizationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	logger.WithContext(ctx).Infof("Deleted organization %s", id)
	return nil
}

// GetRegions retrieves all regions ordered by name
func (s *OrganizationService) GetRegions(ctx context.Context) ([]models.Region, error) {
	regions, err := s.geoRepo.GetRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get regions: %w", err)
	}
	if regions == nil {
		regions = []models.Region{}
	}
	return regions, nil
}

// GetChaptersByRegion retrieves the chapters of one region ordered by name
func (s *OrganizationService) GetChaptersByRegion(ctx context.Context, regionID uuid.UUID) ([]models.Chapter, error) {
	chapters, err := s.geoRepo.GetChaptersByRegion(ctx, regionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chapters: %w", err)
	}
	if chapters == nil {
		chapters = []models.Chapter{}
	}
	return chapters, nil
}

// GetCountiesByChapter retrieves the counties of one chapter ordered by name
func (s *OrganizationService) GetCountiesByChapter(ctx context.Context, chapterID uuid.UUID) ([]models.County, error) {
	counties, err := s.geoRepo.GetCountiesByChapter(ctx, chapterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get counties: %w", err)
	}
	if counties == nil {
		counties = []models.County{}
	}
	return counties, nil
}

// GetDashboardStats returns the backend aggregate summary unmodified
func (s *OrganizationService) GetDashboardStats(ctx context.Context) (*repository.DashboardStats, error) {
	stats, err := s.repo.GetDashboardStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return stats, nil
}

// SearchSimilar finds likely duplicate organizations by fuzzy name match,
// optionally scoped to a region
func (s *OrganizationService) SearchSimilar(ctx context.Context, name string, regionID *uuid.UUID) ([]repository.DuplicateMatch, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("name", "name is required")
	}
	matches, err := s.repo.SearchSimilar(ctx, name, regionID)
	if err != nil {
		return nil, fmt.Errorf("failed to search similar organizations: %w", err)
	}
	return matches, nil
}

func validateOrganizationEnums(status, missionArea, orgType string) error {
	if !models.OrganizationStatus(status).IsValid() {
		return apperrors.ErrInvalidStatus
	}
	if missionArea != "" && !models.MissionArea(missionArea).IsValid() {
		return apperrors.ErrInvalidMissionArea
	}
	if orgType != "" && !models.OrganizationType(orgType).IsValid() {
		return apperrors.ErrInvalidOrganizationType
	}
	return nil
}

// toResponse converts an organization model to response
func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:               org.ID,
		Name:             org.Name,
		Status:           string(org.Status),
		MissionArea:      string(org.MissionArea),
		OrganizationType: string(org.OrganizationType),
		Address:          org.Address,
		City:             org.City,
		State:            org.State,
		Zip:              org.Zip,
		Website:          org.Website,
		Phone:            org.Phone,
		Region:           org.Region,
		Chapter:          org.Chapter,
		County:           org.County,
		PeopleCount:      org.PeopleCount,
		MeetingCount:     org.MeetingCount,
		People:           org.People,
		Meetings:         org.Meetings,
		CreatedAt:        org.CreatedAt.Format(time.RFC3339),
		CreatedBy:        org.CreatedBy,
		UpdatedAt:        org.UpdatedAt.Format(time.RFC3339),
		UpdatedBy:        org.UpdatedBy,
	}
}
