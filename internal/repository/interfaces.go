package repository

import (
	"context"

	"partner-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	GetAll(ctx context.Context, filters *SearchFilters) ([]models.Organization, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
	SearchSimilar(ctx context.Context, name string, regionID *uuid.UUID) ([]DuplicateMatch, error)
}

// PersonRepositoryInterface defines the interface for person repository operations
type PersonRepositoryInterface interface {
	Create(ctx context.Context, person *models.Person) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Person, error)
	GetAll(ctx context.Context, filters *SearchFilters) ([]models.Person, error)
	GetByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Person, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MeetingRepositoryInterface defines the interface for meeting repository operations
type MeetingRepositoryInterface interface {
	Create(ctx context.Context, meeting *models.Meeting, attendeeIDs []uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Meeting, error)
	GetAll(ctx context.Context, filters *SearchFilters) ([]models.Meeting, error)
	GetByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Meeting, error)
	GetUpcoming(ctx context.Context, limit int) ([]models.Meeting, error)
	GetFollowUps(ctx context.Context) ([]models.Meeting, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}, attendeeIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddAttachment(ctx context.Context, attachment *models.Attachment) error
	DeleteAttachment(ctx context.Context, id uuid.UUID) error
}

// GeographyRepositoryInterface defines the interface for geography lookups
type GeographyRepositoryInterface interface {
	GetRegions(ctx context.Context) ([]models.Region, error)
	GetChaptersByRegion(ctx context.Context, regionID uuid.UUID) ([]models.Chapter, error)
	GetCountiesByChapter(ctx context.Context, chapterID uuid.UUID) ([]models.County, error)
}
