package service

import (
	"context"

	"partner-crm-backend/internal/database/models"
	"partner-crm-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(ctx context.Context, actor string, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*OrganizationResponse, error)
	GetAll(ctx context.Context, filters *repository.SearchFilters) ([]OrganizationResponse, error)
	Update(ctx context.Context, id uuid.UUID, actor string, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetRegions(ctx context.Context) ([]models.Region, error)
	GetChaptersByRegion(ctx context.Context, regionID uuid.UUID) ([]models.Chapter, error)
	GetCountiesByChapter(ctx context.Context, chapterID uuid.UUID) ([]models.County, error)
	GetDashboardStats(ctx context.Context) (*repository.DashboardStats, error)
	SearchSimilar(ctx context.Context, name string, regionID *uuid.UUID) ([]repository.DuplicateMatch, error)
}

// PersonServiceInterface defines the interface for person service
type PersonServiceInterface interface {
	Create(ctx context.Context, actor string, req *CreatePersonRequest) (*PersonResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PersonResponse, error)
	GetAll(ctx context.Context, filters *repository.SearchFilters) ([]PersonResponse, error)
	GetByOrganization(ctx context.Context, orgID uuid.UUID) ([]PersonResponse, error)
	Update(ctx context.Context, id uuid.UUID, actor string, req *UpdatePersonRequest) (*PersonResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MeetingServiceInterface defines the interface for meeting service
type MeetingServiceInterface interface {
	Create(ctx context.Context, actor string, req *CreateMeetingRequest) (*MeetingResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*MeetingResponse, error)
	GetAll(ctx context.Context, filters *repository.SearchFilters) ([]MeetingResponse, error)
	GetByOrganization(ctx context.Context, orgID uuid.UUID) ([]MeetingResponse, error)
	GetUpcoming(ctx context.Context, limit int) ([]MeetingResponse, error)
	GetFollowUps(ctx context.Context) ([]MeetingResponse, error)
	Update(ctx context.Context, id uuid.UUID, actor string, req *UpdateMeetingRequest) (*MeetingResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddAttachment(ctx context.Context, meetingID uuid.UUID, actor string, req *AddAttachmentRequest) (*MeetingResponse, error)
	DeleteAttachment(ctx context.Context, id uuid.UUID) error
}
