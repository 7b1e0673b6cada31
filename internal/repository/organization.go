package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"partner-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DashboardStats mirrors the aggregate returned by get_dashboard_stats()
type DashboardStats struct {
	TotalOrganizations  int64 `json:"total_organizations"`
	ActiveOrganizations int64 `json:"active_organizations"`
	TotalPeople         int64 `json:"total_people"`
	TotalMeetings       int64 `json:"total_meetings"`
	MeetingsThisMonth   int64 `json:"meetings_this_month"`
	FollowUpsDue        int64 `json:"follow_ups_due"`
}

// DuplicateMatch is one row returned by find_duplicate_organizations
type DuplicateMatch struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	RegionID *uuid.UUID `json:"region_id,omitempty"`
	Score    float32    `json:"score"`
}

// DuplicateSimilarityThreshold is the fixed cutoff used for duplicate detection
const DuplicateSimilarityThreshold = 0.6

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

// derivedCountsSelect adds the people/meeting counts to an organization select
const derivedCountsSelect = `organizations.*,
	(SELECT count(*) FROM people p WHERE p.organization_id = organizations.id) AS people_count,
	(SELECT count(*) FROM meetings m WHERE m.organization_id = organizations.id) AS meeting_count`

// GetByID retrieves an organization by ID with its geography, people and meetings
func (r *OrganizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).
		Select(derivedCountsSelect).
		Preload("Region").
		Preload("Chapter").
		Preload("County").
		Preload("People", func(db *gorm.DB) *gorm.DB {
			return db.Order("updated_at DESC")
		}).
		Preload("Meetings", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetAll retrieves organizations matching the filters, most recently updated first
func (r *OrganizationRepository) GetAll(ctx context.Context, filters *SearchFilters) ([]models.Organization, error) {
	var orgs []models.Organization
	query := r.db.WithContext(ctx).Model(&models.Organization{}).
		Select(derivedCountsSelect).
		Preload("Region").
		Preload("Chapter").
		Preload("County")
	query = applyFilters(query, filters, organizationFilterColumns())
	if err := query.Order("updated_at DESC").Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// Update applies a partial update keyed by id and refreshes the search field.
// Fields absent from the map are left unmodified.
func (r *OrganizationRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Model(&models.Organization{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return err
	}
	// Map updates bypass struct hooks, so recompute the search field here
	var org models.Organization
	if err := tx.First(&org, "id = ?", id).Error; err != nil {
		return err
	}
	return tx.Model(&models.Organization{}).Where("id = ?", id).
		UpdateColumn("search_text", org.ComputeSearchText()).Error
}

// Delete removes an organization by id; deleting a missing row is not an error
func (r *OrganizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Organization{}, "id = ?", id).Error
}

// GetDashboardStats invokes the get_dashboard_stats() SQL function
func (r *OrganizationRepository) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var raw []byte
	row := r.db.WithContext(ctx).Raw(`SELECT get_dashboard_stats()`).Row()
	if err := row.Scan(&raw); err != nil {
		return nil, err
	}
	var stats DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("decode dashboard stats: %w", err)
	}
	return &stats, nil
}

// SearchSimilar invokes find_duplicate_organizations with the fixed similarity
// threshold and an optional region scope
func (r *OrganizationRepository) SearchSimilar(ctx context.Context, name string, regionID *uuid.UUID) ([]DuplicateMatch, error) {
	var matches []DuplicateMatch
	err := r.db.WithContext(ctx).
		Raw(`SELECT * FROM find_duplicate_organizations(?, ?, ?)`,
			name, regionID, DuplicateSimilarityThreshold).
		Scan(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func organizationFilterColumns() filterColumns {
	return filterColumns{
		search: func(db *gorm.DB, query string) *gorm.DB {
			return db.Where("search_text ILIKE ?", "%"+query+"%")
		},
		regionID:     "region_id",
		chapterID:    "chapter_id",
		organization: "id",
		dateField:    "updated_at",
		missionArea:  "mission_area",
		orgType:      "organization_type",
		status:       "status",
		updatedAt:    "updated_at",
	}
}
