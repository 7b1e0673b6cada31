package repository

import (
	"context"

	"partner-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GeographyRepository handles lookups against the region/chapter/county hierarchy
type GeographyRepository struct {
	db *gorm.DB
}

// NewGeographyRepository creates a new geography repository
func NewGeographyRepository(db *gorm.DB) *GeographyRepository {
	return &GeographyRepository{db: db}
}

// GetRegions retrieves all regions ordered by name
func (r *GeographyRepository) GetRegions(ctx context.Context) ([]models.Region, error) {
	var regions []models.Region
	err := r.db.WithContext(ctx).Order("name ASC").Find(&regions).Error
	if err != nil {
		return nil, err
	}
	return regions, nil
}

// GetChaptersByRegion retrieves the chapters of one region ordered by name
func (r *GeographyRepository) GetChaptersByRegion(ctx context.Context, regionID uuid.UUID) ([]models.Chapter, error) {
	var chapters []models.Chapter
	err := r.db.WithContext(ctx).
		Where("region_id = ?", regionID).
		Order("name ASC").
		Find(&chapters).Error
	if err != nil {
		return nil, err
	}
	return chapters, nil
}

// GetCountiesByChapter retrieves the counties of one chapter ordered by name
func (r *GeographyRepository) GetCountiesByChapter(ctx context.Context, chapterID uuid.UUID) ([]models.County, error) {
	var counties []models.County
	err := r.db.WithContext(ctx).
		Where("chapter_id = ?", chapterID).
		Order("name ASC").
		Find(&counties).Error
	if err != nil {
		return nil, err
	}
	return counties, nil
}
