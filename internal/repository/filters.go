package repository

import (
	"time"

	"partner-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// recentActivityWindow defines how far back "recent activity" reaches
const recentActivityWindow = 30 * 24 * time.Hour

// SearchFilters narrows a list query. Every field is optional; an absent field
// contributes no predicate.
type SearchFilters struct {
	Query             string
	RegionIDs         []uuid.UUID
	ChapterIDs        []uuid.UUID
	OrganizationIDs   []uuid.UUID
	MissionAreas      []models.MissionArea
	OrganizationTypes []models.OrganizationType
	Statuses          []models.OrganizationStatus
	DateFrom          *time.Time
	DateTo            *time.Time
	RecentActivity    bool
}

// filterColumns maps filter fields onto the columns of one table. An empty
// column name (or nil search func) opts the table out of that predicate.
type filterColumns struct {
	search       func(db *gorm.DB, query string) *gorm.DB
	regionID     string
	chapterID    string
	organization string
	dateField    string
	missionArea  string
	orgType      string
	status       string
	updatedAt    string
}

type filterClause struct {
	applies bool
	apply   func(db *gorm.DB) *gorm.DB
}

// applyFilters conjoins the applicable predicates in a fixed order: free text,
// identifier lists, date range, enum lists, recent activity. The recent
// activity flag is translated into a concrete threshold before submission.
func applyFilters(db *gorm.DB, f *SearchFilters, cols filterColumns) *gorm.DB {
	if f == nil {
		return db
	}

	activityThreshold := time.Now().Add(-recentActivityWindow)

	clauses := []filterClause{
		{f.Query != "" && cols.search != nil, func(db *gorm.DB) *gorm.DB {
			return cols.search(db, f.Query)
		}},
		{len(f.RegionIDs) > 0 && cols.regionID != "", func(db *gorm.DB) *gorm.DB {
			return db.Where(cols.regionID+" IN ?", f.RegionIDs)
		}},
		{len(f.ChapterIDs) > 0 && cols.chapterID != "", func(db *gorm.DB) *gorm.DB {
			return db.Where(cols.chapterID+" IN ?", f.ChapterIDs)
		}},
		{len(f.OrganizationIDs) > 0 && cols.organization != "", func(db *gorm.DB) *gorm.DB {
			return db.Where(cols.organization+" IN ?", f.OrganizationIDs)
		}},
		{f.DateFrom != nil && cols.dateField != "", func(db *gorm.DB) *gorm.DB {
			return db.Where(cols.dateField+" >= ?", *f.DateFrom)
		}},
		{f.DateTo != nil && cols.dateField != "", func(db *gorm.DB) *gorm.DB {
			return db.Where(cols.dateField+" <= ?", *f.DateTo)
		}},
		{len(f.MissionAreas) > 0 && cols.missionArea != "", func(db *gorm.DB) *gorm.DB {
			return db.Where(cols.missionArea+" IN ?", f.MissionAreas)
		}},
		{len(f.OrganizationTypes) > 0 && cols.orgType != "", func(db *gorm.DB) *gorm.DB {
			return db.Where(cols.orgType+" IN ?", f.OrganizationTypes)
		}},
		{len(f.Statuses) > 0 && cols.status != "", func(db *gorm.DB) *gorm.DB {
			return db.Where(cols.status+" IN ?", f.Statuses)
		}},
		{f.RecentActivity && cols.updatedAt != "", func(db *gorm.DB) *gorm.DB {
			return db.Where(cols.updatedAt+" >= ?", activityThreshold)
		}},
	}

	for _, c := range clauses {
		if c.applies {
			db = c.apply(db)
		}
	}
	return db
}
