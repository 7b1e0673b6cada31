package handlers

import (
	"fmt"
	"strings"
	"time"

	"partner-crm-backend/internal/database/models"
	"partner-crm-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseSearchFilters builds a SearchFilters value from list-endpoint query
// parameters. Absent parameters contribute no constraint.
func parseSearchFilters(c *gin.Context) (*repository.SearchFilters, error) {
	filters := &repository.SearchFilters{
		Query: strings.TrimSpace(c.Query("q")),
	}

	var err error
	if filters.RegionIDs, err = parseUUIDList(c.Query("region_ids")); err != nil {
		return nil, fmt.Errorf("region_ids: %w", err)
	}
	if filters.ChapterIDs, err = parseUUIDList(c.Query("chapter_ids")); err != nil {
		return nil, fmt.Errorf("chapter_ids: %w", err)
	}
	if filters.OrganizationIDs, err = parseUUIDList(c.Query("organization_ids")); err != nil {
		return nil, fmt.Errorf("organization_ids: %w", err)
	}

	for _, v := range splitList(c.Query("mission_areas")) {
		area := models.MissionArea(v)
		if !area.IsValid() {
			return nil, fmt.Errorf("mission_areas: invalid value %q", v)
		}
		filters.MissionAreas = append(filters.MissionAreas, area)
	}
	for _, v := range splitList(c.Query("organization_types")) {
		orgType := models.OrganizationType(v)
		if !orgType.IsValid() {
			return nil, fmt.Errorf("organization_types: invalid value %q", v)
		}
		filters.OrganizationTypes = append(filters.OrganizationTypes, orgType)
	}
	for _, v := range splitList(c.Query("statuses")) {
		status := models.OrganizationStatus(v)
		if !status.IsValid() {
			return nil, fmt.Errorf("statuses: invalid value %q", v)
		}
		filters.Statuses = append(filters.Statuses, status)
	}

	if filters.DateFrom, err = parseDate(c.Query("date_from")); err != nil {
		return nil, fmt.Errorf("date_from: %w", err)
	}
	if filters.DateTo, err = parseDate(c.Query("date_to")); err != nil {
		return nil, fmt.Errorf("date_to: %w", err)
	}

	filters.RecentActivity = c.Query("recent_activity") == "true"

	return filters, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func parseUUIDList(raw string) ([]uuid.UUID, error) {
	parts := splitList(raw)
	if len(parts) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, fmt.Errorf("invalid UUID %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseDate accepts a date (2006-01-02) or an RFC3339 timestamp
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", raw)
	}
	return &t, nil
}
