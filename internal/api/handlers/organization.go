package handlers

import (
	"errors"
	"net/http"

	"partner-crm-backend/internal/auth"
	apperrors "partner-crm-backend/internal/errors"
	"partner-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service        service.OrganizationServiceInterface
	personService  service.PersonServiceInterface
	meetingService service.MeetingServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface, personService service.PersonServiceInterface, meetingService service.MeetingServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{
		service:        service,
		personService:  personService,
		meetingService: meetingService,
	}
}

// CreateOrganization handles POST /api/v1/organizations
// @Summary Create a new partner organization
// @Description Create a new partner organization with the provided details
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.OrganizationResponse "Successfully created organization"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	actor, ok := auth.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingPrincipal.Error()})
		return
	}

	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Create(c.Request.Context(), actor, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidStatus) ||
			errors.Is(err, apperrors.ErrInvalidMissionArea) ||
			errors.Is(err, apperrors.ErrInvalidOrganizationType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create organization", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, org)
}

// GetOrganization handles GET /api/v1/organizations/:id
// @Summary Get organization by ID
// @Description Get a specific organization with its geography, contacts and meetings
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationResponse "Successfully retrieved organization"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	org, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get organization", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, org)
}

// ListOrganizations handles GET /api/v1/organizations
// @Summary List partner organizations
// @Description List organizations, optionally narrowed by search filters
// @Tags organizations
// @Produce json
// @Param q query string false "Free-text search"
// @Param region_ids query string false "Comma-separated region UUIDs"
// @Param chapter_ids query string false "Comma-separated chapter UUIDs"
// @Param organization_ids query string false "Comma-separated organization UUIDs"
// @Param mission_areas query string false "Comma-separated mission areas"
// @Param organization_types query string false "Comma-separated organization types"
// @Param statuses query string false "Comma-separated statuses"
// @Param date_from query string false "Updated-at lower bound (YYYY-MM-DD or RFC3339)"
// @Param date_to query string false "Updated-at upper bound (YYYY-MM-DD or RFC3339)"
// @Param recent_activity query bool false "Only organizations updated within 30 days"
// @Success 200 {array} service.OrganizationResponse "Successfully retrieved organizations"
// @Failure 400 {object} map[string]interface{} "Invalid filter parameter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	filters, err := parseSearchFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameter", "details": err.Error()})
		return
	}

	orgs, err := h.service.GetAll(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get organizations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// UpdateOrganization handles PUT /api/v1/organizations/:id
// @Summary Update organization
// @Description Apply a partial update to an organization; absent fields are untouched
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param organization body service.UpdateOrganizationRequest true "Updated organization data"
// @Success 200 {object} service.OrganizationResponse "Successfully updated organization"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	actor, ok := auth.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingPrincipal.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	var req service.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Update(c.Request.Context(), id, actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrOrganizationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidStatus),
			errors.Is(err, apperrors.ErrInvalidMissionArea),
			errors.Is(err, apperrors.ErrInvalidOrganizationType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update organization", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, org)
}

// DeleteOrganization handles DELETE /api/v1/organizations/:id
// @Summary Delete organization
// @Description Delete an organization by ID; deleting a missing row succeeds
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 204 "Successfully deleted organization"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete organization", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetOrganizationPeople handles GET /api/v1/organizations/:id/people
// @Summary List an organization's contacts
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.PersonResponse
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/people [get]
func (h *OrganizationHandler) GetOrganizationPeople(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	people, err := h.personService.GetByOrganization(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get people", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, people)
}

// GetOrganizationMeetings handles GET /api/v1/organizations/:id/meetings
// @Summary List an organization's meetings, newest first
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.MeetingResponse
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/meetings [get]
func (h *OrganizationHandler) GetOrganizationMeetings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	meetings, err := h.meetingService.GetByOrganization(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get meetings", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, meetings)
}

// SearchSimilarOrganizations handles GET /api/v1/organizations/search-similar
// @Summary Find likely duplicate organizations
// @Description Fuzzy name match used for duplicate detection before creating an organization
// @Tags organizations
// @Produce json
// @Param name query string true "Organization name to match"
// @Param region_id query string false "Optional region scope (UUID)"
// @Success 200 {array} repository.DuplicateMatch
// @Failure 400 {object} map[string]interface{} "Missing or invalid parameter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/search-similar [get]
func (h *OrganizationHandler) SearchSimilarOrganizations(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}

	var regionID *uuid.UUID
	if raw := c.Query("region_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid region ID"})
			return
		}
		regionID = &id
	}

	matches, err := h.service.SearchSimilar(c.Request.Context(), name, regionID)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search organizations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetDashboardStats handles GET /api/v1/dashboard/stats
// @Summary Dashboard aggregate statistics
// @Tags dashboard
// @Produce json
// @Success 200 {object} repository.DashboardStats
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *OrganizationHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.service.GetDashboardStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get dashboard stats", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetRegions handles GET /api/v1/regions
// @Summary List regions
// @Tags geography
// @Produce json
// @Success 200 {array} models.Region
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /regions [get]
func (h *OrganizationHandler) GetRegions(c *gin.Context) {
	regions, err := h.service.GetRegions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get regions", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, regions)
}

// GetChaptersByRegion handles GET /api/v1/regions/:id/chapters
// @Summary List the chapters of a region
// @Tags geography
// @Produce json
// @Param id path string true "Region ID (UUID)"
// @Success 200 {array} models.Chapter
// @Failure 400 {object} map[string]interface{} "Invalid region ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /regions/{id}/chapters [get]
func (h *OrganizationHandler) GetChaptersByRegion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid region ID"})
		return
	}

	chapters, err := h.service.GetChaptersByRegion(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get chapters", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, chapters)
}

// GetCountiesByChapter handles GET /api/v1/chapters/:id/counties
// @Summary List the counties of a chapter
// @Tags geography
// @Produce json
// @Param id path string true "Chapter ID (UUID)"
// @Success 200 {array} models.County
// @Failure 400 {object} map[string]interface{} "Invalid chapter ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /chapters/{id}/counties [get]
func (h *OrganizationHandler) GetCountiesByChapter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chapter ID"})
		return
	}

	counties, err := h.service.GetCountiesByChapter(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get counties", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, counties)
}
