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

// PersonHandler handles HTTP requests for contacts
type PersonHandler struct {
	service service.PersonServiceInterface
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(service service.PersonServiceInterface) *PersonHandler {
	return &PersonHandler{service: service}
}

// CreatePerson handles POST /api/v1/people
// @Summary Create a new contact
// @Description Create a contact tied to an existing partner organization
// @Tags people
// @Accept json
// @Produce json
// @Param person body service.CreatePersonRequest true "Person data"
// @Success 201 {object} service.PersonResponse "Successfully created person"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /people [post]
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	actor, ok := auth.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingPrincipal.Error()})
		return
	}

	var req service.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	person, err := h.service.Create(c.Request.Context(), actor, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create person", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, person)
}

// GetPerson handles GET /api/v1/people/:id
// @Summary Get contact by ID
// @Tags people
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Success 200 {object} service.PersonResponse "Successfully retrieved person"
// @Failure 400 {object} map[string]interface{} "Invalid person ID"
// @Failure 404 {object} map[string]interface{} "Person not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /people/{id} [get]
func (h *PersonHandler) GetPerson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person ID: invalid UUID format"})
		return
	}

	person, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPersonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get person", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, person)
}

// ListPeople handles GET /api/v1/people
// @Summary List contacts
// @Description List contacts, optionally narrowed by search filters
// @Tags people
// @Produce json
// @Param q query string false "Free-text search on name or email"
// @Param organization_ids query string false "Comma-separated organization UUIDs"
// @Param recent_activity query bool false "Only contacts updated within 30 days"
// @Success 200 {array} service.PersonResponse "Successfully retrieved people"
// @Failure 400 {object} map[string]interface{} "Invalid filter parameter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /people [get]
func (h *PersonHandler) ListPeople(c *gin.Context) {
	filters, err := parseSearchFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameter", "details": err.Error()})
		return
	}

	people, err := h.service.GetAll(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get people", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, people)
}

// UpdatePerson handles PUT /api/v1/people/:id
// @Summary Update contact
// @Description Apply a partial update to a contact; absent fields are untouched
// @Tags people
// @Accept json
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Param person body service.UpdatePersonRequest true "Updated person data"
// @Success 200 {object} service.PersonResponse "Successfully updated person"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Person not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /people/{id} [put]
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	actor, ok := auth.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingPrincipal.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person ID"})
		return
	}

	var req service.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	person, err := h.service.Update(c.Request.Context(), id, actor, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPersonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update person", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, person)
}

// DeletePerson handles DELETE /api/v1/people/:id
// @Summary Delete contact
// @Description Delete a contact by ID; deleting a missing row succeeds
// @Tags people
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Success 204 "Successfully deleted person"
// @Failure 400 {object} map[string]interface{} "Invalid person ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /people/{id} [delete]
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete person", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
