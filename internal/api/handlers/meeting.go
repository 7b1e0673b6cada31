package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"partner-crm-backend/internal/auth"
	apperrors "partner-crm-backend/internal/errors"
	"partner-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MeetingHandler handles HTTP requests for meetings
type MeetingHandler struct {
	service service.MeetingServiceInterface
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(service service.MeetingServiceInterface) *MeetingHandler {
	return &MeetingHandler{service: service}
}

// CreateMeeting handles POST /api/v1/meetings
// @Summary Log a new meeting
// @Description Log a meeting with a partner organization, optionally with attendees
// @Tags meetings
// @Accept json
// @Produce json
// @Param meeting body service.CreateMeetingRequest true "Meeting data"
// @Success 201 {object} service.MeetingResponse "Successfully created meeting"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Organization or attendee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meetings [post]
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	actor, ok := auth.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingPrincipal.Error()})
		return
	}

	var req service.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	meeting, err := h.service.Create(c.Request.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrOrganizationNotFound),
			errors.Is(err, apperrors.ErrPersonNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrAttendeeNotInOrg),
			errors.Is(err, apperrors.ErrDuplicateAttendee):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meeting", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, meeting)
}

// GetMeeting handles GET /api/v1/meetings/:id
// @Summary Get meeting by ID
// @Description Get a meeting with its organization, ordered attendees and attachments
// @Tags meetings
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Success 200 {object} service.MeetingResponse "Successfully retrieved meeting"
// @Failure 400 {object} map[string]interface{} "Invalid meeting ID"
// @Failure 404 {object} map[string]interface{} "Meeting not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id} [get]
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID: invalid UUID format"})
		return
	}

	meeting, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrMeetingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get meeting", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, meeting)
}

// ListMeetings handles GET /api/v1/meetings
// @Summary List meetings
// @Description List meetings newest first, optionally narrowed by search filters
// @Tags meetings
// @Produce json
// @Param q query string false "Free-text search on location or summary"
// @Param organization_ids query string false "Comma-separated organization UUIDs"
// @Param date_from query string false "Meeting date lower bound (YYYY-MM-DD or RFC3339)"
// @Param date_to query string false "Meeting date upper bound (YYYY-MM-DD or RFC3339)"
// @Param recent_activity query bool false "Only meetings updated within 30 days"
// @Success 200 {array} service.MeetingResponse "Successfully retrieved meetings"
// @Failure 400 {object} map[string]interface{} "Invalid filter parameter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meetings [get]
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	filters, err := parseSearchFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameter", "details": err.Error()})
		return
	}

	meetings, err := h.service.GetAll(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get meetings", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, meetings)
}

// GetUpcomingMeetings handles GET /api/v1/meetings/upcoming
// @Summary List upcoming meetings
// @Description Meetings dated today or later, soonest first, capped at limit
// @Tags meetings
// @Produce json
// @Param limit query int false "Maximum rows to return" default(10)
// @Success 200 {array} service.MeetingResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meetings/upcoming [get]
func (h *MeetingHandler) GetUpcomingMeetings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	meetings, err := h.service.GetUpcoming(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get upcoming meetings", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, meetings)
}

// GetFollowUps handles GET /api/v1/meetings/follow-ups
// @Summary List meetings with a follow-up due
// @Description Meetings whose follow-up date has arrived, ascending by follow-up date
// @Tags meetings
// @Produce json
// @Success 200 {array} service.MeetingResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meetings/follow-ups [get]
func (h *MeetingHandler) GetFollowUps(c *gin.Context) {
	meetings, err := h.service.GetFollowUps(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get follow-ups", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, meetings)
}

// UpdateMeeting handles PUT /api/v1/meetings/:id
// @Summary Update meeting
// @Description Apply a partial update; a non-null attendee list replaces the attendees
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Param meeting body service.UpdateMeetingRequest true "Updated meeting data"
// @Success 200 {object} service.MeetingResponse "Successfully updated meeting"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Meeting not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id} [put]
func (h *MeetingHandler) UpdateMeeting(c *gin.Context) {
	actor, ok := auth.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingPrincipal.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID"})
		return
	}

	var req service.UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	meeting, err := h.service.Update(c.Request.Context(), id, actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMeetingNotFound),
			errors.Is(err, apperrors.ErrPersonNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrAttendeeNotInOrg),
			errors.Is(err, apperrors.ErrDuplicateAttendee):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meeting", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, meeting)
}

// DeleteMeeting handles DELETE /api/v1/meetings/:id
// @Summary Delete meeting
// @Description Delete a meeting by ID; deleting a missing row succeeds
// @Tags meetings
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Success 204 "Successfully deleted meeting"
// @Failure 400 {object} map[string]interface{} "Invalid meeting ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id} [delete]
func (h *MeetingHandler) DeleteMeeting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meeting", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// AddAttachment handles POST /api/v1/meetings/:id/attachments
// @Summary Attach a file record to a meeting
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Param attachment body service.AddAttachmentRequest true "Attachment descriptor"
// @Success 201 {object} service.MeetingResponse "Meeting with the new attachment"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Meeting not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id}/attachments [post]
func (h *MeetingHandler) AddAttachment(c *gin.Context) {
	actor, ok := auth.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingPrincipal.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID"})
		return
	}

	var req service.AddAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	meeting, err := h.service.AddAttachment(c.Request.Context(), id, actor, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrMeetingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add attachment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, meeting)
}

// DeleteAttachment handles DELETE /api/v1/meetings/attachments/:id
// @Summary Delete an attachment record
// @Tags meetings
// @Produce json
// @Param id path string true "Attachment ID (UUID)"
// @Success 204 "Successfully deleted attachment"
// @Failure 400 {object} map[string]interface{} "Invalid attachment ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meetings/attachments/{id} [delete]
func (h *MeetingHandler) DeleteAttachment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attachment ID"})
		return
	}

	if err := h.service.DeleteAttachment(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete attachment", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
