package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"partner-crm-backend/internal/auth"
	apperrors "partner-crm-backend/internal/errors"
	"partner-crm-backend/internal/mocks"
	"partner-crm-backend/internal/service"
	"partner-crm-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MeetingHandlerTestSuite defines the test suite for MeetingHandler
type MeetingHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockMeetingService *mocks.MockMeetingServiceInterface
	handler            *MeetingHandler
	httpSuite          *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *MeetingHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMeetingService = mocks.NewMockMeetingServiceInterface(suite.ctrl)

	suite.handler = NewMeetingHandler(suite.mockMeetingService)

	suite.httpSuite = testutils.SetupHTTPTest()

	// Stand in for RequireAuth so writes see a principal
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set(auth.ContextKeyPrincipal, "analyst@test.com")
		c.Next()
	})

	v1 := suite.httpSuite.Router.Group("/api/v1")
	meetings := v1.Group("/meetings")
	{
		meetings.GET("", suite.handler.ListMeetings)
		meetings.POST("", suite.handler.CreateMeeting)
		meetings.GET("/upcoming", suite.handler.GetUpcomingMeetings)
		meetings.GET("/follow-ups", suite.handler.GetFollowUps)
		meetings.GET("/:id", suite.handler.GetMeeting)
		meetings.PUT("/:id", suite.handler.UpdateMeeting)
		meetings.DELETE("/:id", suite.handler.DeleteMeeting)
		meetings.POST("/:id/attachments", suite.handler.AddAttachment)
		meetings.DELETE("/attachments/:id", suite.handler.DeleteAttachment)
	}
}

// TearDownTest cleans up after each test
func (suite *MeetingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateMeeting tests creating a meeting
func (suite *MeetingHandlerTestSuite) TestCreateMeeting() {
	orgID := uuid.New()
	meetingID := uuid.New()
	requestBody := map[string]interface{}{
		"organization_id": orgID.String(),
		"date":            "2026-09-15T14:00:00Z",
		"location":        "Main office",
	}

	expectedResponse := &service.MeetingResponse{
		ID:             meetingID,
		OrganizationID: orgID,
		Location:       "Main office",
	}

	suite.mockMeetingService.EXPECT().
		Create(gomock.Any(), "analyst@test.com", gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/meetings", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.MeetingResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), meetingID, response.ID)
	assert.Equal(suite.T(), "Main office", response.Location)
}

// TestCreateMeetingOrganizationNotFound tests that a missing organization maps to 404
func (suite *MeetingHandlerTestSuite) TestCreateMeetingOrganizationNotFound() {
	requestBody := map[string]interface{}{
		"organization_id": uuid.New().String(),
		"date":            "2026-09-15T14:00:00Z",
	}

	suite.mockMeetingService.EXPECT().
		Create(gomock.Any(), "analyst@test.com", gomock.Any()).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/meetings", requestBody)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestCreateMeetingAttendeeNotInOrg tests that a cross-organization attendee maps to 400
func (suite *MeetingHandlerTestSuite) TestCreateMeetingAttendeeNotInOrg() {
	requestBody := map[string]interface{}{
		"organization_id": uuid.New().String(),
		"date":            "2026-09-15T14:00:00Z",
		"attendee_ids":    []string{uuid.New().String()},
	}

	suite.mockMeetingService.EXPECT().
		Create(gomock.Any(), "analyst@test.com", gomock.Any()).
		Return(nil, apperrors.ErrAttendeeNotInOrg).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/meetings", requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestCreateMeetingRepeatedAttendee tests that a repeated attendee maps to 400
func (suite *MeetingHandlerTestSuite) TestCreateMeetingRepeatedAttendee() {
	attendeeID := uuid.New().String()
	requestBody := map[string]interface{}{
		"organization_id": uuid.New().String(),
		"date":            "2026-09-15T14:00:00Z",
		"attendee_ids":    []string{attendeeID, attendeeID},
	}

	suite.mockMeetingService.EXPECT().
		Create(gomock.Any(), "analyst@test.com", gomock.Any()).
		Return(nil, apperrors.ErrDuplicateAttendee).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/meetings", requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestGetMeeting tests getting a meeting by ID
func (suite *MeetingHandlerTestSuite) TestGetMeeting() {
	meetingID := uuid.New()
	followUp := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	expectedResponse := &service.MeetingResponse{
		ID:           meetingID,
		FollowUpDate: &followUp,
		FollowUpDue:  true,
	}

	suite.mockMeetingService.EXPECT().
		GetByID(gomock.Any(), meetingID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/meetings/%s", meetingID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.MeetingResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), meetingID, response.ID)
	assert.True(suite.T(), response.FollowUpDue)
}

// TestGetMeetingNotFound tests the 404 mapping
func (suite *MeetingHandlerTestSuite) TestGetMeetingNotFound() {
	meetingID := uuid.New()

	suite.mockMeetingService.EXPECT().
		GetByID(gomock.Any(), meetingID).
		Return(nil, apperrors.ErrMeetingNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/meetings/%s", meetingID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestGetMeetingInvalidID tests getting a meeting with a malformed ID
func (suite *MeetingHandlerTestSuite) TestGetMeetingInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/meetings/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestGetUpcomingMeetings tests the upcoming meetings endpoint with an explicit limit
func (suite *MeetingHandlerTestSuite) TestGetUpcomingMeetings() {
	expected := []service.MeetingResponse{{ID: uuid.New()}}

	suite.mockMeetingService.EXPECT().
		GetUpcoming(gomock.Any(), 5).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/meetings/upcoming?limit=5", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetUpcomingMeetingsDefaultLimit tests that the limit parameter defaults to 10
func (suite *MeetingHandlerTestSuite) TestGetUpcomingMeetingsDefaultLimit() {
	suite.mockMeetingService.EXPECT().
		GetUpcoming(gomock.Any(), 10).
		Return([]service.MeetingResponse{}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/meetings/upcoming", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetFollowUps tests the follow-ups endpoint
func (suite *MeetingHandlerTestSuite) TestGetFollowUps() {
	expected := []service.MeetingResponse{{ID: uuid.New(), FollowUpDue: true, Overdue: true}}

	suite.mockMeetingService.EXPECT().
		GetFollowUps(gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/meetings/follow-ups", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.MeetingResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
	assert.True(suite.T(), response[0].Overdue)
}

// TestUpdateMeetingNotFound tests updating a missing meeting
func (suite *MeetingHandlerTestSuite) TestUpdateMeetingNotFound() {
	meetingID := uuid.New()
	requestBody := map[string]interface{}{"location": "Annex"}

	suite.mockMeetingService.EXPECT().
		Update(gomock.Any(), meetingID, "analyst@test.com", gomock.Any()).
		Return(nil, apperrors.ErrMeetingNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/meetings/%s", meetingID), requestBody)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestDeleteMeeting tests that delete yields 204
func (suite *MeetingHandlerTestSuite) TestDeleteMeeting() {
	meetingID := uuid.New()

	suite.mockMeetingService.EXPECT().
		Delete(gomock.Any(), meetingID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/meetings/%s", meetingID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestAddAttachment tests attaching a file record to a meeting
func (suite *MeetingHandlerTestSuite) TestAddAttachment() {
	meetingID := uuid.New()
	requestBody := map[string]interface{}{
		"file_name":    "minutes.pdf",
		"content_type": "application/pdf",
		"size_bytes":   2048,
	}

	expectedResponse := &service.MeetingResponse{ID: meetingID}

	suite.mockMeetingService.EXPECT().
		AddAttachment(gomock.Any(), meetingID, "analyst@test.com", gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/meetings/%s/attachments", meetingID), requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

// TestAddAttachmentMeetingNotFound tests attaching to a missing meeting
func (suite *MeetingHandlerTestSuite) TestAddAttachmentMeetingNotFound() {
	meetingID := uuid.New()
	requestBody := map[string]interface{}{"file_name": "minutes.pdf"}

	suite.mockMeetingService.EXPECT().
		AddAttachment(gomock.Any(), meetingID, "analyst@test.com", gomock.Any()).
		Return(nil, apperrors.ErrMeetingNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/meetings/%s/attachments", meetingID), requestBody)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestDeleteAttachment tests removing an attachment record
func (suite *MeetingHandlerTestSuite) TestDeleteAttachment() {
	attachmentID := uuid.New()

	suite.mockMeetingService.EXPECT().
		DeleteAttachment(gomock.Any(), attachmentID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/meetings/attachments/%s", attachmentID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestMeetingHandlerTestSuite runs the test suite
func TestMeetingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MeetingHandlerTestSuite))
}
