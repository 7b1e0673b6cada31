package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"partner-crm-backend/internal/auth"
	"partner-crm-backend/internal/database/models"
	apperrors "partner-crm-backend/internal/errors"
	"partner-crm-backend/internal/mocks"
	"partner-crm-backend/internal/repository"
	"partner-crm-backend/internal/service"
	"partner-crm-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockOrganizationService *mocks.MockOrganizationServiceInterface
	mockPersonService       *mocks.MockPersonServiceInterface
	mockMeetingService      *mocks.MockMeetingServiceInterface
	handler                 *OrganizationHandler
	httpSuite               *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrganizationService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.mockPersonService = mocks.NewMockPersonServiceInterface(suite.ctrl)
	suite.mockMeetingService = mocks.NewMockMeetingServiceInterface(suite.ctrl)

	// Create handler with mock services
	suite.handler = NewOrganizationHandler(suite.mockOrganizationService, suite.mockPersonService, suite.mockMeetingService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Stand in for RequireAuth so writes see a principal
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set(auth.ContextKeyPrincipal, "analyst@test.com")
		c.Next()
	})

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	orgs := v1.Group("/organizations")
	{
		orgs.GET("", suite.handler.ListOrganizations)
		orgs.POST("", suite.handler.CreateOrganization)
		orgs.GET("/search-similar", suite.handler.SearchSimilarOrganizations)
		orgs.GET("/:id", suite.handler.GetOrganization)
		orgs.PUT("/:id", suite.handler.UpdateOrganization)
		orgs.DELETE("/:id", suite.handler.DeleteOrganization)
		orgs.GET("/:id/people", suite.handler.GetOrganizationPeople)
		orgs.GET("/:id/meetings", suite.handler.GetOrganizationMeetings)
	}
	v1.GET("/dashboard/stats", suite.handler.GetDashboardStats)
	v1.GET("/regions", suite.handler.GetRegions)
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrganization tests creating an organization
func (suite *OrganizationHandlerTestSuite) TestCreateOrganization() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{
		"name":   "Sunrise Food Bank",
		"status": "active",
	}

	expectedResponse := &service.OrganizationResponse{
		ID:        orgID,
		Name:      "Sunrise Food Bank",
		Status:    "active",
		CreatedAt: "2026-01-01T00:00:00Z",
		UpdatedAt: "2026-01-01T00:00:00Z",
	}

	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any(), "analyst@test.com", gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expectedResponse.Name, response.Name)
	assert.Equal(suite.T(), expectedResponse.Status, response.Status)
}

// TestCreateOrganizationInvalidStatus tests that enum errors map to 400
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationInvalidStatus() {
	requestBody := map[string]interface{}{
		"name":   "Sunrise Food Bank",
		"status": "archived",
	}

	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any(), "analyst@test.com", gomock.Any()).
		Return(nil, apperrors.ErrInvalidStatus).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestCreateOrganizationServiceError tests that unexpected errors map to 500
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationServiceError() {
	requestBody := map[string]interface{}{
		"name":   "Sunrise Food Bank",
		"status": "active",
	}

	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any(), "analyst@test.com", gomock.Any()).
		Return(nil, fmt.Errorf("service error")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to create organization")
}

// TestGetOrganization tests getting an organization by ID
func (suite *OrganizationHandlerTestSuite) TestGetOrganization() {
	orgID := uuid.New()
	expectedResponse := &service.OrganizationResponse{
		ID:     orgID,
		Name:   "Sunrise Food Bank",
		Status: "active",
	}

	suite.mockOrganizationService.EXPECT().
		GetByID(gomock.Any(), orgID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/organizations/%s", orgID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expectedResponse.ID, response.ID)
	assert.Equal(suite.T(), expectedResponse.Name, response.Name)
}

// TestGetOrganizationInvalidID tests getting an organization with a malformed ID
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestGetOrganizationNotFound tests the 404 mapping
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationNotFound() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		GetByID(gomock.Any(), orgID).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/organizations/%s", orgID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestListOrganizationsWithFilters tests that query parameters reach the service as filters
func (suite *OrganizationHandlerTestSuite) TestListOrganizationsWithFilters() {
	suite.mockOrganizationService.EXPECT().
		GetAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters *repository.SearchFilters) ([]service.OrganizationResponse, error) {
			assert.Equal(suite.T(), "food", filters.Query)
			assert.Equal(suite.T(), []models.OrganizationStatus{models.OrganizationStatusActive}, filters.Statuses)
			assert.True(suite.T(), filters.RecentActivity)
			return []service.OrganizationResponse{}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations?q=food&statuses=active&recent_activity=true", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestListOrganizationsInvalidStatusFilter tests that a bad enum filter maps to 400
func (suite *OrganizationHandlerTestSuite) TestListOrganizationsInvalidStatusFilter() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations?statuses=archived", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestUpdateOrganizationNotFound tests updating a missing organization
func (suite *OrganizationHandlerTestSuite) TestUpdateOrganizationNotFound() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{"name": "Renamed"}

	suite.mockOrganizationService.EXPECT().
		Update(gomock.Any(), orgID, "analyst@test.com", gomock.Any()).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/organizations/%s", orgID), requestBody)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestDeleteOrganization tests that delete yields 204 regardless of prior existence
func (suite *OrganizationHandlerTestSuite) TestDeleteOrganization() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		Delete(gomock.Any(), orgID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/organizations/%s", orgID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestSearchSimilarOrganizations tests the duplicate search endpoint
func (suite *OrganizationHandlerTestSuite) TestSearchSimilarOrganizations() {
	matches := []repository.DuplicateMatch{
		{ID: uuid.New(), Name: "Sunrise Food Bank", Score: 0.88},
	}

	suite.mockOrganizationService.EXPECT().
		SearchSimilar(gomock.Any(), "Sunrise Foodbank", nil).
		Return(matches, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/search-similar?name=Sunrise+Foodbank", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []repository.DuplicateMatch
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), "Sunrise Food Bank", response[0].Name)
}

// TestSearchSimilarMissingName tests that the name query parameter is required
func (suite *OrganizationHandlerTestSuite) TestSearchSimilarMissingName() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/search-similar", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestGetDashboardStats tests the dashboard stats endpoint
func (suite *OrganizationHandlerTestSuite) TestGetDashboardStats() {
	stats := &repository.DashboardStats{
		TotalOrganizations:  7,
		ActiveOrganizations: 5,
	}

	suite.mockOrganizationService.EXPECT().
		GetDashboardStats(gomock.Any()).
		Return(stats, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/dashboard/stats", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response repository.DashboardStats
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), int64(7), response.TotalOrganizations)
}

// TestGetOrganizationPeople tests listing contacts scoped to one organization
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationPeople() {
	orgID := uuid.New()
	people := []service.PersonResponse{
		{ID: uuid.New(), OrganizationID: orgID, FirstName: "Jane", LastName: "Doe"},
	}

	suite.mockPersonService.EXPECT().
		GetByOrganization(gomock.Any(), orgID).
		Return(people, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/organizations/%s/people", orgID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.PersonResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
