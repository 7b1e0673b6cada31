package service_test

import (
	"context"
	"testing"

	"partner-crm-backend/internal/database/models"
	apperrors "partner-crm-backend/internal/errors"
	"partner-crm-backend/internal/mocks"
	"partner-crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PersonServiceTestSuite defines the test suite for PersonService
type PersonServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockPersonRepo *mocks.MockPersonRepositoryInterface
	mockOrgRepo    *mocks.MockOrganizationRepositoryInterface
	personService  *service.PersonService
	validator      *validator.Validate
	ctx            context.Context
}

// SetupTest sets up the test suite
func (suite *PersonServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPersonRepo = mocks.NewMockPersonRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.ctx = context.Background()

	suite.personService = service.NewPersonService(suite.mockPersonRepo, suite.mockOrgRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *PersonServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreatePerson tests creating a person
func (suite *PersonServiceTestSuite) TestCreatePerson() {
	orgID := uuid.New()
	req := &service.CreatePersonRequest{
		OrganizationID: orgID,
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane.doe@test.com",
	}

	suite.mockOrgRepo.EXPECT().
		GetByID(suite.ctx, orgID).
		Return(&models.Organization{BaseModel: models.BaseModel{ID: orgID}}, nil).
		Times(1)

	var capturedPerson *models.Person
	suite.mockPersonRepo.EXPECT().
		Create(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, person *models.Person) error {
			person.ID = uuid.New()
			capturedPerson = person
			return nil
		}).
		Times(1)

	suite.mockPersonRepo.EXPECT().
		GetByID(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.Person, error) {
			return capturedPerson, nil
		}).
		Times(1)

	response, err := suite.personService.Create(suite.ctx, "analyst@test.com", req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), orgID, response.OrganizationID)
	assert.Equal(suite.T(), "Jane", response.FirstName)
	assert.Equal(suite.T(), "analyst@test.com", response.CreatedBy)
}

// TestCreatePersonOrganizationNotFound tests creating a person for a missing organization
func (suite *PersonServiceTestSuite) TestCreatePersonOrganizationNotFound() {
	orgID := uuid.New()
	req := &service.CreatePersonRequest{
		OrganizationID: orgID,
		FirstName:      "Jane",
		LastName:       "Doe",
	}

	suite.mockOrgRepo.EXPECT().
		GetByID(suite.ctx, orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.personService.Create(suite.ctx, "analyst@test.com", req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestCreatePersonInvalidEmail tests that a malformed email fails validation
func (suite *PersonServiceTestSuite) TestCreatePersonInvalidEmail() {
	req := &service.CreatePersonRequest{
		OrganizationID: uuid.New(),
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "not-an-email",
	}

	response, err := suite.personService.Create(suite.ctx, "analyst@test.com", req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestGetPersonByIDNotFound tests getting a person by ID when not found
func (suite *PersonServiceTestSuite) TestGetPersonByIDNotFound() {
	personID := uuid.New()

	suite.mockPersonRepo.EXPECT().
		GetByID(suite.ctx, personID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.personService.GetByID(suite.ctx, personID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonNotFound)
}

// TestUpdatePerson tests a partial update touching only the named fields
func (suite *PersonServiceTestSuite) TestUpdatePerson() {
	personID := uuid.New()
	newTitle := "Executive Director"
	req := &service.UpdatePersonRequest{Title: &newTitle}

	existing := &models.Person{
		BaseModel: models.BaseModel{ID: personID},
		FirstName: "Jane",
		LastName:  "Doe",
		Title:     "Program Director",
	}
	updated := &models.Person{
		BaseModel: models.BaseModel{ID: personID, UpdatedBy: "analyst@test.com"},
		FirstName: "Jane",
		LastName:  "Doe",
		Title:     newTitle,
	}

	suite.mockPersonRepo.EXPECT().
		GetByID(suite.ctx, personID).
		Return(existing, nil).
		Times(1)

	suite.mockPersonRepo.EXPECT().
		Update(suite.ctx, personID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, fields map[string]interface{}) error {
			assert.Equal(suite.T(), newTitle, fields["title"])
			assert.Equal(suite.T(), "analyst@test.com", fields["updated_by"])
			assert.NotContains(suite.T(), fields, "first_name")
			assert.NotContains(suite.T(), fields, "email")
			return nil
		}).
		Times(1)

	suite.mockPersonRepo.EXPECT().
		GetByID(suite.ctx, personID).
		Return(updated, nil).
		Times(1)

	response, err := suite.personService.Update(suite.ctx, personID, "analyst@test.com", req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), newTitle, response.Title)
}

// TestUpdatePersonNotFound tests updating a missing person
func (suite *PersonServiceTestSuite) TestUpdatePersonNotFound() {
	personID := uuid.New()
	newTitle := "Director"
	req := &service.UpdatePersonRequest{Title: &newTitle}

	suite.mockPersonRepo.EXPECT().
		GetByID(suite.ctx, personID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.personService.Update(suite.ctx, personID, "analyst@test.com", req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonNotFound)
}

// TestGetByOrganization tests listing contacts at one organization
func (suite *PersonServiceTestSuite) TestGetByOrganization() {
	orgID := uuid.New()
	people := []models.Person{
		{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: orgID, FirstName: "Jane", LastName: "Doe"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: orgID, FirstName: "John", LastName: "Smith"},
	}

	suite.mockPersonRepo.EXPECT().
		GetByOrganization(suite.ctx, orgID).
		Return(people, nil).
		Times(1)

	responses, err := suite.personService.GetByOrganization(suite.ctx, orgID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.Equal(suite.T(), orgID, responses[0].OrganizationID)
}

// TestDeletePerson tests the delete passthrough
func (suite *PersonServiceTestSuite) TestDeletePerson() {
	personID := uuid.New()

	suite.mockPersonRepo.EXPECT().
		Delete(suite.ctx, personID).
		Return(nil).
		Times(1)

	err := suite.personService.Delete(suite.ctx, personID)

	assert.NoError(suite.T(), err)
}

// TestPersonServiceTestSuite runs the test suite
func TestPersonServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PersonServiceTestSuite))
}
