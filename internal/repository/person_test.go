package repository

import (
	"context"
	"testing"
	"time"

	"partner-crm-backend/internal/database/models"
	"partner-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PersonRepositoryTestSuite tests the PersonRepository
type PersonRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PersonRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *PersonRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewPersonRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *PersonRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PersonRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PersonRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createOrganization inserts a parent organization for contacts under test
func (suite *PersonRepositoryTestSuite) createOrganization() *models.Organization {
	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.orgRepo.Create(suite.ctx, org))
	return org
}

// TestCreate tests creating a new person
func (suite *PersonRepositoryTestSuite) TestCreate() {
	org := suite.createOrganization()
	person := suite.factories.Person.WithOrganization(org.ID)

	err := suite.repo.Create(suite.ctx, person)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, person.ID)
	suite.NotZero(person.CreatedAt)
}

// TestGetByID tests retrieving a person with their organization preloaded
func (suite *PersonRepositoryTestSuite) TestGetByID() {
	org := suite.createOrganization()
	person := suite.factories.Person.WithOrganization(org.ID)
	suite.NoError(suite.repo.Create(suite.ctx, person))

	retrieved, err := suite.repo.GetByID(suite.ctx, person.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(person.ID, retrieved.ID)
	suite.Equal(person.Email, retrieved.Email)
	suite.Require().NotNil(retrieved.Organization)
	suite.Equal(org.ID, retrieved.Organization.ID)
}

// TestGetByIDNotFound tests retrieving a non-existent person
func (suite *PersonRepositoryTestSuite) TestGetByIDNotFound() {
	person, err := suite.repo.GetByID(suite.ctx, uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(person)
}

// TestGetAllFreeTextFilter tests searching by name or email
func (suite *PersonRepositoryTestSuite) TestGetAllFreeTextFilter() {
	org := suite.createOrganization()

	jane := suite.factories.Person.WithOrganization(org.ID)
	jane.FirstName = "Jane"
	jane.LastName = "Rivera"
	suite.NoError(suite.repo.Create(suite.ctx, jane))

	john := suite.factories.Person.WithOrganization(org.ID)
	john.FirstName = "John"
	john.LastName = "Smith"
	suite.NoError(suite.repo.Create(suite.ctx, john))

	people, err := suite.repo.GetAll(suite.ctx, &SearchFilters{Query: "rivera"})

	suite.NoError(err)
	suite.Len(people, 1)
	suite.Equal(jane.ID, people[0].ID)
}

// TestGetByOrganization tests listing the contacts of one organization
func (suite *PersonRepositoryTestSuite) TestGetByOrganization() {
	org1 := suite.createOrganization()
	org2 := suite.createOrganization()

	p1 := suite.factories.Person.WithOrganization(org1.ID)
	suite.NoError(suite.repo.Create(suite.ctx, p1))
	p2 := suite.factories.Person.WithOrganization(org1.ID)
	suite.NoError(suite.repo.Create(suite.ctx, p2))
	p3 := suite.factories.Person.WithOrganization(org2.ID)
	suite.NoError(suite.repo.Create(suite.ctx, p3))

	people, err := suite.repo.GetByOrganization(suite.ctx, org1.ID)

	suite.NoError(err)
	suite.Len(people, 2)
	for _, p := range people {
		suite.Equal(org1.ID, p.OrganizationID)
	}
}

// TestGetAllOrdering tests that people come back most recently updated first
func (suite *PersonRepositoryTestSuite) TestGetAllOrdering() {
	org := suite.createOrganization()

	p1 := suite.factories.Person.WithOrganization(org.ID)
	suite.NoError(suite.repo.Create(suite.ctx, p1))
	p2 := suite.factories.Person.WithOrganization(org.ID)
	suite.NoError(suite.repo.Create(suite.ctx, p2))

	suite.NoError(suite.baseTestSuite.DB.Model(&models.Person{}).
		Where("id = ?", p1.ID).
		UpdateColumn("updated_at", time.Now().Add(-time.Hour)).Error)

	people, err := suite.repo.GetAll(suite.ctx, nil)

	suite.NoError(err)
	suite.Len(people, 2)
	suite.Equal(p2.ID, people[0].ID)
	suite.Equal(p1.ID, people[1].ID)
}

// TestUpdate tests that a partial update touches only the named fields
func (suite *PersonRepositoryTestSuite) TestUpdate() {
	org := suite.createOrganization()
	person := suite.factories.Person.WithOrganization(org.ID)
	suite.NoError(suite.repo.Create(suite.ctx, person))

	err := suite.repo.Update(suite.ctx, person.ID, map[string]interface{}{
		"title":      "Executive Director",
		"updated_by": "editor@test.com",
	})
	suite.NoError(err)

	var stored models.Person
	suite.NoError(suite.baseTestSuite.DB.First(&stored, "id = ?", person.ID).Error)
	suite.Equal("Executive Director", stored.Title)
	suite.Equal("editor@test.com", stored.UpdatedBy)
	suite.Equal(person.FirstName, stored.FirstName)
	suite.Equal(person.Email, stored.Email)
}

// TestDelete tests deleting a person
func (suite *PersonRepositoryTestSuite) TestDelete() {
	org := suite.createOrganization()
	person := suite.factories.Person.WithOrganization(org.ID)
	suite.NoError(suite.repo.Create(suite.ctx, person))

	err := suite.repo.Delete(suite.ctx, person.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(suite.ctx, person.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteMissingRowSucceeds tests that deleting an absent row is not an error
func (suite *PersonRepositoryTestSuite) TestDeleteMissingRowSucceeds() {
	err := suite.repo.Delete(suite.ctx, uuid.New())
	suite.NoError(err)
}

// TestPersonRepositoryTestSuite runs the test suite
func TestPersonRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PersonRepositoryTestSuite))
}
