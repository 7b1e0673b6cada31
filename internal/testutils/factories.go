package testutils

import (
	"time"

	"partner-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			CreatedBy: "tester@test.com",
			UpdatedBy: "tester@test.com",
		},
		Name:             "Test Organization",
		Status:           models.OrganizationStatusActive,
		MissionArea:      models.MissionAreaEducation,
		OrganizationType: models.OrganizationTypeNonprofit,
		Address:          "100 Main St",
		City:             "Springfield",
		State:            "IL",
		Zip:              "62701",
		Website:          "https://test.org",
		Phone:            "+1-555-0100",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// WithStatus sets a custom status for the organization
func (f *OrganizationFactory) WithStatus(status models.OrganizationStatus) *models.Organization {
	org := f.Create()
	org.Status = status
	return org
}

// WithRegion sets the region ID for the organization
func (f *OrganizationFactory) WithRegion(regionID uuid.UUID) *models.Organization {
	org := f.Create()
	org.RegionID = &regionID
	return org
}

// PersonFactory provides methods to create test Person data
type PersonFactory struct{}

// NewPersonFactory creates a new PersonFactory
func NewPersonFactory() *PersonFactory {
	return &PersonFactory{}
}

// Create creates a test Person with default values
func (f *PersonFactory) Create() *models.Person {
	id := uuid.New()
	return &models.Person{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			CreatedBy: "tester@test.com",
			UpdatedBy: "tester@test.com",
		},
		OrganizationID: uuid.New(),
		FirstName:      "Jane",
		LastName:       "Doe",
		Title:          "Program Director",
		Email:          "jane." + id.String()[:6] + "@test.com",
		Phone:          "+1-555-0123",
		Notes:          "Primary contact",
	}
}

// WithOrganization sets the organization ID for the person
func (f *PersonFactory) WithOrganization(orgID uuid.UUID) *models.Person {
	person := f.Create()
	person.OrganizationID = orgID
	return person
}

// WithName sets a custom first and last name for the person
func (f *PersonFactory) WithName(first, last string) *models.Person {
	person := f.Create()
	person.FirstName = first
	person.LastName = last
	return person
}

// MeetingFactory provides methods to create test Meeting data
type MeetingFactory struct{}

// NewMeetingFactory creates a new MeetingFactory
func NewMeetingFactory() *MeetingFactory {
	return &MeetingFactory{}
}

// Create creates a test Meeting with default values
func (f *MeetingFactory) Create() *models.Meeting {
	return &models.Meeting{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			CreatedBy: "tester@test.com",
			UpdatedBy: "tester@test.com",
		},
		OrganizationID: uuid.New(),
		Date:           time.Now().Add(24 * time.Hour),
		Location:       "Community Center",
		Summary:        "Quarterly partnership check-in",
	}
}

// WithOrganization sets the organization ID for the meeting
func (f *MeetingFactory) WithOrganization(orgID uuid.UUID) *models.Meeting {
	meeting := f.Create()
	meeting.OrganizationID = orgID
	return meeting
}

// WithDate sets the meeting date
func (f *MeetingFactory) WithDate(date time.Time) *models.Meeting {
	meeting := f.Create()
	meeting.Date = date
	return meeting
}

// WithFollowUp sets the follow-up date for the meeting
func (f *MeetingFactory) WithFollowUp(date time.Time) *models.Meeting {
	meeting := f.Create()
	meeting.FollowUpDate = &date
	return meeting
}

// FactorySet provides access to all test data factories
type FactorySet struct {
	Organization *OrganizationFactory
	Person       *PersonFactory
	Meeting      *MeetingFactory
	Region       *RegionFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Person:       NewPersonFactory(),
		Meeting:      NewMeetingFactory(),
		Region:       NewRegionFactory(),
	}
}

// RegionFactory provides methods to create test Region data
type RegionFactory struct{}

// NewRegionFactory creates a new RegionFactory
func NewRegionFactory() *RegionFactory {
	return &RegionFactory{}
}

// Create creates a test Region with default values
func (f *RegionFactory) Create() *models.Region {
	return &models.Region{
		ID:        uuid.New(),
		Name:      "Test Region",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// WithName sets a custom name for the region
func (f *RegionFactory) WithName(name string) *models.Region {
	region := f.Create()
	region.Name = name
	return region
}
