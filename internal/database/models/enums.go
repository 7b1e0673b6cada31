package models

// OrganizationStatus represents the lifecycle status of a partner organization
type OrganizationStatus string

const (
	OrganizationStatusActive   OrganizationStatus = "active"
	OrganizationStatusInactive OrganizationStatus = "inactive"
	OrganizationStatusPending  OrganizationStatus = "pending"
)

// MissionArea represents the primary mission focus of a partner organization
type MissionArea string

const (
	MissionAreaEducation          MissionArea = "education"
	MissionAreaFinancialStability MissionArea = "financial_stability"
	MissionAreaHealth             MissionArea = "health"
	MissionAreaHousing            MissionArea = "housing"
	MissionAreaFoodSecurity       MissionArea = "food_security"
	MissionAreaDisasterRelief     MissionArea = "disaster_relief"
)

// OrganizationType classifies the kind of partner organization
type OrganizationType string

const (
	OrganizationTypeNonprofit  OrganizationType = "nonprofit"
	OrganizationTypeBusiness   OrganizationType = "business"
	OrganizationTypeGovernment OrganizationType = "government"
	OrganizationTypeSchool     OrganizationType = "school"
	OrganizationTypeFaithBased OrganizationType = "faith_based"
	OrganizationTypeHealthcare OrganizationType = "healthcare"
)

// IsValid checks if the OrganizationStatus is valid
func (s OrganizationStatus) IsValid() bool {
	switch s {
	case OrganizationStatusActive, OrganizationStatusInactive, OrganizationStatusPending:
		return true
	}
	return false
}

// IsValid checks if the MissionArea is valid
func (m MissionArea) IsValid() bool {
	switch m {
	case MissionAreaEducation, MissionAreaFinancialStability, MissionAreaHealth,
		MissionAreaHousing, MissionAreaFoodSecurity, MissionAreaDisasterRelief:
		return true
	}
	return false
}

// IsValid checks if the OrganizationType is valid
func (t OrganizationType) IsValid() bool {
	switch t {
	case OrganizationTypeNonprofit, OrganizationTypeBusiness, OrganizationTypeGovernment,
		OrganizationTypeSchool, OrganizationTypeFaithBased, OrganizationTypeHealthcare:
		return true
	}
	return false
}
