package repository

import (
	"context"

	"partner-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonRepository handles database operations for people
type PersonRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create creates a new person
func (r *PersonRepository) Create(ctx context.Context, person *models.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}

// GetByID retrieves a person by ID with their organization
func (r *PersonRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Person, error) {
	var person models.Person
	err := r.db.WithContext(ctx).
		Preload("Organization").
		First(&person, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// GetAll retrieves people matching the filters, most recently updated first
func (r *PersonRepository) GetAll(ctx context.Context, filters *SearchFilters) ([]models.Person, error) {
	var people []models.Person
	query := r.db.WithContext(ctx).Model(&models.Person{}).Preload("Organization")
	query = applyFilters(query, filters, personFilterColumns())
	if err := query.Order("updated_at DESC").Find(&people).Error; err != nil {
		return nil, err
	}
	return people, nil
}

// GetByOrganization retrieves all contacts at one organization
func (r *PersonRepository) GetByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Person, error) {
	var people []models.Person
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("updated_at DESC").
		Find(&people).Error
	if err != nil {
		return nil, err
	}
	return people, nil
}

// Update applies a partial update keyed by id
func (r *PersonRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Person{}).
		Where("id = ?", id).Updates(fields).Error
}

// Delete removes a person by id; deleting a missing row is not an error
func (r *PersonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Person{}, "id = ?", id).Error
}

func personFilterColumns() filterColumns {
	return filterColumns{
		search: func(db *gorm.DB, query string) *gorm.DB {
			q := "%" + query + "%"
			return db.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", q, q, q)
		},
		organization: "organization_id",
		dateField:    "updated_at",
		updatedAt:    "updated_at",
	}
}
