package subcategory

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avelarsoft/menuforge-backend/pkg/db/models"
)

// Repository wires subcategory persistence to GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new subcategory row.
func (r *Repository) Create(ctx context.Context, sub *models.SubCategory) (*models.SubCategory, error) {
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// Save persists all fields of an existing subcategory row.
func (r *Repository) Save(ctx context.Context, sub *models.SubCategory) (*models.SubCategory, error) {
	if err := r.db.WithContext(ctx).Save(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// FindByID loads the subcategory without associations.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.SubCategory, error) {
	var sub models.SubCategory
	if err := r.db.WithContext(ctx).First(&sub, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// FindByName returns the first subcategory whose name contains the given
// text, case-insensitively.
func (r *Repository) FindByName(ctx context.Context, name string) (*models.SubCategory, error) {
	var sub models.SubCategory
	pattern := "%" + strings.ToLower(name) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("created_at ASC").
		First(&sub).
		Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// List returns every subcategory ordered by creation time.
func (r *Repository) List(ctx context.Context) ([]models.SubCategory, error) {
	var rows []models.SubCategory
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByCategory returns the subcategories owned by the given category.
func (r *Repository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.SubCategory, error) {
	var rows []models.SubCategory
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return rows, nil
}
