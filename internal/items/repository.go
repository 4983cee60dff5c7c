package item

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avelarsoft/menuforge-backend/pkg/db/models"
)

// Repository wires item persistence to GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new item row.
func (r *Repository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Save persists all fields of an existing item row.
func (r *Repository) Save(ctx context.Context, item *models.Item) (*models.Item, error) {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// FindByID loads the item without associations.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByName returns the first item whose name contains the given text,
// case-insensitively.
func (r *Repository) FindByName(ctx context.Context, name string) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", likePattern(name)).
		Order("created_at ASC").
		First(&item).
		Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns every item ordered by creation time.
func (r *Repository) List(ctx context.Context) ([]models.Item, error) {
	var rows []models.Item
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByCategory returns the items attached directly to a category.
func (r *Repository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Item, error) {
	var rows []models.Item
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListBySubCategory returns the items attached to a subcategory.
func (r *Repository) ListBySubCategory(ctx context.Context, subCategoryID uuid.UUID) ([]models.Item, error) {
	var rows []models.Item
	if err := r.db.WithContext(ctx).
		Where("sub_category_id = ?", subCategoryID).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SearchByName returns every item whose name contains the given text,
// case-insensitively.
func (r *Repository) SearchByName(ctx context.Context, name string) ([]models.Item, error) {
	var rows []models.Item
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", likePattern(name)).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func likePattern(name string) string {
	return "%" + strings.ToLower(name) + "%"
}
