package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/avelarsoft/menuforge-backend/pkg/db/models"
	pkgerrors "github.com/avelarsoft/menuforge-backend/pkg/errors"
)

// Service exposes category management operations.
type Service interface {
	Create(ctx context.Context, input CreateCategoryInput) (*CategoryDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*CategoryDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CategoryDTO, error)
	GetByName(ctx context.Context, name string) (*CategoryDTO, error)
	List(ctx context.Context) ([]CategoryDTO, error)
}

// CreateCategoryInput holds the validated payload to create a category.
type CreateCategoryInput struct {
	Name          string
	Image         string
	Description   string
	TaxApplicable bool
	Tax           *decimal.Decimal
	TaxType       *string
}

// UpdateCategoryInput holds optional mutation values for a category.
// A nil field means the field was not supplied.
type UpdateCategoryInput struct {
	Name          *string
	Image         *string
	Description   *string
	TaxApplicable *bool
	Tax           *decimal.Decimal
	TaxType       *string
}

// Empty reports whether no updatable field was supplied.
func (in UpdateCategoryInput) Empty() bool {
	return in.Name == nil &&
		in.Image == nil &&
		in.Description == nil &&
		in.TaxApplicable == nil &&
		in.Tax == nil &&
		in.TaxType == nil
}

type service struct {
	repo *Repository
}

// NewService constructs a category service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("category repository required")
	}
	return &service{repo: repo}, nil
}

// Create validates the tax rule and inserts the category. The category is
// the root of the hierarchy, so nothing is inherited here.
func (s *service) Create(ctx context.Context, input CreateCategoryInput) (*CategoryDTO, error) {
	if input.TaxApplicable && input.Tax == nil && input.TaxType == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tax or taxType is required when taxApplicable is true")
	}

	category, err := s.repo.Create(ctx, newCategoryModel(input))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: insert category")
	}
	return NewCategoryDTO(category), nil
}

// Update applies only the supplied fields to an existing category.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*CategoryDTO, error) {
	if input.Empty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one field is required")
	}
	if input.TaxApplicable != nil && *input.TaxApplicable && input.Tax == nil && input.TaxType == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tax or taxType is required when taxApplicable is true")
	}

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: load category")
	}

	applyUpdate(category, input)

	updated, err := s.repo.Save(ctx, category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: update category")
	}
	return NewCategoryDTO(updated), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*CategoryDTO, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: load category")
	}
	return NewCategoryDTO(category), nil
}

func (s *service) GetByName(ctx context.Context, name string) (*CategoryDTO, error) {
	category, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: load category by name")
	}
	return NewCategoryDTO(category), nil
}

// List returns every category; zero rows is reported as not found, never
// as an empty success.
func (s *service) List(ctx context.Context) ([]CategoryDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: list categories")
	}
	if len(rows) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "categories not found")
	}
	return NewCategoryDTOs(rows), nil
}

func newCategoryModel(input CreateCategoryInput) *models.Category {
	return &models.Category{
		Name:          strings.TrimSpace(input.Name),
		Image:         strings.TrimSpace(input.Image),
		Description:   input.Description,
		TaxApplicable: input.TaxApplicable,
		Tax:           input.Tax,
		TaxType:       input.TaxType,
	}
}

func applyUpdate(category *models.Category, input UpdateCategoryInput) {
	if input.Name != nil {
		category.Name = strings.TrimSpace(*input.Name)
	}
	if input.Image != nil {
		category.Image = strings.TrimSpace(*input.Image)
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.TaxApplicable != nil {
		category.TaxApplicable = *input.TaxApplicable
	}
	if input.Tax != nil {
		category.Tax = input.Tax
	}
	if input.TaxType != nil {
		category.TaxType = input.TaxType
	}
}
