package subcategory

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

// Service exposes subcategory management operations.
type Service interface {
	Create(ctx context.Context, input CreateSubCategoryInput) (*SubCategoryDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateSubCategoryInput) (*SubCategoryDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SubCategoryDTO, error)
	GetByName(ctx context.Context, name string) (*SubCategoryDTO, error)
	List(ctx context.Context) ([]SubCategoryDTO, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]SubCategoryDTO, error)
}

// CreateSubCategoryInput holds the validated payload to create a
// subcategory. Nil tax fields inherit the parent's values.
type CreateSubCategoryInput struct {
	Name          string
	Image         string
	Description   string
	TaxApplicable *bool
	Tax           *decimal.Decimal
	CategoryID    uuid.UUID
}

// UpdateSubCategoryInput holds optional mutation values for a
// subcategory. A nil field means the field was not supplied.
type UpdateSubCategoryInput struct {
	Name          *string
	Image         *string
	Description   *string
	TaxApplicable *bool
	Tax           *decimal.Decimal
}

// Empty reports whether no updatable field was supplied.
func (in UpdateSubCategoryInput) Empty() bool {
	return in.Name == nil &&
		in.Image == nil &&
		in.Description == nil &&
		in.TaxApplicable == nil &&
		in.Tax == nil
}

type categoryLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
}

type service struct {
	repo         *Repository
	categoryRepo categoryLoader
}

// NewService constructs a subcategory service instance.
func NewService(repo *Repository, categoryRepo categoryLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("subcategory repository required")
	}
	if categoryRepo == nil {
		return nil, fmt.Errorf("category repository required")
	}
	return &service{repo: repo, categoryRepo: categoryRepo}, nil
}

// Create resolves the parent category and inserts the subcategory. Tax
// fields omitted by the caller are copied from the parent's current
// values; the copy happens once, at creation.
func (s *service) Create(ctx context.Context, input CreateSubCategoryInput) (*SubCategoryDTO, error) {
	parent, err := s.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: load parent category")
	}

	taxApplicable := parent.TaxApplicable
	if input.TaxApplicable != nil {
		taxApplicable = *input.TaxApplicable
	}
	tax := input.Tax
	if tax == nil && parent.Tax != nil {
		copied := *parent.Tax
		tax = &copied
	}

	sub := &models.SubCategory{
		Name:          strings.TrimSpace(input.Name),
		Image:         strings.TrimSpace(input.Image),
		Description:   input.Description,
		TaxApplicable: taxApplicable,
		Tax:           tax,
		CategoryID:    parent.ID,
	}

	created, err := s.repo.Create(ctx, sub)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: insert subcategory")
	}
	return NewSubCategoryDTO(created), nil
}

// Update applies only the supplied fields to an existing subcategory.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateSubCategoryInput) (*SubCategoryDTO, error) {
	if input.Empty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one field is required")
	}

	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "subcategory not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: load subcategory")
	}

	applyUpdate(sub, input)

	updated, err := s.repo.Save(ctx, sub)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: update subcategory")
	}
	return NewSubCategoryDTO(updated), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*SubCategoryDTO, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "subcategory not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: load subcategory")
	}
	return NewSubCategoryDTO(sub), nil
}

func (s *service) GetByName(ctx context.Context, name string) (*SubCategoryDTO, error) {
	sub, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "subcategory not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: load subcategory by name")
	}
	return NewSubCategoryDTO(sub), nil
}

func (s *service) List(ctx context.Context) ([]SubCategoryDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: list subcategories")
	}
	if len(rows) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "subcategories not found")
	}
	return NewSubCategoryDTOs(rows), nil
}

// ListByCategory returns the subcategories under a category; zero rows is
// not found, matching the list semantics everywhere else.
func (s *service) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]SubCategoryDTO, error) {
	rows, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: list subcategories by category")
	}
	if len(rows) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "subcategories not found")
	}
	return NewSubCategoryDTOs(rows), nil
}

func applyUpdate(sub *models.SubCategory, input UpdateSubCategoryInput) {
	if input.Name != nil {
		sub.Name = strings.TrimSpace(*input.Name)
	}
	if input.Image != nil {
		sub.Image = strings.TrimSpace(*input.Image)
	}
	if input.Description != nil {
		sub.Description = *input.Description
	}
	if input.TaxApplicable != nil {
		sub.TaxApplicable = *input.TaxApplicable
	}
	if input.Tax != nil {
		sub.Tax = input.Tax
	}
}
