package item

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

// Service exposes item management operations.
type Service interface {
	Create(ctx context.Context, input CreateItemInput) (*ItemDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*ItemDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ItemDTO, error)
	GetByName(ctx context.Context, name string) (*ItemDTO, error)
	List(ctx context.Context) ([]ItemDTO, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]ItemDTO, error)
	ListBySubCategory(ctx context.Context, subCategoryID uuid.UUID) ([]ItemDTO, error)
	Search(ctx context.Context, name string) ([]ItemDTO, error)
}

// CreateItemInput holds the validated payload to create an item. At least
// one of CategoryID or SubCategoryID must be set.
type CreateItemInput struct {
	Name          string
	Image         string
	Description   string
	TaxApplicable bool
	Tax           *decimal.Decimal
	BaseAmount    decimal.Decimal
	Discount      *decimal.Decimal
	CategoryID    *uuid.UUID
	SubCategoryID *uuid.UUID
}

// UpdateItemInput holds optional mutation values for an item. A nil
// field means the field was not supplied; an explicit zero is a real
// value and is applied.
type UpdateItemInput struct {
	Name          *string
	Image         *string
	Description   *string
	TaxApplicable *bool
	Tax           *decimal.Decimal
	BaseAmount    *decimal.Decimal
	Discount      *decimal.Decimal
	CategoryID    *uuid.UUID
	SubCategoryID *uuid.UUID
}

// Empty reports whether no updatable field was supplied.
func (in UpdateItemInput) Empty() bool {
	return in.Name == nil &&
		in.Image == nil &&
		in.Description == nil &&
		in.TaxApplicable == nil &&
		in.Tax == nil &&
		in.BaseAmount == nil &&
		in.Discount == nil &&
		in.CategoryID == nil &&
		in.SubCategoryID == nil
}

type categoryLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
}

type subCategoryLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.SubCategory, error)
}

type service struct {
	repo            *Repository
	categoryRepo    categoryLoader
	subCategoryRepo subCategoryLoader
}

// NewService constructs an item service instance.
func NewService(repo *Repository, categoryRepo categoryLoader, subCategoryRepo subCategoryLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("item repository required")
	}
	if categoryRepo == nil {
		return nil, fmt.Errorf("category repository required")
	}
	if subCategoryRepo == nil {
		return nil, fmt.Errorf("subcategory repository required")
	}
	return &service{repo: repo, categoryRepo: categoryRepo, subCategoryRepo: subCategoryRepo}, nil
}

// Create resolves any supplied parent references and inserts the item.
// Discount defaults to zero and the total is always derived, never taken
// from the caller.
func (s *service) Create(ctx context.Context, input CreateItemInput) (*ItemDTO, error) {
	if input.CategoryID == nil && input.SubCategoryID == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "either categoryId or subCategoryId is required")
	}

	if err := s.resolveParents(ctx, input.CategoryID, input.SubCategoryID); err != nil {
		return nil, err
	}

	discount := decimal.Zero
	if input.Discount != nil {
		discount = *input.Discount
	}

	item := &models.Item{
		Name:          strings.TrimSpace(input.Name),
		Image:         strings.TrimSpace(input.Image),
		Description:   input.Description,
		TaxApplicable: input.TaxApplicable,
		Tax:           input.Tax,
		BaseAmount:    input.BaseAmount,
		Discount:      discount,
		TotalAmount:   input.BaseAmount.Sub(discount),
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: insert item")
	}
	return NewItemDTO(created), nil
}

// Update applies only the supplied fields to an existing item. The total
// is recomputed whenever the base amount or the discount changes, using
// the stored value for whichever of the two was not supplied.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*ItemDTO, error) {
	if input.Empty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one field is required")
	}
	if input.TaxApplicable != nil && *input.TaxApplicable && input.Tax == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tax is required when taxApplicable is true")
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: load item")
	}

	if err := s.resolveParents(ctx, input.CategoryID, input.SubCategoryID); err != nil {
		return nil, err
	}

	applyUpdate(item, input)

	updated, err := s.repo.Save(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: update item")
	}
	return NewItemDTO(updated), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*ItemDTO, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: load item")
	}
	return NewItemDTO(item), nil
}

func (s *service) GetByName(ctx context.Context, name string) (*ItemDTO, error) {
	item, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: load item by name")
	}
	return NewItemDTO(item), nil
}

func (s *service) List(ctx context.Context) ([]ItemDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: list items")
	}
	if len(rows) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "items not found")
	}
	return NewItemDTOs(rows), nil
}

func (s *service) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]ItemDTO, error) {
	rows, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: list items by category")
	}
	if len(rows) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "items not found")
	}
	return NewItemDTOs(rows), nil
}

func (s *service) ListBySubCategory(ctx context.Context, subCategoryID uuid.UUID) ([]ItemDTO, error) {
	rows, err := s.repo.ListBySubCategory(ctx, subCategoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: list items by subcategory")
	}
	if len(rows) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "items not found")
	}
	return NewItemDTOs(rows), nil
}

func (s *service) Search(ctx context.Context, name string) ([]ItemDTO, error) {
	rows, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: search items")
	}
	if len(rows) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "items not found")
	}
	return NewItemDTOs(rows), nil
}

// resolveParents verifies that any supplied parent reference exists. The
// database foreign keys remain the final authority; this check exists to
// turn dangling references into 404s instead of constraint errors.
func (s *service) resolveParents(ctx context.Context, categoryID, subCategoryID *uuid.UUID) error {
	if categoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *categoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: load parent category")
		}
	}
	if subCategoryID != nil {
		if _, err := s.subCategoryRepo.FindByID(ctx, *subCategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "subcategory not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "db: load parent subcategory")
		}
	}
	return nil
}

func applyUpdate(item *models.Item, input UpdateItemInput) {
	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Image != nil {
		item.Image = strings.TrimSpace(*input.Image)
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.TaxApplicable != nil {
		item.TaxApplicable = *input.TaxApplicable
	}
	if input.Tax != nil {
		item.Tax = input.Tax
	}
	if input.BaseAmount != nil {
		item.BaseAmount = *input.BaseAmount
	}
	if input.Discount != nil {
		item.Discount = *input.Discount
	}
	if input.BaseAmount != nil || input.Discount != nil {
		item.TotalAmount = item.BaseAmount.Sub(item.Discount)
	}
	if input.CategoryID != nil {
		item.CategoryID = input.CategoryID
	}
	if input.SubCategoryID != nil {
		item.SubCategoryID = input.SubCategoryID
	}
}
