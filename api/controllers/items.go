package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avelarsoft/menuforge-backend/api/responses"
	"github.com/avelarsoft/menuforge-backend/api/validators"
	itemsvc "github.com/avelarsoft/menuforge-backend/internal/items"
	pkgerrors "github.com/avelarsoft/menuforge-backend/pkg/errors"
	"github.com/avelarsoft/menuforge-backend/pkg/logger"
)

// CreateItem handles POST /api/item.
func CreateItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		var payload createItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// ListItems handles GET /api/items.
func ListItems(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

// ListItemsByCategory handles GET /api/item/category/{categoryId}.
func ListItemsByCategory(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		categoryID, err := parseUUIDParam(r, "categoryId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.ListByCategory(r.Context(), categoryID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

// ListItemsBySubCategory handles GET /api/item/subcategory/{subCategoryId}.
func ListItemsBySubCategory(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		subCategoryID, err := parseUUIDParam(r, "subCategoryId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.ListBySubCategory(r.Context(), subCategoryID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

// GetItem handles GET /api/item?id= or ?name=.
func GetItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		query := r.URL.Query()
		if raw := strings.TrimSpace(query.Get("id")); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid id"))
				return
			}
			item, err := svc.GetByID(r.Context(), id)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, item)
			return
		}

		if name := strings.TrimSpace(query.Get("name")); name != "" {
			item, err := svc.GetByName(r.Context(), name)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, item)
			return
		}

		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "id or name query parameter is required"))
	}
}

// SearchItems handles GET /api/item/search?name=.
func SearchItems(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		name := strings.TrimSpace(r.URL.Query().Get("name"))
		if name == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "name query parameter is required"))
			return
		}

		items, err := svc.Search(r.Context(), name)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

// UpdateItem handles PUT /api/item/{itemId}.
func UpdateItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		id, err := parseUUIDParam(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}

type createItemRequest struct {
	Name          string   `json:"name" validate:"required"`
	Image         string   `json:"image" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	TaxApplicable *bool    `json:"taxApplicable" validate:"required"`
	Tax           *float64 `json:"tax,omitempty" validate:"omitempty,gte=0"`
	BaseAmount    *float64 `json:"baseAmount" validate:"required,gte=0"`
	Discount      *float64 `json:"discount,omitempty" validate:"omitempty,gte=0"`
	CategoryID    *string  `json:"categoryId,omitempty"`
	SubCategoryID *string  `json:"subCategoryId,omitempty"`
}

func (r createItemRequest) toCreateInput() (itemsvc.CreateItemInput, error) {
	categoryID, err := toUUID(r.CategoryID)
	if err != nil {
		return itemsvc.CreateItemInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid categoryId")
	}
	subCategoryID, err := toUUID(r.SubCategoryID)
	if err != nil {
		return itemsvc.CreateItemInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid subCategoryId")
	}
	return itemsvc.CreateItemInput{
		Name:          strings.TrimSpace(r.Name),
		Image:         strings.TrimSpace(r.Image),
		Description:   r.Description,
		TaxApplicable: *r.TaxApplicable,
		Tax:           toDecimal(r.Tax),
		BaseAmount:    decimal.NewFromFloat(*r.BaseAmount),
		Discount:      toDecimal(r.Discount),
		CategoryID:    categoryID,
		SubCategoryID: subCategoryID,
	}, nil
}

type updateItemRequest struct {
	Name          *string  `json:"name,omitempty"`
	Image         *string  `json:"image,omitempty"`
	Description   *string  `json:"description,omitempty"`
	TaxApplicable *bool    `json:"taxApplicable,omitempty"`
	Tax           *float64 `json:"tax,omitempty" validate:"omitempty,gte=0"`
	BaseAmount    *float64 `json:"baseAmount,omitempty" validate:"omitempty,gte=0"`
	Discount      *float64 `json:"discount,omitempty" validate:"omitempty,gte=0"`
	CategoryID    *string  `json:"categoryId,omitempty"`
	SubCategoryID *string  `json:"subCategoryId,omitempty"`
}

func (r updateItemRequest) toUpdateInput() (itemsvc.UpdateItemInput, error) {
	categoryID, err := toUUID(r.CategoryID)
	if err != nil {
		return itemsvc.UpdateItemInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid categoryId")
	}
	subCategoryID, err := toUUID(r.SubCategoryID)
	if err != nil {
		return itemsvc.UpdateItemInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid subCategoryId")
	}
	return itemsvc.UpdateItemInput{
		Name:          r.Name,
		Image:         r.Image,
		Description:   r.Description,
		TaxApplicable: r.TaxApplicable,
		Tax:           toDecimal(r.Tax),
		BaseAmount:    toDecimal(r.BaseAmount),
		Discount:      toDecimal(r.Discount),
		CategoryID:    categoryID,
		SubCategoryID: subCategoryID,
	}, nil
}
