package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/avelarsoft/menuforge-backend/api/responses"
	"github.com/avelarsoft/menuforge-backend/api/validators"
	categorysvc "github.com/avelarsoft/menuforge-backend/internal/categories"
	pkgerrors "github.com/avelarsoft/menuforge-backend/pkg/errors"
	"github.com/avelarsoft/menuforge-backend/pkg/logger"
)

// CreateCategory handles POST /api/category.
func CreateCategory(svc categorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "category service unavailable"))
			return
		}

		var payload createCategoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := svc.Create(r.Context(), payload.toCreateInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, category)
	}
}

// ListCategories handles GET /api/categories.
func ListCategories(svc categorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "category service unavailable"))
			return
		}

		categories, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, categories)
	}
}

// GetCategory handles GET /api/category?id= or ?name=.
func GetCategory(svc categorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "category service unavailable"))
			return
		}

		query := r.URL.Query()
		if raw := strings.TrimSpace(query.Get("id")); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid id"))
				return
			}
			category, err := svc.GetByID(r.Context(), id)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, category)
			return
		}

		if name := strings.TrimSpace(query.Get("name")); name != "" {
			category, err := svc.GetByName(r.Context(), name)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, category)
			return
		}

		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "id or name query parameter is required"))
	}
}

// UpdateCategory handles PUT /api/category/{categoryId}.
func UpdateCategory(svc categorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "category service unavailable"))
			return
		}

		id, err := parseUUIDParam(r, "categoryId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateCategoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := svc.Update(r.Context(), id, payload.toUpdateInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, category)
	}
}

type createCategoryRequest struct {
	Name          string   `json:"name" validate:"required"`
	Image         string   `json:"image" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	TaxApplicable *bool    `json:"taxApplicable" validate:"required"`
	Tax           *float64 `json:"tax,omitempty" validate:"omitempty,gte=0"`
	TaxType       *string  `json:"taxType,omitempty"`
}

func (r createCategoryRequest) toCreateInput() categorysvc.CreateCategoryInput {
	return categorysvc.CreateCategoryInput{
		Name:          strings.TrimSpace(r.Name),
		Image:         strings.TrimSpace(r.Image),
		Description:   r.Description,
		TaxApplicable: *r.TaxApplicable,
		Tax:           toDecimal(r.Tax),
		TaxType:       r.TaxType,
	}
}

type updateCategoryRequest struct {
	Name          *string  `json:"name,omitempty"`
	Image         *string  `json:"image,omitempty"`
	Description   *string  `json:"description,omitempty"`
	TaxApplicable *bool    `json:"taxApplicable,omitempty"`
	Tax           *float64 `json:"tax,omitempty" validate:"omitempty,gte=0"`
	TaxType       *string  `json:"taxType,omitempty"`
}

func (r updateCategoryRequest) toUpdateInput() categorysvc.UpdateCategoryInput {
	return categorysvc.UpdateCategoryInput{
		Name:          r.Name,
		Image:         r.Image,
		Description:   r.Description,
		TaxApplicable: r.TaxApplicable,
		Tax:           toDecimal(r.Tax),
		TaxType:       r.TaxType,
	}
}
