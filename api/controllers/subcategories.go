package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/avelarsoft/menuforge-backend/api/responses"
	"github.com/avelarsoft/menuforge-backend/api/validators"
	subcategorysvc "github.com/avelarsoft/menuforge-backend/internal/subcategories"
	pkgerrors "github.com/avelarsoft/menuforge-backend/pkg/errors"
	"github.com/avelarsoft/menuforge-backend/pkg/logger"
)

// CreateSubCategory handles POST /api/subcategory. Tax fields omitted
// from the payload are inherited from the parent category.
func CreateSubCategory(svc subcategorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "subcategory service unavailable"))
			return
		}

		var payload createSubCategoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sub, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, sub)
	}
}

// ListSubCategories handles GET /api/subcategories.
func ListSubCategories(svc subcategorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "subcategory service unavailable"))
			return
		}

		subs, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, subs)
	}
}

// ListSubCategoriesByCategory handles GET /api/subcategories/category/{categoryId}.
func ListSubCategoriesByCategory(svc subcategorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "subcategory service unavailable"))
			return
		}

		categoryID, err := parseUUIDParam(r, "categoryId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		subs, err := svc.ListByCategory(r.Context(), categoryID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, subs)
	}
}

// GetSubCategory handles GET /api/subcategory?id= or ?name=.
func GetSubCategory(svc subcategorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "subcategory service unavailable"))
			return
		}

		query := r.URL.Query()
		if raw := strings.TrimSpace(query.Get("id")); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid id"))
				return
			}
			sub, err := svc.GetByID(r.Context(), id)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, sub)
			return
		}

		if name := strings.TrimSpace(query.Get("name")); name != "" {
			sub, err := svc.GetByName(r.Context(), name)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, sub)
			return
		}

		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "id or name query parameter is required"))
	}
}

// UpdateSubCategory handles PUT /api/subcategory/{subCategoryId}.
func UpdateSubCategory(svc subcategorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "subcategory service unavailable"))
			return
		}

		id, err := parseUUIDParam(r, "subCategoryId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateSubCategoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sub, err := svc.Update(r.Context(), id, payload.toUpdateInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, sub)
	}
}

type createSubCategoryRequest struct {
	Name          string   `json:"name" validate:"required"`
	Image         string   `json:"image" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	TaxApplicable *bool    `json:"taxApplicable,omitempty"`
	Tax           *float64 `json:"tax,omitempty" validate:"omitempty,gte=0"`
	CategoryID    string   `json:"categoryId" validate:"required"`
}

func (r createSubCategoryRequest) toCreateInput() (subcategorysvc.CreateSubCategoryInput, error) {
	categoryID, err := uuid.Parse(strings.TrimSpace(r.CategoryID))
	if err != nil {
		return subcategorysvc.CreateSubCategoryInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid categoryId")
	}
	return subcategorysvc.CreateSubCategoryInput{
		Name:          strings.TrimSpace(r.Name),
		Image:         strings.TrimSpace(r.Image),
		Description:   r.Description,
		TaxApplicable: r.TaxApplicable,
		Tax:           toDecimal(r.Tax),
		CategoryID:    categoryID,
	}, nil
}

type updateSubCategoryRequest struct {
	Name          *string  `json:"name,omitempty"`
	Image         *string  `json:"image,omitempty"`
	Description   *string  `json:"description,omitempty"`
	TaxApplicable *bool    `json:"taxApplicable,omitempty"`
	Tax           *float64 `json:"tax,omitempty" validate:"omitempty,gte=0"`
}

func (r updateSubCategoryRequest) toUpdateInput() subcategorysvc.UpdateSubCategoryInput {
	return subcategorysvc.UpdateSubCategoryInput{
		Name:          r.Name,
		Image:         r.Image,
		Description:   r.Description,
		TaxApplicable: r.TaxApplicable,
		Tax:           toDecimal(r.Tax),
	}
}
