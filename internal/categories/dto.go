package category

import (
	"time"

	"github.com/google/uuid"

	"github.com/avelarsoft/menuforge-backend/pkg/db/models"
)

// CategoryDTO is the category payload returned to clients.
type CategoryDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Image         string    `json:"image"`
	Description   string    `json:"description"`
	TaxApplicable bool      `json:"taxApplicable"`
	Tax           *float64  `json:"tax,omitempty"`
	TaxType       *string   `json:"taxType,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewCategoryDTO builds a DTO from the persisted model.
func NewCategoryDTO(category *models.Category) *CategoryDTO {
	dto := &CategoryDTO{
		ID:            category.ID,
		Name:          category.Name,
		Image:         category.Image,
		Description:   category.Description,
		TaxApplicable: category.TaxApplicable,
		TaxType:       category.TaxType,
		CreatedAt:     category.CreatedAt,
		UpdatedAt:     category.UpdatedAt,
	}
	if category.Tax != nil {
		tax := category.Tax.InexactFloat64()
		dto.Tax = &tax
	}
	return dto
}

// NewCategoryDTOs maps a slice of models.
func NewCategoryDTOs(categories []models.Category) []CategoryDTO {
	dtos := make([]CategoryDTO, 0, len(categories))
	for i := range categories {
		dtos = append(dtos, *NewCategoryDTO(&categories[i]))
	}
	return dtos
}
