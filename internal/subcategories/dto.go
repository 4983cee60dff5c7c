package subcategory

import (
	"time"

	"github.com/google/uuid"

	"github.com/avelarsoft/menuforge-backend/pkg/db/models"
)

// SubCategoryDTO is the subcategory payload returned to clients.
type SubCategoryDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Image         string    `json:"image"`
	Description   string    `json:"description"`
	TaxApplicable bool      `json:"taxApplicable"`
	Tax           *float64  `json:"tax,omitempty"`
	CategoryID    uuid.UUID `json:"categoryId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewSubCategoryDTO builds a DTO from the persisted model.
func NewSubCategoryDTO(sub *models.SubCategory) *SubCategoryDTO {
	dto := &SubCategoryDTO{
		ID:            sub.ID,
		Name:          sub.Name,
		Image:         sub.Image,
		Description:   sub.Description,
		TaxApplicable: sub.TaxApplicable,
		CategoryID:    sub.CategoryID,
		CreatedAt:     sub.CreatedAt,
		UpdatedAt:     sub.UpdatedAt,
	}
	if sub.Tax != nil {
		tax := sub.Tax.InexactFloat64()
		dto.Tax = &tax
	}
	return dto
}

// NewSubCategoryDTOs maps a slice of models.
func NewSubCategoryDTOs(subs []models.SubCategory) []SubCategoryDTO {
	dtos := make([]SubCategoryDTO, 0, len(subs))
	for i := range subs {
		dtos = append(dtos, *NewSubCategoryDTO(&subs[i]))
	}
	return dtos
}
