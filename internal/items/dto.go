package item

import (
	"time"

	"github.com/google/uuid"

	"github.com/avelarsoft/menuforge-backend/pkg/db/models"
)

// ItemDTO is the item payload returned to clients.
type ItemDTO struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Image         string     `json:"image"`
	Description   string     `json:"description"`
	TaxApplicable bool       `json:"taxApplicable"`
	Tax           *float64   `json:"tax,omitempty"`
	BaseAmount    float64    `json:"baseAmount"`
	Discount      float64    `json:"discount"`
	TotalAmount   float64    `json:"totalAmount"`
	CategoryID    *uuid.UUID `json:"categoryId,omitempty"`
	SubCategoryID *uuid.UUID `json:"subCategoryId,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// NewItemDTO builds a DTO from the persisted model.
func NewItemDTO(item *models.Item) *ItemDTO {
	dto := &ItemDTO{
		ID:            item.ID,
		Name:          item.Name,
		Image:         item.Image,
		Description:   item.Description,
		TaxApplicable: item.TaxApplicable,
		BaseAmount:    item.BaseAmount.InexactFloat64(),
		Discount:      item.Discount.InexactFloat64(),
		TotalAmount:   item.TotalAmount.InexactFloat64(),
		CategoryID:    item.CategoryID,
		SubCategoryID: item.SubCategoryID,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
	if item.Tax != nil {
		tax := item.Tax.InexactFloat64()
		dto.Tax = &tax
	}
	return dto
}

// NewItemDTOs maps a slice of models.
func NewItemDTOs(items []models.Item) []ItemDTO {
	dtos := make([]ItemDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *NewItemDTO(&items[i]))
	}
	return dtos
}
