package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Item is a sellable menu entry. Both parent references are optional and
// independent; TotalAmount is always BaseAmount minus Discount.
type Item struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	Name          string           `gorm:"column:name;not null"`
	Image         string           `gorm:"column:image;not null"`
	Description   string           `gorm:"column:description;not null"`
	TaxApplicable bool             `gorm:"column:tax_applicable;not null"`
	Tax           *decimal.Decimal `gorm:"column:tax;type:numeric(6,3)"`
	BaseAmount    decimal.Decimal  `gorm:"column:base_amount;type:numeric(12,2);not null"`
	Discount      decimal.Decimal  `gorm:"column:discount;type:numeric(12,2);not null"`
	TotalAmount   decimal.Decimal  `gorm:"column:total_amount;type:numeric(12,2);not null"`
	CategoryID    *uuid.UUID       `gorm:"column:category_id;type:uuid;index"`
	Category      *Category        `gorm:"foreignKey:CategoryID"`
	SubCategoryID *uuid.UUID       `gorm:"column:sub_category_id;type:uuid;index"`
	SubCategory   *SubCategory     `gorm:"foreignKey:SubCategoryID"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
