package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category is a top-level menu grouping. It is the root of the tax
// hierarchy: its tax fields are never inherited from anywhere.
type Category struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	Name          string           `gorm:"column:name;not null"`
	Image         string           `gorm:"column:image;not null"`
	Description   string           `gorm:"column:description;not null"`
	TaxApplicable bool             `gorm:"column:tax_applicable;not null"`
	Tax           *decimal.Decimal `gorm:"column:tax;type:numeric(6,3)"`
	TaxType       *string          `gorm:"column:tax_type"`
	SubCategories []SubCategory    `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Items         []Item           `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
