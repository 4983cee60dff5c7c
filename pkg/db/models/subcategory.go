package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SubCategory is a mid-level grouping owned by exactly one Category.
// Tax fields omitted at creation are copied from the parent at that
// moment; they do not track later parent updates.
type SubCategory struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	Name          string           `gorm:"column:name;not null"`
	Image         string           `gorm:"column:image;not null"`
	Description   string           `gorm:"column:description;not null"`
	TaxApplicable bool             `gorm:"column:tax_applicable;not null"`
	Tax           *decimal.Decimal `gorm:"column:tax;type:numeric(6,3)"`
	CategoryID    uuid.UUID        `gorm:"column:category_id;type:uuid;not null;index"`
	Category      *Category        `gorm:"foreignKey:CategoryID"`
	Items         []Item           `gorm:"foreignKey:SubCategoryID;constraint:OnDelete:SET NULL"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (s *SubCategory) TableName() string {
	return "sub_categories"
}

func (s *SubCategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
