package item

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/avelarsoft/menuforge-backend/pkg/db/models"
)

func mustCreateTestCategory(t *testing.T, tx *gorm.DB) *models.Category {
	t.Helper()
	category := &models.Category{
		Name:          fmt.Sprintf("Category-%s", uuid.NewString()),
		Image:         "category.png",
		Description:   "Test category",
		TaxApplicable: false,
	}
	if err := tx.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return category
}

func mustCreateTestSubCategory(t *testing.T, tx *gorm.DB, categoryID uuid.UUID) *models.SubCategory {
	t.Helper()
	sub := &models.SubCategory{
		Name:        fmt.Sprintf("Sub-%s", uuid.NewString()),
		Image:       "sub.png",
		Description: "Test subcategory",
		CategoryID:  categoryID,
	}
	if err := tx.Create(sub).Error; err != nil {
		t.Fatalf("create subcategory: %v", err)
	}
	return sub
}

func mustCreateTestItem(t *testing.T, tx *gorm.DB, name string, categoryID *uuid.UUID, base, discount float64) *models.Item {
	t.Helper()
	baseDec := decimal.NewFromFloat(base)
	discountDec := decimal.NewFromFloat(discount)
	item := &models.Item{
		Name:        name,
		Image:       "item.png",
		Description: "Test item",
		BaseAmount:  baseDec,
		Discount:    discountDec,
		TotalAmount: baseDec.Sub(discountDec),
		CategoryID:  categoryID,
	}
	if err := tx.Create(item).Error; err != nil {
		t.Fatalf("create item: %v", err)
	}
	return item
}

func strPtr(v string) *string {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func uuidPtr(v uuid.UUID) *uuid.UUID {
	return &v
}

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}
