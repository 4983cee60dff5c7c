package subcategory

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/avelarsoft/menuforge-backend/pkg/db/models"
)

func mustCreateTestCategory(t *testing.T, tx *gorm.DB, taxApplicable bool, tax *float64) *models.Category {
	t.Helper()
	category := &models.Category{
		Name:          fmt.Sprintf("Category-%s", uuid.NewString()),
		Image:         "category.png",
		Description:   "Test category",
		TaxApplicable: taxApplicable,
	}
	if tax != nil {
		d := decimal.NewFromFloat(*tax)
		category.Tax = &d
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

func floatPtr(v float64) *float64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}
