package subcategory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	categorysvc "github.com/avelarsoft/menuforge-backend/internal/categories"
	pkgerrors "github.com/avelarsoft/menuforge-backend/pkg/errors"
)

func newTestService(t *testing.T) (Service, *Repository) {
	t.Helper()
	conn := openTestDB(t)
	repo := NewRepository(conn)
	svc, err := NewService(repo, categorysvc.NewRepository(conn))
	require.NoError(t, err)
	return svc, repo
}

func TestCreateInheritsTaxFromParent(t *testing.T) {
	svc, repo := newTestService(t)
	parent := mustCreateTestCategory(t, repo.db, true, floatPtr(5))

	dto, err := svc.Create(context.Background(), CreateSubCategoryInput{
		Name:        "Hot",
		Image:       "h.png",
		Description: "Hot drinks",
		CategoryID:  parent.ID,
	})
	require.NoError(t, err)
	assert.True(t, dto.TaxApplicable)
	require.NotNil(t, dto.Tax)
	assert.Equal(t, 5.0, *dto.Tax)
	assert.Equal(t, parent.ID, dto.CategoryID)
}

func TestCreateKeepsExplicitTaxFields(t *testing.T) {
	svc, repo := newTestService(t)
	parent := mustCreateTestCategory(t, repo.db, true, floatPtr(5))

	dto, err := svc.Create(context.Background(), CreateSubCategoryInput{
		Name:          "Cold",
		Image:         "c.png",
		Description:   "Cold drinks",
		TaxApplicable: boolPtr(false),
		Tax:           decPtr(0),
		CategoryID:    parent.ID,
	})
	require.NoError(t, err)
	assert.False(t, dto.TaxApplicable)
	require.NotNil(t, dto.Tax)
	assert.Equal(t, 0.0, *dto.Tax)
}

func TestCreateInheritanceIsSnapshotNotLive(t *testing.T) {
	svc, repo := newTestService(t)
	parent := mustCreateTestCategory(t, repo.db, true, floatPtr(5))

	dto, err := svc.Create(context.Background(), CreateSubCategoryInput{
		Name:        "Hot",
		Image:       "h.png",
		Description: "Hot drinks",
		CategoryID:  parent.ID,
	})
	require.NoError(t, err)

	newTax := decPtr(12)
	parent.Tax = newTax
	require.NoError(t, repo.db.Save(parent).Error)

	reloaded, err := svc.GetByID(context.Background(), dto.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Tax)
	assert.Equal(t, 5.0, *reloaded.Tax)
}

func TestCreateUnknownParentIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateSubCategoryInput{
		Name:        "Hot",
		Image:       "h.png",
		Description: "Hot drinks",
		CategoryID:  uuid.New(),
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	assert.Equal(t, "category not found", typed.Message())
}

func TestUpdateRequiresAtLeastOneField(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), uuid.New(), UpdateSubCategoryInput{})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestUpdateUnknownSubCategoryIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), uuid.New(), UpdateSubCategoryInput{Name: strPtr("Renamed")})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	assert.Equal(t, "subcategory not found", typed.Message())
}

func TestUpdateAppliesOnlySuppliedFields(t *testing.T) {
	svc, repo := newTestService(t)
	parent := mustCreateTestCategory(t, repo.db, false, nil)
	stored := mustCreateTestSubCategory(t, repo.db, parent.ID)

	dto, err := svc.Update(context.Background(), stored.ID, UpdateSubCategoryInput{
		Image: strPtr("new.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "new.png", dto.Image)
	assert.Equal(t, stored.Name, dto.Name)
}

func TestListByCategoryEmptyIsNotFound(t *testing.T) {
	svc, repo := newTestService(t)
	parent := mustCreateTestCategory(t, repo.db, false, nil)

	_, err := svc.ListByCategory(context.Background(), parent.ID)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	assert.Equal(t, "subcategories not found", typed.Message())
}

func TestListByCategoryFiltersRows(t *testing.T) {
	svc, repo := newTestService(t)
	parentA := mustCreateTestCategory(t, repo.db, false, nil)
	parentB := mustCreateTestCategory(t, repo.db, false, nil)
	mustCreateTestSubCategory(t, repo.db, parentA.ID)
	mustCreateTestSubCategory(t, repo.db, parentA.ID)
	mustCreateTestSubCategory(t, repo.db, parentB.ID)

	rows, err := svc.ListByCategory(context.Background(), parentA.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestGetByNameMatchesSubstring(t *testing.T) {
	svc, repo := newTestService(t)
	parent := mustCreateTestCategory(t, repo.db, false, nil)
	stored := mustCreateTestSubCategory(t, repo.db, parent.ID)

	dto, err := svc.GetByName(context.Background(), "SUB-")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, dto.ID)
}

func TestListEmptyIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.List(context.Background())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
