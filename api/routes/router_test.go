package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	categorysvc "github.com/avelarsoft/menuforge-backend/internal/categories"
	itemsvc "github.com/avelarsoft/menuforge-backend/internal/items"
	subcategorysvc "github.com/avelarsoft/menuforge-backend/internal/subcategories"
	"github.com/avelarsoft/menuforge-backend/pkg/db/models"
	"github.com/avelarsoft/menuforge-backend/pkg/logger"
	"github.com/avelarsoft/menuforge-backend/pkg/metrics"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Category{}, &models.SubCategory{}, &models.Item{}))

	categoryRepo := categorysvc.NewRepository(conn)
	subCategoryRepo := subcategorysvc.NewRepository(conn)
	itemRepo := itemsvc.NewRepository(conn)

	categories, err := categorysvc.NewService(categoryRepo)
	require.NoError(t, err)
	subCategories, err := subcategorysvc.NewService(subCategoryRepo, categoryRepo)
	require.NoError(t, err)
	items, err := itemsvc.NewService(itemRepo, categoryRepo, subCategoryRepo)
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	logg := logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})

	return NewRouter(Deps{
		Logger:        logg,
		Categories:    categories,
		SubCategories: subCategories,
		Items:         items,
		HTTPMetrics:   metrics.NewHTTPMetrics(registry),
		PromRegistry:  registry,
	})
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health/live", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMenuHierarchyEndToEnd(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/category", map[string]any{
		"name":          "Beverages",
		"image":         "bev.png",
		"description":   "All drinks",
		"taxApplicable": true,
		"tax":           5,
		"taxType":       "percentage",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var category categorysvc.CategoryDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&category))
	require.NotEqual(t, uuid.Nil, category.ID)

	rec = doJSON(t, router, http.MethodPost, "/api/subcategory", map[string]any{
		"name":        "Hot Drinks",
		"image":       "hot.png",
		"description": "Served hot",
		"categoryId":  category.ID.String(),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var sub subcategorysvc.SubCategoryDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sub))
	assert.True(t, sub.TaxApplicable)
	require.NotNil(t, sub.Tax)
	assert.Equal(t, 5.0, *sub.Tax)

	rec = doJSON(t, router, http.MethodPost, "/api/item", map[string]any{
		"name":          "Green Tea",
		"image":         "tea.png",
		"description":   "Steamed",
		"taxApplicable": true,
		"tax":           5,
		"baseAmount":    100,
		"discount":      20,
		"subCategoryId": sub.ID.String(),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var item itemsvc.ItemDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&item))
	assert.Equal(t, 80.0, item.TotalAmount)

	rec = doJSON(t, router, http.MethodGet, "/api/item/search?name=green", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var found []itemsvc.ItemDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&found))
	require.Len(t, found, 1)

	rec = doJSON(t, router, http.MethodPut, "/api/item/"+item.ID.String(), map[string]any{
		"discount": 0,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated itemsvc.ItemDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.Equal(t, 100.0, updated.TotalAmount)

	rec = doJSON(t, router, http.MethodGet, "/api/subcategories/category/"+category.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/item/subcategory/"+sub.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestEmptyListsReturn404(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/categories", "/api/subcategories", "/api/items"} {
		rec := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownRouteIs404(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
