package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avelarsoft/menuforge-backend/api/controllers"
	"github.com/avelarsoft/menuforge-backend/api/middleware"
	categorysvc "github.com/avelarsoft/menuforge-backend/internal/categories"
	itemsvc "github.com/avelarsoft/menuforge-backend/internal/items"
	subcategorysvc "github.com/avelarsoft/menuforge-backend/internal/subcategories"
	"github.com/avelarsoft/menuforge-backend/pkg/db"
	"github.com/avelarsoft/menuforge-backend/pkg/logger"
	"github.com/avelarsoft/menuforge-backend/pkg/metrics"
)

// Deps carries everything the router needs.
type Deps struct {
	Logger        *logger.Logger
	DB            db.Pinger
	Categories    categorysvc.Service
	SubCategories subcategorysvc.Service
	Items         itemsvc.Service
	HTTPMetrics   *metrics.HTTPMetrics
	PromRegistry  *prometheus.Registry
}

// NewRouter mounts the full HTTP surface.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer(deps.Logger))
	r.Use(middleware.RequestID(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))
	r.Use(middleware.Metrics(deps.HTTPMetrics))
	r.Use(middleware.CORS())

	r.Get("/health/live", controllers.HealthLive())
	r.Get("/health/ready", controllers.HealthReady(deps.DB, deps.Logger))

	if deps.PromRegistry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.PromRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/public/ping", controllers.PublicPing())

		r.Post("/category", controllers.CreateCategory(deps.Categories, deps.Logger))
		r.Get("/category", controllers.GetCategory(deps.Categories, deps.Logger))
		r.Put("/category/{categoryId}", controllers.UpdateCategory(deps.Categories, deps.Logger))
		r.Get("/categories", controllers.ListCategories(deps.Categories, deps.Logger))

		r.Post("/subcategory", controllers.CreateSubCategory(deps.SubCategories, deps.Logger))
		r.Get("/subcategory", controllers.GetSubCategory(deps.SubCategories, deps.Logger))
		r.Put("/subcategory/{subCategoryId}", controllers.UpdateSubCategory(deps.SubCategories, deps.Logger))
		r.Get("/subcategories", controllers.ListSubCategories(deps.SubCategories, deps.Logger))
		r.Get("/subcategories/category/{categoryId}", controllers.ListSubCategoriesByCategory(deps.SubCategories, deps.Logger))

		r.Post("/item", controllers.CreateItem(deps.Items, deps.Logger))
		r.Get("/item", controllers.GetItem(deps.Items, deps.Logger))
		r.Get("/item/search", controllers.SearchItems(deps.Items, deps.Logger))
		r.Get("/item/category/{categoryId}", controllers.ListItemsByCategory(deps.Items, deps.Logger))
		r.Get("/item/subcategory/{subCategoryId}", controllers.ListItemsBySubCategory(deps.Items, deps.Logger))
		r.Put("/item/{itemId}", controllers.UpdateItem(deps.Items, deps.Logger))
		r.Get("/items", controllers.ListItems(deps.Items, deps.Logger))
	})

	return r
}
