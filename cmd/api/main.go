package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/avelarsoft/menuforge-backend/api/routes"
	categorysvc "github.com/avelarsoft/menuforge-backend/internal/categories"
	itemsvc "github.com/avelarsoft/menuforge-backend/internal/items"
	subcategorysvc "github.com/avelarsoft/menuforge-backend/internal/subcategories"
	"github.com/avelarsoft/menuforge-backend/pkg/config"
	"github.com/avelarsoft/menuforge-backend/pkg/db"
	"github.com/avelarsoft/menuforge-backend/pkg/logger"
	"github.com/avelarsoft/menuforge-backend/pkg/metrics"
	"github.com/avelarsoft/menuforge-backend/pkg/migrate"
)

const shutdownGrace = 15 * time.Second

func main() {
	_ = godotenv.Load()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logg := logger.New(logger.Options{
		ServiceName: "menuforge-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := db.New(ctx, cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logg.Error(ctx, "closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, client); err != nil {
		return err
	}

	categoryRepo := categorysvc.NewRepository(client.DB())
	subCategoryRepo := subcategorysvc.NewRepository(client.DB())
	itemRepo := itemsvc.NewRepository(client.DB())

	categories, err := categorysvc.NewService(categoryRepo)
	if err != nil {
		return fmt.Errorf("building category service: %w", err)
	}
	subCategories, err := subcategorysvc.NewService(subCategoryRepo, categoryRepo)
	if err != nil {
		return fmt.Errorf("building subcategory service: %w", err)
	}
	items, err := itemsvc.NewService(itemRepo, categoryRepo, subCategoryRepo)
	if err != nil {
		return fmt.Errorf("building item service: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := routes.NewRouter(routes.Deps{
		Logger:        logg,
		DB:            client,
		Categories:    categories,
		SubCategories: subCategories,
		Items:         items,
		HTTPMetrics:   metrics.NewHTTPMetrics(registry),
		PromRegistry:  registry,
	})

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info(logg.WithField(ctx, "addr", server.Addr), "http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logg.Info(context.Background(), "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}

	return nil
}
