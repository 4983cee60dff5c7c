package migrate

import (
	"context"
	"fmt"

	"github.com/avelarsoft/menuforge-backend/pkg/config"
	"github.com/avelarsoft/menuforge-backend/pkg/db"
	"github.com/avelarsoft/menuforge-backend/pkg/db/models"
	"github.com/avelarsoft/menuforge-backend/pkg/logger"
)

// MaybeRunDev syncs the schema automatically when the app runs in dev mode
// and the feature flag is enabled. Production schemas are managed outside
// the process.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env})
	logg.Info(ctx, "running schema sync (dev auto-run)")

	if err := Run(client); err != nil {
		return fmt.Errorf("running schema sync: %w", err)
	}

	logg.Info(ctx, "schema sync completed")
	return nil
}

// Run applies the GORM schema for every menu entity.
func Run(client *db.Client) error {
	return client.DB().AutoMigrate(
		&models.Category{},
		&models.SubCategory{},
		&models.Item{},
	)
}
