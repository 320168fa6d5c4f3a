package repository

import (
	"context"
	"fmt"

	"mingle-backend/internal/config"
)

// Open returns the repository for the configured driver.
func Open(ctx context.Context, cfg *config.Config) (Repository, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		return NewSQLite(ctx, cfg.Database.SQLitePath)
	case config.DriverPostgres:
		return NewPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}
