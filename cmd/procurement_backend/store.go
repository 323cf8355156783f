package main

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/procurement_app/internal/core/ports/repositories"
	"github.com/SscSPs/procurement_app/internal/platform/config"
	"github.com/SscSPs/procurement_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/procurement_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/procurement_app/pkg/database"
)

// openStore opens the configured backend, applies migrations when migrate is set,
// and returns the repositories with a function that releases the handle.
func openStore(ctx context.Context, cfg *config.Config, migrate bool) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
		if migrate {
			slog.Info("Running database migrations...")
			if err := database.MigratePostgres(cfg.DatabaseURL); err != nil {
				return portsrepo.RepositoryProvider{}, nil, err
			}
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil

	case config.DriverSQLite:
		db, err := database.NewSQLiteDB(ctx, cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		if migrate {
			slog.Info("Running database migrations...")
			if err := database.MigrateSQLite(db); err != nil {
				database.CloseSQLiteDB(db)
				return portsrepo.RepositoryProvider{}, nil, err
			}
		}
		return sqlite.NewRepositoryProvider(db), func() { database.CloseSQLiteDB(db) }, nil
	}

	return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
}
