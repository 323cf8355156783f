// Package sqlite implements the repositories over a database/sql SQLite handle.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/procurement_app/internal/apperrors"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *sql.DB
}

// Ping reports whether the database file is reachable.
func (r *BaseRepository) Ping(ctx context.Context) error {
	if err := r.DB.PingContext(ctx); err != nil {
		return apperrors.NewStoreFailure("database ping failed", err)
	}
	return nil
}

// insert runs an INSERT and returns the rowid SQLite assigned to the new row.
func (r *BaseRepository) insert(ctx context.Context, entity, query string, args ...any) (int64, error) {
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, apperrors.NewStoreFailure("failed to insert "+entity, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, apperrors.NewStoreFailure("failed to read identity of new "+entity, err)
	}
	return id, nil
}

func notFoundOr(err error, entity string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NewAppError(http.StatusNotFound, fmt.Sprintf("%s %d not found", entity, id), apperrors.ErrNotFound)
	}
	return apperrors.NewStoreFailure(fmt.Sprintf("failed to find %s %d", entity, id), err)
}
