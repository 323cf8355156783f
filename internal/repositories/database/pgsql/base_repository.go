package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/procurement_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Ping reports whether the pool can reach the database.
func (r *BaseRepository) Ping(ctx context.Context) error {
	if err := r.Pool.Ping(ctx); err != nil {
		return apperrors.NewStoreFailure("database ping failed", err)
	}
	return nil
}

// notFoundOr maps pgx.ErrNoRows to a not-found error and everything else to a store failure.
func notFoundOr(err error, entity string, id int64) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewAppError(http.StatusNotFound, fmt.Sprintf("%s %d not found", entity, id), apperrors.ErrNotFound)
	}
	return apperrors.NewStoreFailure(fmt.Sprintf("failed to find %s %d", entity, id), err)
}
