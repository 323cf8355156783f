package pgsql

import (
	"context"

	"github.com/SscSPs/procurement_app/internal/apperrors"
	portsrepo "github.com/SscSPs/procurement_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxAggregateRepository computes summary statistics with single aggregate queries.
type PgxAggregateRepository struct {
	BaseRepository
}

func newPgxAggregateRepository(pool *pgxpool.Pool) portsrepo.AggregateRepository {
	return &PgxAggregateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AggregateRepository = (*PgxAggregateRepository)(nil)

// SumTransactionValues sums in NUMERIC so that the total does not depend on row order.
func (r *PgxAggregateRepository) SumTransactionValues(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM(transaction_value_nok::numeric), 0) FROM transactions;`

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, apperrors.NewStoreFailure("failed to sum transaction values", err)
	}
	return total.InexactFloat64(), nil
}

// CountSuppliers counts supplier rows.
func (r *PgxAggregateRepository) CountSuppliers(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM suppliers;`

	var count int64
	if err := r.Pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, apperrors.NewStoreFailure("failed to count suppliers", err)
	}
	return count, nil
}
