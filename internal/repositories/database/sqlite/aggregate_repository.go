package sqlite

import (
	"context"
	"database/sql"

	"github.com/SscSPs/procurement_app/internal/apperrors"
	portsrepo "github.com/SscSPs/procurement_app/internal/core/ports/repositories"
)

type SQLiteAggregateRepository struct {
	BaseRepository
}

func newSQLiteAggregateRepository(db *sql.DB) portsrepo.AggregateRepository {
	return &SQLiteAggregateRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.AggregateRepository = (*SQLiteAggregateRepository)(nil)

// SumTransactionValues uses TOTAL, which is 0.0 on an empty table rather than NULL.
func (r *SQLiteAggregateRepository) SumTransactionValues(ctx context.Context) (float64, error) {
	var total float64
	err := r.DB.QueryRowContext(ctx, `SELECT TOTAL(transaction_value_nok) FROM transactions;`).Scan(&total)
	if err != nil {
		return 0, apperrors.NewStoreFailure("failed to sum transaction values", err)
	}
	return total, nil
}

// CountSuppliers counts supplier rows.
func (r *SQLiteAggregateRepository) CountSuppliers(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM suppliers;`).Scan(&count)
	if err != nil {
		return 0, apperrors.NewStoreFailure("failed to count suppliers", err)
	}
	return count, nil
}
