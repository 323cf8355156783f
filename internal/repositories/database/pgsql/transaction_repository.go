package pgsql

import (
	"context"

	"github.com/SscSPs/procurement_app/internal/apperrors"
	"github.com/SscSPs/procurement_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_app/internal/core/ports/repositories"
	"github.com/SscSPs/procurement_app/internal/models"
	"github.com/SscSPs/procurement_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for procurement transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `id, invoice_number, supplier, invoice_date, due_date, transaction_value_nok,
	spend_category_l1, spend_category_l2, spend_category_l3, spend_category_l4`

// SaveTransaction inserts a transaction and returns the identity assigned by the same statement.
// Absent dates are stored as NULL.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) (int64, error) {
	m := mapping.ToModelTransaction(transaction)

	query := `
		INSERT INTO transactions (invoice_number, supplier, invoice_date, due_date, transaction_value_nok,
			spend_category_l1, spend_category_l2, spend_category_l3, spend_category_l4)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`

	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.InvoiceNumber,
		m.Supplier,
		m.InvoiceDate,
		m.DueDate,
		m.TransactionValueNOK,
		m.SpendCategoryL1,
		m.SpendCategoryL2,
		m.SpendCategoryL3,
		m.SpendCategoryL4,
	).Scan(&id)
	if err != nil {
		return 0, apperrors.NewStoreFailure("failed to insert transaction", err)
	}
	return id, nil
}

// FindTransactionByID retrieves a transaction by identity.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1;`

	rows, err := r.Pool.Query(ctx, query, id)
	if err != nil {
		return nil, apperrors.NewStoreFailure("failed to query transaction", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, notFoundOr(err, "transaction", id)
	}

	transaction, err := mapping.ToDomainTransaction(m)
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// ListTransactions retrieves all transactions ordered by identity.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreFailure("failed to query transactions", err)
	}
	defer rows.Close()

	modelTransactions, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, apperrors.NewStoreFailure("failed to scan transactions", err)
	}

	return mapping.ToDomainTransactionSlice(modelTransactions)
}
