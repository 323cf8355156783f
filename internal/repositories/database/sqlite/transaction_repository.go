package sqlite

import (
	"context"
	"database/sql"

	"github.com/SscSPs/procurement_app/internal/apperrors"
	"github.com/SscSPs/procurement_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_app/internal/core/ports/repositories"
	"github.com/SscSPs/procurement_app/internal/models"
	"github.com/SscSPs/procurement_app/internal/utils/mapping"
)

type SQLiteTransactionRepository struct {
	BaseRepository
}

func newSQLiteTransactionRepository(db *sql.DB) portsrepo.TransactionRepositoryFacade {
	return &SQLiteTransactionRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*SQLiteTransactionRepository)(nil)

const transactionColumns = `id, invoice_number, supplier, invoice_date, due_date, transaction_value_nok,
	spend_category_l1, spend_category_l2, spend_category_l3, spend_category_l4`

func scanTransaction(row interface{ Scan(...any) error }) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.ID,
		&m.InvoiceNumber,
		&m.Supplier,
		&m.InvoiceDate,
		&m.DueDate,
		&m.TransactionValueNOK,
		&m.SpendCategoryL1,
		&m.SpendCategoryL2,
		&m.SpendCategoryL3,
		&m.SpendCategoryL4,
	)
	return m, err
}

// SaveTransaction inserts a transaction and returns the rowid SQLite assigned.
// Absent dates are stored as NULL.
func (r *SQLiteTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) (int64, error) {
	m := mapping.ToModelTransaction(transaction)
	return r.insert(ctx, "transaction", `
		INSERT INTO transactions (invoice_number, supplier, invoice_date, due_date, transaction_value_nok,
			spend_category_l1, spend_category_l2, spend_category_l3, spend_category_l4)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		m.InvoiceNumber, m.Supplier, m.InvoiceDate, m.DueDate, m.TransactionValueNOK,
		m.SpendCategoryL1, m.SpendCategoryL2, m.SpendCategoryL3, m.SpendCategoryL4,
	)
}

// FindTransactionByID retrieves a transaction by identity.
func (r *SQLiteTransactionRepository) FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = ?;`, id)
	m, err := scanTransaction(row)
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
func (r *SQLiteTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+transactionColumns+` FROM transactions ORDER BY id;`)
	if err != nil {
		return nil, apperrors.NewStoreFailure("failed to query transactions", err)
	}
	defer rows.Close()

	var modelTransactions []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewStoreFailure("failed to scan transaction", err)
		}
		modelTransactions = append(modelTransactions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreFailure("failed to iterate transactions", err)
	}

	return mapping.ToDomainTransactionSlice(modelTransactions)
}
