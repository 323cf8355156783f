package repositories

import (
	"context"

	"github.com/SscSPs/procurement_app/internal/core/domain"
)

// TransactionReader defines read operations for procurement transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by identity. Returns apperrors.ErrNotFound if absent.
	FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions in identity order.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for procurement transaction data
type TransactionWriter interface {
	// SaveTransaction inserts a new transaction row and returns the identity the store assigned.
	// transaction.ID is ignored.
	SaveTransaction(ctx context.Context, transaction domain.Transaction) (int64, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
