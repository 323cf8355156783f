package services

import (
	"context"

	"github.com/SscSPs/procurement_app/internal/core/domain"
	"github.com/SscSPs/procurement_app/internal/dto"
)

// TransactionReaderSvc defines read operations for procurement transactions
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a single transaction. Returns apperrors.ErrNotFound if absent.
	GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for procurement transactions
type TransactionWriterSvc interface {
	// CreateTransaction persists a new transaction and returns it with its assigned identity.
	// Malformed date text yields apperrors.ErrValidation.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
