package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/procurement_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_app/internal/dto"
	"github.com/SscSPs/procurement_app/internal/utils/instant"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new procurement transaction service.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: transactionRepo}
}

// CreateTransaction decodes the optional dates, stores the transaction and returns
// it merged with the new identity. Submitting the same payload twice creates two rows.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	invoiceDate, err := instant.DecodeOptional(req.InvoiceDate)
	if err != nil {
		return nil, fmt.Errorf("invalid InvoiceDate: %w", err)
	}
	dueDate, err := instant.DecodeOptional(req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid DueDate: %w", err)
	}

	transaction := domain.Transaction{
		InvoiceNumber:       valueOf(req.InvoiceNumber),
		Supplier:            valueOf(req.Supplier),
		InvoiceDate:         invoiceDate,
		DueDate:             dueDate,
		TransactionValueNOK: valueOf(req.TransactionValueNOK),
		SpendCategoryL1:     valueOf(req.SpendCategoryL1),
		SpendCategoryL2:     valueOf(req.SpendCategoryL2),
		SpendCategoryL3:     valueOf(req.SpendCategoryL3),
		SpendCategoryL4:     valueOf(req.SpendCategoryL4),
	}

	id, err := s.transactionRepo.SaveTransaction(ctx, transaction)
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("invoice_number", transaction.InvoiceNumber))
		return nil, fmt.Errorf("failed to create transaction in service: %w", err)
	}
	transaction.ID = id

	s.LogInfo(ctx, "Transaction created",
		slog.Int64("transaction_id", id),
		slog.String("invoice_number", transaction.InvoiceNumber))
	return &transaction, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.FindTransactionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %d in service: %w", id, err)
	}
	return transaction, nil
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}
