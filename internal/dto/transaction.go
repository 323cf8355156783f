package dto

import (
	"github.com/SscSPs/procurement_app/internal/core/domain"
	"github.com/SscSPs/procurement_app/internal/utils/instant"
)

// CreateTransactionRequest defines the data needed to create a new transaction.
// InvoiceDate and DueDate are optional RFC 3339 timestamps with an explicit offset;
// every other field must be present, though "" and 0 are accepted.
type CreateTransactionRequest struct {
	InvoiceNumber       *string  `json:"InvoiceNumber" binding:"required" example:"INV-1001"`
	Supplier            *string  `json:"Supplier" binding:"required" example:"Acme"`
	InvoiceDate         *string  `json:"InvoiceDate" binding:"omitempty,rfc3339" example:"2024-03-01T10:00:00+01:00"`
	DueDate             *string  `json:"DueDate" binding:"omitempty,rfc3339" example:"2024-03-31T00:00:00+02:00"`
	TransactionValueNOK *float64 `json:"TransactionValueNOK" binding:"required" example:"1250.5"`
	SpendCategoryL1     *string  `json:"SpendCategoryL1" binding:"required" example:"IT"`
	SpendCategoryL2     *string  `json:"SpendCategoryL2" binding:"required" example:"Software"`
	SpendCategoryL3     *string  `json:"SpendCategoryL3" binding:"required" example:"SaaS"`
	SpendCategoryL4     *string  `json:"SpendCategoryL4" binding:"required" example:"CRM"`
}

// TransactionResponse defines the data returned for a transaction.
// Absent dates are serialized as null.
type TransactionResponse struct {
	ID                  int64   `json:"id"`
	InvoiceNumber       string  `json:"InvoiceNumber"`
	Supplier            string  `json:"Supplier"`
	InvoiceDate         *string `json:"InvoiceDate"`
	DueDate             *string `json:"DueDate"`
	TransactionValueNOK float64 `json:"TransactionValueNOK"`
	SpendCategoryL1     string  `json:"SpendCategoryL1"`
	SpendCategoryL2     string  `json:"SpendCategoryL2"`
	SpendCategoryL3     string  `json:"SpendCategoryL3"`
	SpendCategoryL4     string  `json:"SpendCategoryL4"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                  t.ID,
		InvoiceNumber:       t.InvoiceNumber,
		Supplier:            t.Supplier,
		InvoiceDate:         instant.EncodeOptional(t.InvoiceDate),
		DueDate:             instant.EncodeOptional(t.DueDate),
		TransactionValueNOK: t.TransactionValueNOK,
		SpendCategoryL1:     t.SpendCategoryL1,
		SpendCategoryL2:     t.SpendCategoryL2,
		SpendCategoryL3:     t.SpendCategoryL3,
		SpendCategoryL4:     t.SpendCategoryL4,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to a slice of TransactionResponse DTOs
func ToListTransactionResponse(transactions []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		res[i] = ToTransactionResponse(&transactions[i])
	}
	return res
}
