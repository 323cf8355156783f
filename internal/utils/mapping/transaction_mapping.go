package mapping

import (
	"fmt"

	"github.com/SscSPs/procurement_app/internal/apperrors"
	"github.com/SscSPs/procurement_app/internal/core/domain"
	"github.com/SscSPs/procurement_app/internal/models"
	"github.com/SscSPs/procurement_app/internal/utils/instant"
)

// ToModelTransaction converts a domain Transaction to a model Transaction,
// encoding the optional dates to their stored text form.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:                  d.ID,
		InvoiceNumber:       d.InvoiceNumber,
		Supplier:            d.Supplier,
		InvoiceDate:         instant.EncodeOptional(d.InvoiceDate),
		DueDate:             instant.EncodeOptional(d.DueDate),
		TransactionValueNOK: d.TransactionValueNOK,
		SpendCategoryL1:     d.SpendCategoryL1,
		SpendCategoryL2:     d.SpendCategoryL2,
		SpendCategoryL3:     d.SpendCategoryL3,
		SpendCategoryL4:     d.SpendCategoryL4,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
// A stored date that does not decode means the row is corrupt and is reported
// as a store failure.
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	invoiceDate, err := instant.DecodeOptional(m.InvoiceDate)
	if err != nil {
		return domain.Transaction{}, corruptDate("invoice date", m.ID, *m.InvoiceDate)
	}
	dueDate, err := instant.DecodeOptional(m.DueDate)
	if err != nil {
		return domain.Transaction{}, corruptDate("due date", m.ID, *m.DueDate)
	}

	return domain.Transaction{
		ID:                  m.ID,
		InvoiceNumber:       m.InvoiceNumber,
		Supplier:            m.Supplier,
		InvoiceDate:         invoiceDate,
		DueDate:             dueDate,
		TransactionValueNOK: m.TransactionValueNOK,
		SpendCategoryL1:     m.SpendCategoryL1,
		SpendCategoryL2:     m.SpendCategoryL2,
		SpendCategoryL3:     m.SpendCategoryL3,
		SpendCategoryL4:     m.SpendCategoryL4,
	}, nil
}

// corruptDate does not wrap the decode error, so the result never matches
// apperrors.ErrValidation.
func corruptDate(field string, id int64, stored string) error {
	return apperrors.NewStoreFailure(fmt.Sprintf("corrupt %s %q in transaction %d", field, stored, id), nil)
}

// ToDomainTransactionSlice converts a slice of model Transactions, stopping at the first corrupt row.
func ToDomainTransactionSlice(ms []models.Transaction) ([]domain.Transaction, error) {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		d, err := ToDomainTransaction(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
