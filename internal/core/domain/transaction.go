package domain

import "time"

// Transaction is a single procurement/invoice event.
// Supplier is a denormalized label, not a reference to Supplier.ID.
type Transaction struct {
	ID                  int64      `json:"id"`
	InvoiceNumber       string     `json:"InvoiceNumber"`
	Supplier            string     `json:"Supplier"`
	InvoiceDate         *time.Time `json:"InvoiceDate"` // Nullable
	DueDate             *time.Time `json:"DueDate"`     // Nullable
	TransactionValueNOK float64    `json:"TransactionValueNOK"`
	SpendCategoryL1     string     `json:"SpendCategoryL1"` // Coarsest
	SpendCategoryL2     string     `json:"SpendCategoryL2"`
	SpendCategoryL3     string     `json:"SpendCategoryL3"`
	SpendCategoryL4     string     `json:"SpendCategoryL4"` // Finest
}
