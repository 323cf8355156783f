package models

// Transaction is the persisted row of the transactions table.
// Dates are stored as canonical RFC 3339 text; nil means SQL NULL.
type Transaction struct {
	ID                  int64   `db:"id"`
	InvoiceNumber       string  `db:"invoice_number"`
	Supplier            string  `db:"supplier"`
	InvoiceDate         *string `db:"invoice_date"`
	DueDate             *string `db:"due_date"`
	TransactionValueNOK float64 `db:"transaction_value_nok"`
	SpendCategoryL1     string  `db:"spend_category_l1"`
	SpendCategoryL2     string  `db:"spend_category_l2"`
	SpendCategoryL3     string  `db:"spend_category_l3"`
	SpendCategoryL4     string  `db:"spend_category_l4"`
}
