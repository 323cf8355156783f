package models

// Supplier is the persisted row of the suppliers table.
type Supplier struct {
	ID                   int64  `db:"id"`
	Supplier             string `db:"supplier"`
	SupplierNameOriginal string `db:"supplier_name_original"`
	SupplierCountry      string `db:"supplier_country"`
	VatID                string `db:"vat_id"`
	NACE                 string `db:"nace"`
}
