package domain

// Supplier is a vendor master-data record.
type Supplier struct {
	ID                   int64  `json:"id"`                   // Assigned by the store
	Supplier             string `json:"Supplier"`             // Display name
	SupplierNameOriginal string `json:"SupplierNameOriginal"` // Native/original name
	SupplierCountry      string `json:"SupplierCountry"`
	VatID                string `json:"VatID"`
	NACE                 string `json:"NACE"` // Industry activity code, opaque
}
