package dto

import "github.com/SscSPs/procurement_app/internal/core/domain"

// CreateSupplierRequest defines the data needed to create a new supplier.
// Identity is assigned by the store and is not accepted on input.
// Every field must be present; an empty string is a valid value.
type CreateSupplierRequest struct {
	Supplier             *string `json:"Supplier" binding:"required" example:"Acme"`
	SupplierNameOriginal *string `json:"SupplierNameOriginal" binding:"required" example:"Acme AS"`
	SupplierCountry      *string `json:"SupplierCountry" binding:"required" example:"NO"`
	VatID                *string `json:"VatID" binding:"required" example:"NO123"`
	NACE                 *string `json:"NACE" binding:"required" example:"4611"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	ID                   int64  `json:"id"`
	Supplier             string `json:"Supplier"`
	SupplierNameOriginal string `json:"SupplierNameOriginal"`
	SupplierCountry      string `json:"SupplierCountry"`
	VatID                string `json:"VatID"`
	NACE                 string `json:"NACE"`
}

// ToSupplierResponse converts a domain.Supplier to SupplierResponse DTO
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:                   s.ID,
		Supplier:             s.Supplier,
		SupplierNameOriginal: s.SupplierNameOriginal,
		SupplierCountry:      s.SupplierCountry,
		VatID:                s.VatID,
		NACE:                 s.NACE,
	}
}

// ToListSupplierResponse converts a slice of domain.Supplier to a slice of SupplierResponse DTOs
func ToListSupplierResponse(suppliers []domain.Supplier) []SupplierResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		res[i] = ToSupplierResponse(&suppliers[i])
	}
	return res
}
