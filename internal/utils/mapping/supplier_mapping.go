package mapping

import (
	"github.com/SscSPs/procurement_app/internal/core/domain"
	"github.com/SscSPs/procurement_app/internal/models"
)

// ToModelSupplier converts a domain Supplier to a model Supplier
func ToModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		ID:                   d.ID,
		Supplier:             d.Supplier,
		SupplierNameOriginal: d.SupplierNameOriginal,
		SupplierCountry:      d.SupplierCountry,
		VatID:                d.VatID,
		NACE:                 d.NACE,
	}
}

// ToDomainSupplier converts a model Supplier to a domain Supplier
func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		ID:                   m.ID,
		Supplier:             m.Supplier,
		SupplierNameOriginal: m.SupplierNameOriginal,
		SupplierCountry:      m.SupplierCountry,
		VatID:                m.VatID,
		NACE:                 m.NACE,
	}
}

// ToDomainSupplierSlice converts a slice of model Suppliers to a slice of domain Suppliers
func ToDomainSupplierSlice(ms []models.Supplier) []domain.Supplier {
	ds := make([]domain.Supplier, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSupplier(m)
	}
	return ds
}
