package repositories

import (
	"context"

	"github.com/SscSPs/procurement_app/internal/core/domain"
)

// SupplierReader defines read operations for supplier data
type SupplierReader interface {
	// FindSupplierByID retrieves a supplier by identity. Returns apperrors.ErrNotFound if absent.
	FindSupplierByID(ctx context.Context, id int64) (*domain.Supplier, error)

	// ListSuppliers retrieves all suppliers in identity order.
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

// SupplierWriter defines write operations for supplier data
type SupplierWriter interface {
	// SaveSupplier inserts a new supplier row and returns the identity the store assigned.
	// supplier.ID is ignored.
	SaveSupplier(ctx context.Context, supplier domain.Supplier) (int64, error)
}

// SupplierRepositoryFacade combines all supplier-related repository interfaces
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
}
