package services

import (
	"context"

	"github.com/SscSPs/procurement_app/internal/core/domain"
	"github.com/SscSPs/procurement_app/internal/dto"
)

// SupplierReaderSvc defines read operations for supplier data
type SupplierReaderSvc interface {
	// GetSupplierByID retrieves a single supplier. Returns apperrors.ErrNotFound if absent.
	GetSupplierByID(ctx context.Context, id int64) (*domain.Supplier, error)

	// ListSuppliers retrieves all suppliers.
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

// SupplierWriterSvc defines write operations for supplier data
type SupplierWriterSvc interface {
	// CreateSupplier persists a new supplier and returns it with its assigned identity.
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error)
}

// SupplierSvcFacade combines all supplier-related service interfaces
type SupplierSvcFacade interface {
	SupplierReaderSvc
	SupplierWriterSvc
}
