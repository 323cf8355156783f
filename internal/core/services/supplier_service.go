package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/procurement_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_app/internal/dto"
)

type supplierService struct {
	BaseService
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates a new supplier service backed by the given repository.
func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierService{supplierRepo: supplierRepo}
}

// CreateSupplier stores the submitted supplier and returns it merged with the new identity.
// The row is not read back; the response is built from the request.
func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	supplier := domain.Supplier{
		Supplier:             valueOf(req.Supplier),
		SupplierNameOriginal: valueOf(req.SupplierNameOriginal),
		SupplierCountry:      valueOf(req.SupplierCountry),
		VatID:                valueOf(req.VatID),
		NACE:                 valueOf(req.NACE),
	}

	id, err := s.supplierRepo.SaveSupplier(ctx, supplier)
	if err != nil {
		s.LogError(ctx, err, "Failed to save supplier", slog.String("supplier", supplier.Supplier))
		return nil, fmt.Errorf("failed to create supplier in service: %w", err)
	}
	supplier.ID = id

	s.LogInfo(ctx, "Supplier created", slog.Int64("supplier_id", id))
	return &supplier, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get supplier %d in service: %w", id, err)
	}
	return supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list suppliers")
		return nil, fmt.Errorf("failed to list suppliers in service: %w", err)
	}
	// Return empty slice if no suppliers found, not nil
	if suppliers == nil {
		return []domain.Supplier{}, nil
	}
	return suppliers, nil
}
