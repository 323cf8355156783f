package services

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/procurement_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_app/internal/core/ports/services"
)

// aggregateService computes summary statistics directly in the store,
// never by loading entities.
type aggregateService struct {
	BaseService
	aggregateRepo portsrepo.AggregateRepository
}

// NewAggregateService creates a new aggregate service
func NewAggregateService(repo portsrepo.AggregateRepository) portssvc.AggregateSvcFacade {
	return &aggregateService{aggregateRepo: repo}
}

// TotalSpent returns the sum of all transaction values; 0 when there are no transactions.
func (s *aggregateService) TotalSpent(ctx context.Context) (float64, error) {
	total, err := s.aggregateRepo.SumTransactionValues(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum transaction values")
		return 0, fmt.Errorf("failed to compute total spent: %w", err)
	}

	s.LogDebug(ctx, "Total spent computed", slog.Float64("total_spent_nok", total))
	return total, nil
}

// TotalSuppliers returns the number of suppliers; 0 when there are none.
func (s *aggregateService) TotalSuppliers(ctx context.Context) (int64, error) {
	count, err := s.aggregateRepo.CountSuppliers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count suppliers")
		return 0, fmt.Errorf("failed to compute total suppliers: %w", err)
	}

	s.LogDebug(ctx, "Total suppliers computed", slog.Int64("total_suppliers", count))
	return count, nil
}
