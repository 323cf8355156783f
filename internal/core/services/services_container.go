package services

import (
	portsrepo "github.com/SscSPs/procurement_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Every service shares the repositories (and therefore the store handle) by reference.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Supplier:    NewSupplierService(repos.SupplierRepo),
		Transaction: NewTransactionService(repos.TransactionRepo),
		Aggregate:   NewAggregateService(repos.AggregateRepo),
		Health:      repos.Health,
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.SupplierSvcFacade    = (*supplierService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.AggregateSvcFacade   = (*aggregateService)(nil)
)
