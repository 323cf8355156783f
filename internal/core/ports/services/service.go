package services

import "github.com/SscSPs/procurement_app/internal/core/ports/repositories"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Supplier    SupplierSvcFacade
	Transaction TransactionSvcFacade
	Aggregate   AggregateSvcFacade

	// Health is consulted by the readiness probe.
	Health repositories.HealthChecker
}
