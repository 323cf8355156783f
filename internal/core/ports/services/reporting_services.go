package services

import "context"

// AggregateSvcFacade defines the summary statistics exposed to clients.
type AggregateSvcFacade interface {
	// TotalSpent returns the sum of all transaction values in NOK.
	TotalSpent(ctx context.Context) (float64, error)

	// TotalSuppliers returns the number of registered suppliers.
	TotalSuppliers(ctx context.Context) (int64, error)
}
