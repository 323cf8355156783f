package repositories

import "context"

// AggregateRepository defines single-query summary statistics computed by the store.
type AggregateRepository interface {
	// SumTransactionValues returns the sum of all transaction values, 0 when there are none.
	SumTransactionValues(ctx context.Context) (float64, error)

	// CountSuppliers returns the number of supplier rows, 0 when there are none.
	CountSuppliers(ctx context.Context) (int64, error)
}
