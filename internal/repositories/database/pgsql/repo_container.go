package pgsql

import (
	portsrepo "github.com/SscSPs/procurement_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every PostgreSQL-backed repository over one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SupplierRepo:    newPgxSupplierRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		AggregateRepo:   newPgxAggregateRepository(dbPool),
		Health:          &BaseRepository{Pool: dbPool},
	}
}
