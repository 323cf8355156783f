package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/procurement_app/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every SQLite-backed repository over one shared handle.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SupplierRepo:    newSQLiteSupplierRepository(db),
		TransactionRepo: newSQLiteTransactionRepository(db),
		AggregateRepo:   newSQLiteAggregateRepository(db),
		Health:          &BaseRepository{DB: db},
	}
}
