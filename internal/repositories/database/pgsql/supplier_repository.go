package pgsql

import (
	"context"

	"github.com/SscSPs/procurement_app/internal/apperrors"
	"github.com/SscSPs/procurement_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_app/internal/core/ports/repositories"
	"github.com/SscSPs/procurement_app/internal/models"
	"github.com/SscSPs/procurement_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSupplierRepository struct {
	BaseRepository
}

// newPgxSupplierRepository creates a new repository for supplier data.
func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

const supplierColumns = `id, supplier, supplier_name_original, supplier_country, vat_id, nace`

// SaveSupplier inserts a supplier and returns the identity assigned by the same statement.
func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) (int64, error) {
	m := mapping.ToModelSupplier(supplier)

	query := `
		INSERT INTO suppliers (supplier, supplier_name_original, supplier_country, vat_id, nace)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`

	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.Supplier,
		m.SupplierNameOriginal,
		m.SupplierCountry,
		m.VatID,
		m.NACE,
	).Scan(&id)
	if err != nil {
		return 0, apperrors.NewStoreFailure("failed to insert supplier", err)
	}
	return id, nil
}

// FindSupplierByID retrieves a supplier by identity.
func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1;`

	rows, err := r.Pool.Query(ctx, query, id)
	if err != nil {
		return nil, apperrors.NewStoreFailure("failed to query supplier", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Supplier])
	if err != nil {
		return nil, notFoundOr(err, "supplier", id)
	}

	supplier := mapping.ToDomainSupplier(m)
	return &supplier, nil
}

// ListSuppliers retrieves all suppliers ordered by identity.
func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreFailure("failed to query suppliers", err)
	}
	defer rows.Close()

	modelSuppliers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Supplier])
	if err != nil {
		return nil, apperrors.NewStoreFailure("failed to scan suppliers", err)
	}

	return mapping.ToDomainSupplierSlice(modelSuppliers), nil
}
