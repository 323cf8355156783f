package sqlite

import (
	"context"
	"database/sql"

	"github.com/SscSPs/procurement_app/internal/apperrors"
	"github.com/SscSPs/procurement_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_app/internal/core/ports/repositories"
	"github.com/SscSPs/procurement_app/internal/models"
	"github.com/SscSPs/procurement_app/internal/utils/mapping"
)

type SQLiteSupplierRepository struct {
	BaseRepository
}

func newSQLiteSupplierRepository(db *sql.DB) portsrepo.SupplierRepositoryFacade {
	return &SQLiteSupplierRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.SupplierRepositoryFacade = (*SQLiteSupplierRepository)(nil)

const supplierColumns = `id, supplier, supplier_name_original, supplier_country, vat_id, nace`

func scanSupplier(row interface{ Scan(...any) error }) (models.Supplier, error) {
	var m models.Supplier
	err := row.Scan(&m.ID, &m.Supplier, &m.SupplierNameOriginal, &m.SupplierCountry, &m.VatID, &m.NACE)
	return m, err
}

// SaveSupplier inserts a supplier and returns the rowid SQLite assigned.
func (r *SQLiteSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) (int64, error) {
	m := mapping.ToModelSupplier(supplier)
	return r.insert(ctx, "supplier", `
		INSERT INTO suppliers (supplier, supplier_name_original, supplier_country, vat_id, nace)
		VALUES (?, ?, ?, ?, ?);`,
		m.Supplier, m.SupplierNameOriginal, m.SupplierCountry, m.VatID, m.NACE,
	)
}

// FindSupplierByID retrieves a supplier by identity.
func (r *SQLiteSupplierRepository) FindSupplierByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = ?;`, id)
	m, err := scanSupplier(row)
	if err != nil {
		return nil, notFoundOr(err, "supplier", id)
	}
	supplier := mapping.ToDomainSupplier(m)
	return &supplier, nil
}

// ListSuppliers retrieves all suppliers ordered by identity.
func (r *SQLiteSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY id;`)
	if err != nil {
		return nil, apperrors.NewStoreFailure("failed to query suppliers", err)
	}
	defer rows.Close()

	var modelSuppliers []models.Supplier
	for rows.Next() {
		m, err := scanSupplier(rows)
		if err != nil {
			return nil, apperrors.NewStoreFailure("failed to scan supplier", err)
		}
		modelSuppliers = append(modelSuppliers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreFailure("failed to iterate suppliers", err)
	}

	return mapping.ToDomainSupplierSlice(modelSuppliers), nil
}
