package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
	"github.com/jhoicas/invoice-analytics/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación de VendorRepository (usable con pool o tx).
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

// Create persiste el proveedor; domain.ErrDuplicate si el nombre ya existe.
func (r *VendorRepo) Create(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (id, name, address, tax_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		vendor.ID, vendor.Name, nullIfEmpty(vendor.Address), nullIfEmpty(vendor.TaxID), vendor.CreatedAt,
	)
	if err != nil {
		return wrapWriteError("insert vendor", err)
	}
	return nil
}

// GetByName busca por nombre exacto; (nil, nil) si no existe.
func (r *VendorRepo) GetByName(ctx context.Context, name string) (*entity.Vendor, error) {
	query := `
		SELECT id, name, COALESCE(address, ''), COALESCE(tax_id, ''), created_at
		FROM vendors WHERE name = $1`
	var v entity.Vendor
	err := r.q.QueryRow(ctx, query, name).Scan(&v.ID, &v.Name, &v.Address, &v.TaxID, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

// List devuelve todos los proveedores ordenados por nombre.
func (r *VendorRepo) List(ctx context.Context) ([]*entity.Vendor, error) {
	query := `
		SELECT id, name, COALESCE(address, ''), COALESCE(tax_id, ''), created_at
		FROM vendors ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var list []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.Address, &v.TaxID, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// DeleteAll elimina todos los proveedores (las facturas deben borrarse antes).
func (r *VendorRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM vendors`); err != nil {
		return wrapWriteError("delete vendors", err)
	}
	return nil
}
