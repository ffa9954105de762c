package repository

import (
	"context"

	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
)

// VendorRepository define el puerto de persistencia para Vendor.
type VendorRepository interface {
	// Create persiste un proveedor nuevo. Si ya existe uno con el mismo nombre
	// devuelve domain.ErrDuplicate (la unicidad la garantiza el almacén).
	Create(ctx context.Context, vendor *entity.Vendor) error
	// GetByName busca por coincidencia exacta del nombre; (nil, nil) si no existe.
	GetByName(ctx context.Context, name string) (*entity.Vendor, error)
	List(ctx context.Context) ([]*entity.Vendor, error)
	DeleteAll(ctx context.Context) error
}
