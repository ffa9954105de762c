package repository

import (
	"context"

	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	// Create persiste la cabecera; VendorID debe referenciar un proveedor existente.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*entity.Invoice, error)
	DeleteAll(ctx context.Context) error
}
