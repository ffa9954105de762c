package ingestion

import (
	"context"

	"github.com/jhoicas/invoice-analytics/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Commit si fn devuelve nil; Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		vendorRepo repository.VendorRepository,
		invoiceRepo repository.InvoiceRepository,
		lineItemRepo repository.LineItemRepository,
	) error) error
}

// Source carga los elementos crudos de una ubicación (ruta local o gs://bucket/objeto).
type Source interface {
	Load(ctx context.Context, location string) ([]RawItem, error)
}
