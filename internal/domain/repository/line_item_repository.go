package repository

import (
	"context"

	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
)

// LineItemRepository define el puerto de persistencia para LineItem.
type LineItemRepository interface {
	// CreateMany persiste todas las líneas; la factura padre debe existir.
	CreateMany(ctx context.Context, items []*entity.LineItem) error
	ListByInvoice(ctx context.Context, invoiceID string) ([]*entity.LineItem, error)
	DeleteAll(ctx context.Context) error
}
