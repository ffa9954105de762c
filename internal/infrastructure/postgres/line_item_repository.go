package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
	"github.com/jhoicas/invoice-analytics/internal/domain/repository"
)

var _ repository.LineItemRepository = (*LineItemRepo)(nil)

var lineItemColumns = []string{
	"id", "invoice_id", "sr_no", "description", "quantity", "unit_price", "total_price",
	"sachkonto", "bu_schluessel", "vat_rate", "vat_amount",
}

// LineItemRepo implementación de LineItemRepository (usable con pool o tx).
type LineItemRepo struct {
	q Querier
}

// NewLineItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLineItemRepository(q Querier) *LineItemRepo {
	return &LineItemRepo{q: q}
}

// CreateMany inserta todas las líneas con COPY en una sola ida y vuelta.
func (r *LineItemRepo) CreateMany(ctx context.Context, items []*entity.LineItem) error {
	if len(items) == 0 {
		return nil
	}
	src := pgx.CopyFromSlice(len(items), func(i int) ([]any, error) {
		it := items[i]
		return []any{
			it.ID, it.InvoiceID, it.SrNo, it.Description, it.Quantity, it.UnitPrice, it.TotalPrice,
			nullIfEmpty(it.Sachkonto), nullIfEmpty(it.BUSchluessel), it.VATRate, it.VATAmount,
		}, nil
	})
	n, err := r.q.CopyFrom(ctx, pgx.Identifier{"line_items"}, lineItemColumns, src)
	if err != nil {
		return wrapWriteError("copy line items", err)
	}
	if int(n) != len(items) {
		return fmt.Errorf("copy line items: %d de %d filas", n, len(items))
	}
	return nil
}

// ListByInvoice devuelve las líneas de la factura ordenadas por sr_no.
func (r *LineItemRepo) ListByInvoice(ctx context.Context, invoiceID string) ([]*entity.LineItem, error) {
	query := `
		SELECT id, invoice_id, sr_no, description, quantity, unit_price, total_price,
		       COALESCE(sachkonto, ''), COALESCE(bu_schluessel, ''), vat_rate, vat_amount
		FROM line_items WHERE invoice_id = $1 ORDER BY sr_no, id`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list line items: %w", err)
	}
	defer rows.Close()

	var list []*entity.LineItem
	for rows.Next() {
		var it entity.LineItem
		if err := rows.Scan(
			&it.ID, &it.InvoiceID, &it.SrNo, &it.Description, &it.Quantity, &it.UnitPrice, &it.TotalPrice,
			&it.Sachkonto, &it.BUSchluessel, &it.VATRate, &it.VATAmount,
		); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// DeleteAll elimina todas las líneas.
func (r *LineItemRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM line_items`); err != nil {
		return fmt.Errorf("delete line items: %w", err)
	}
	return nil
}
