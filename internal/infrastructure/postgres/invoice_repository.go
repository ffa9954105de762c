package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
	"github.com/jhoicas/invoice-analytics/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// invoiceColumns columnas en el orden que espera scanInvoice (alias i).
const invoiceColumns = `
	i.id, i.vendor_id, COALESCE(i.doc_id, ''), i.invoice_number,
	i.invoice_date, i.delivery_date, i.due_date, i.net_days,
	i.sub_total, i.total_tax, i.invoice_total,
	COALESCE(i.currency_symbol, ''), COALESCE(i.document_type, ''), i.created_at`

// rowScanner pgx.Row o pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanInvoice lee invoiceColumns y, si se indican, columnas adicionales al final.
func scanInvoice(row rowScanner, inv *entity.Invoice, extra ...any) error {
	dest := []any{
		&inv.ID, &inv.VendorID, &inv.DocID, &inv.InvoiceNumber,
		&inv.InvoiceDate, &inv.DeliveryDate, &inv.DueDate, &inv.NetDays,
		&inv.SubTotal, &inv.TotalTax, &inv.InvoiceTotal,
		&inv.CurrencySymbol, &inv.DocumentType, &inv.CreatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de la factura.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, vendor_id, doc_id, invoice_number, invoice_date, delivery_date, due_date, net_days,
		                      sub_total, total_tax, invoice_total, currency_symbol, document_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.VendorID, nullIfEmpty(invoice.DocID), invoice.InvoiceNumber,
		invoice.InvoiceDate, invoice.DeliveryDate, invoice.DueDate, invoice.NetDays,
		invoice.SubTotal, invoice.TotalTax, invoice.InvoiceTotal,
		nullIfEmpty(invoice.CurrencySymbol), nullIfEmpty(invoice.DocumentType), invoice.CreatedAt,
	)
	if err != nil {
		return wrapWriteError("insert invoice", err)
	}
	return nil
}

// GetByID obtiene una factura por ID; (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices i WHERE i.id = $1`
	var inv entity.Invoice
	if err := scanInvoice(r.q.QueryRow(ctx, query, id), &inv); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// ListByVendor devuelve las facturas del proveedor por orden de alta.
func (r *InvoiceRepo) ListByVendor(ctx context.Context, vendorID string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices i WHERE i.vendor_id = $1 ORDER BY i.created_at, i.id`
	rows, err := r.q.Query(ctx, query, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := scanInvoice(rows, &inv); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// DeleteAll elimina todas las facturas (las líneas deben borrarse antes).
func (r *InvoiceRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM invoices`); err != nil {
		return wrapWriteError("delete invoices", err)
	}
	return nil
}
