package repository

import (
	"context"
	"time"

	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LineItemSpend fila mínima para clasificar el gasto por cuenta contable.
type LineItemSpend struct {
	Sachkonto  string
	TotalPrice decimal.Decimal
}

// VendorSpendResult total facturado y número de documentos por proveedor.
// Los proveedores sin facturas aparecen con cero.
type VendorSpendResult struct {
	VendorID     string
	VendorName   string
	TotalSpend   decimal.Decimal
	InvoiceCount int
}

// InvoiceListRow factura con el nombre de su proveedor (listado del dashboard).
type InvoiceListRow struct {
	Invoice    entity.Invoice
	VendorName string
}

// Campos de ordenación admitidos por ListInvoices.
const (
	SortInvoiceDate   = "invoice_date"
	SortInvoiceNumber = "invoice_number"
	SortInvoiceTotal  = "invoice_total"
	SortDueDate       = "due_date"
	SortVendorName    = "vendor_name"
)

// InvoiceListFilter parámetros del listado de facturas.
type InvoiceListFilter struct {
	Search              string // subcadena sin distinguir mayúsculas (proveedor o número)
	SortField           string // uno de Sort*; vacío = invoice_date
	Ascending           bool
	ExcludeDocumentType string // las facturas con document_type nulo se conservan
	Limit               int
}

// AnalyticsRepository define las consultas de lectura del dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// ListDueInvoices devuelve las facturas del tipo indicado con due_date no nulo.
	ListDueInvoices(ctx context.Context, documentType string) ([]entity.Invoice, error)

	// ListLineItemSpend devuelve total_price y sachkonto de todas las líneas.
	ListLineItemSpend(ctx context.Context) ([]LineItemSpend, error)

	// ListDatedInvoices devuelve las facturas con invoice_date no nulo.
	ListDatedInvoices(ctx context.Context) ([]entity.Invoice, error)

	// VendorSpendTotals agrega invoice_total y el conteo por proveedor,
	// sin filtros de fecha ni de tipo de documento.
	VendorSpendTotals(ctx context.Context) ([]VendorSpendResult, error)

	// ── Métricas del resumen ─────────────────────────────────────────────────

	// SumInvoiceTotalSince suma invoice_total con invoice_date >= since (cero si no hay filas).
	SumInvoiceTotalSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
	CountInvoices(ctx context.Context) (int, error)
	CountInvoicesSince(ctx context.Context, since time.Time) (int, error)
	// AverageInvoiceTotal devuelve la media de invoice_total o cero si no hay facturas.
	AverageInvoiceTotal(ctx context.Context) (decimal.Decimal, error)

	// ListInvoices devuelve como máximo filter.Limit facturas con su proveedor.
	ListInvoices(ctx context.Context, filter InvoiceListFilter) ([]InvoiceListRow, error)
}
