package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
	"github.com/jhoicas/invoice-analytics/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo implementación read-only de AnalyticsRepository sobre PostgreSQL.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// sortColumns columnas SQL permitidas en ORDER BY (nunca se interpola texto del usuario).
var sortColumns = map[string]string{
	repository.SortInvoiceDate:   "i.invoice_date",
	repository.SortInvoiceNumber: "i.invoice_number",
	repository.SortInvoiceTotal:  "i.invoice_total",
	repository.SortDueDate:       "i.due_date",
	repository.SortVendorName:    "v.name",
}

func (r *AnalyticsRepo) ListDueInvoices(ctx context.Context, documentType string) ([]entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + `
		FROM invoices i
		WHERE i.document_type = $1 AND i.due_date IS NOT NULL
		ORDER BY i.id`
	return r.queryInvoices(ctx, query, documentType)
}

func (r *AnalyticsRepo) ListDatedInvoices(ctx context.Context) ([]entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + `
		FROM invoices i
		WHERE i.invoice_date IS NOT NULL
		ORDER BY i.id`
	return r.queryInvoices(ctx, query)
}

func (r *AnalyticsRepo) ListLineItemSpend(ctx context.Context) ([]repository.LineItemSpend, error) {
	rows, err := r.q.Query(ctx, `SELECT COALESCE(sachkonto, ''), total_price FROM line_items`)
	if err != nil {
		return nil, fmt.Errorf("line item spend: %w", err)
	}
	defer rows.Close()

	var list []repository.LineItemSpend
	for rows.Next() {
		var row repository.LineItemSpend
		if err := rows.Scan(&row.Sachkonto, &row.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan line item spend: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *AnalyticsRepo) VendorSpendTotals(ctx context.Context) ([]repository.VendorSpendResult, error) {
	query := `
		SELECT v.id, v.name, COALESCE(SUM(i.invoice_total), 0), COUNT(i.id)
		FROM vendors v
		LEFT JOIN invoices i ON i.vendor_id = v.id
		GROUP BY v.id, v.name
		ORDER BY v.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("vendor spend: %w", err)
	}
	defer rows.Close()

	var list []repository.VendorSpendResult
	for rows.Next() {
		var row repository.VendorSpendResult
		if err := rows.Scan(&row.VendorID, &row.VendorName, &row.TotalSpend, &row.InvoiceCount); err != nil {
			return nil, fmt.Errorf("scan vendor spend: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ── Métricas del resumen ─────────────────────────────────────────────────

func (r *AnalyticsRepo) SumInvoiceTotalSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(invoice_total), 0) FROM invoices WHERE invoice_date >= $1`, since,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum invoice total: %w", err)
	}
	return sum, nil
}

func (r *AnalyticsRepo) CountInvoices(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

func (r *AnalyticsRepo) CountInvoicesSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE invoice_date >= $1`, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count invoices since: %w", err)
	}
	return n, nil
}

func (r *AnalyticsRepo) AverageInvoiceTotal(ctx context.Context) (decimal.Decimal, error) {
	var avg decimal.Decimal
	if err := r.q.QueryRow(ctx, `SELECT COALESCE(AVG(invoice_total), 0) FROM invoices`).Scan(&avg); err != nil {
		return decimal.Zero, fmt.Errorf("average invoice total: %w", err)
	}
	return avg, nil
}

// ListInvoices filtra por proveedor o número (ILIKE), excluye un tipo de
// documento conservando los nulos y ordena con los nulos al final.
func (r *AnalyticsRepo) ListInvoices(ctx context.Context, filter repository.InvoiceListFilter) ([]repository.InvoiceListRow, error) {
	column, ok := sortColumns[filter.SortField]
	if !ok {
		column = sortColumns[repository.SortInvoiceDate]
	}
	direction := "DESC"
	if filter.Ascending {
		direction = "ASC"
	}

	query := `SELECT ` + invoiceColumns + `, v.name
		FROM invoices i
		JOIN vendors v ON v.id = i.vendor_id
		WHERE ($1 = '' OR i.document_type IS DISTINCT FROM $1)
		  AND ($2 = '' OR v.name ILIKE $3 OR i.invoice_number ILIKE $3)
		ORDER BY ` + column + ` ` + direction + ` NULLS LAST, i.id
		LIMIT NULLIF($4, 0)`

	rows, err := r.q.Query(ctx, query,
		filter.ExcludeDocumentType, filter.Search, likePattern(filter.Search), filter.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []repository.InvoiceListRow
	for rows.Next() {
		var row repository.InvoiceListRow
		if err := scanInvoice(rows, &row.Invoice, &row.VendorName); err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *AnalyticsRepo) queryInvoices(ctx context.Context, query string, args ...any) ([]entity.Invoice, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Invoice, error) {
		var inv entity.Invoice
		err := scanInvoice(row, &inv)
		return inv, err
	})
}
