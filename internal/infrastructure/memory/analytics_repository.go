package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
	"github.com/jhoicas/invoice-analytics/internal/domain/repository"
)

func (s *Store) ListDueInvoices(ctx context.Context, documentType string) ([]entity.Invoice, error) {
	return s.filterInvoices(ctx, func(inv *entity.Invoice) bool {
		return inv.DocumentType == documentType && inv.DueDate != nil
	})
}

func (s *Store) ListDatedInvoices(ctx context.Context) ([]entity.Invoice, error) {
	return s.filterInvoices(ctx, func(inv *entity.Invoice) bool {
		return inv.InvoiceDate != nil
	})
}

func (s *Store) ListLineItemSpend(ctx context.Context) ([]repository.LineItemSpend, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]repository.LineItemSpend, 0, len(s.lineItems))
	for _, item := range s.lineItems {
		out = append(out, repository.LineItemSpend{Sachkonto: item.Sachkonto, TotalPrice: item.TotalPrice})
	}
	return out, nil
}

func (s *Store) VendorSpendTotals(ctx context.Context) ([]repository.VendorSpendResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	byVendor := make(map[string]*repository.VendorSpendResult, len(s.vendors))
	for id, v := range s.vendors {
		byVendor[id] = &repository.VendorSpendResult{VendorID: id, VendorName: v.Name, TotalSpend: decimal.Zero}
	}
	for _, inv := range s.invoices {
		row, ok := byVendor[inv.VendorID]
		if !ok {
			continue
		}
		row.TotalSpend = row.TotalSpend.Add(inv.InvoiceTotal)
		row.InvoiceCount++
	}

	out := make([]repository.VendorSpendResult, 0, len(byVendor))
	for _, row := range byVendor {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VendorName < out[j].VendorName })
	return out, nil
}

func (s *Store) SumInvoiceTotalSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	invoices, err := s.filterInvoices(ctx, datedSince(since))
	if err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for i := range invoices {
		sum = sum.Add(invoices[i].InvoiceTotal)
	}
	return sum, nil
}

func (s *Store) CountInvoices(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.invoices), nil
}

func (s *Store) CountInvoicesSince(ctx context.Context, since time.Time) (int, error) {
	invoices, err := s.filterInvoices(ctx, datedSince(since))
	if err != nil {
		return 0, err
	}
	return len(invoices), nil
}

func (s *Store) AverageInvoiceTotal(ctx context.Context) (decimal.Decimal, error) {
	invoices, err := s.filterInvoices(ctx, func(*entity.Invoice) bool { return true })
	if err != nil || len(invoices) == 0 {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for i := range invoices {
		sum = sum.Add(invoices[i].InvoiceTotal)
	}
	return sum.Div(decimal.NewFromInt(int64(len(invoices)))), nil
}

// ListInvoices reproduce la consulta SQL: filtro ILIKE, exclusión por tipo
// (los nulos se conservan), orden con nulos al final y límite.
func (s *Store) ListInvoices(ctx context.Context, filter repository.InvoiceListFilter) ([]repository.InvoiceListRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	search := strings.ToLower(filter.Search)
	var rows []repository.InvoiceListRow
	for _, inv := range s.invoices {
		if filter.ExcludeDocumentType != "" && inv.DocumentType == filter.ExcludeDocumentType {
			continue
		}
		name := s.vendors[inv.VendorID].Name
		if search != "" &&
			!strings.Contains(strings.ToLower(name), search) &&
			!strings.Contains(strings.ToLower(inv.InvoiceNumber), search) {
			continue
		}
		rows = append(rows, repository.InvoiceListRow{Invoice: inv, VendorName: name})
	}
	s.mu.RUnlock()

	compare := compareBy(filter.SortField)
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := &rows[i], &rows[j]
		// Los nulos van al final en ambos sentidos.
		na, nb := isNullSortKey(a, filter.SortField), isNullSortKey(b, filter.SortField)
		if na != nb {
			return nb
		}
		if na {
			return a.Invoice.ID < b.Invoice.ID
		}
		c := compare(a, b)
		if c == 0 {
			return a.Invoice.ID < b.Invoice.ID
		}
		if filter.Ascending {
			return c < 0
		}
		return c > 0
	})

	if filter.Limit > 0 && len(rows) > filter.Limit {
		rows = rows[:filter.Limit]
	}
	return rows, nil
}

func (s *Store) filterInvoices(ctx context.Context, keep func(*entity.Invoice) bool) ([]entity.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.Invoice
	for _, inv := range s.invoices {
		if keep(&inv) {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func datedSince(since time.Time) func(*entity.Invoice) bool {
	return func(inv *entity.Invoice) bool {
		return inv.InvoiceDate != nil && !inv.InvoiceDate.Before(since)
	}
}

func isNullSortKey(row *repository.InvoiceListRow, field string) bool {
	switch field {
	case repository.SortDueDate:
		return row.Invoice.DueDate == nil
	case repository.SortInvoiceNumber, repository.SortInvoiceTotal, repository.SortVendorName:
		return false
	default:
		return row.Invoice.InvoiceDate == nil
	}
}

// compareBy compara dos filas por el campo indicado (-1, 0, 1); los nulos se tratan aparte.
func compareBy(field string) func(a, b *repository.InvoiceListRow) int {
	switch field {
	case repository.SortInvoiceNumber:
		return func(a, b *repository.InvoiceListRow) int {
			return strings.Compare(a.Invoice.InvoiceNumber, b.Invoice.InvoiceNumber)
		}
	case repository.SortInvoiceTotal:
		return func(a, b *repository.InvoiceListRow) int {
			return a.Invoice.InvoiceTotal.Cmp(b.Invoice.InvoiceTotal)
		}
	case repository.SortVendorName:
		return func(a, b *repository.InvoiceListRow) int {
			return strings.Compare(a.VendorName, b.VendorName)
		}
	case repository.SortDueDate:
		return func(a, b *repository.InvoiceListRow) int {
			return compareTimes(a.Invoice.DueDate, b.Invoice.DueDate)
		}
	default:
		return func(a, b *repository.InvoiceListRow) int {
			return compareTimes(a.Invoice.InvoiceDate, b.Invoice.InvoiceDate)
		}
	}
}

func compareTimes(a, b *time.Time) int {
	if a == nil || b == nil {
		return 0
	}
	return a.Compare(*b)
}
