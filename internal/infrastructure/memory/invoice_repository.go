package memory

import (
	"context"
	"fmt"
	"maps"
	"sort"

	"github.com/jhoicas/invoice-analytics/internal/domain"
	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
)

type invoiceRepo struct {
	s *Store
	j *journal
}

func (r *invoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vendors[invoice.VendorID]; !ok {
		return fmt.Errorf("invoice %s: %w", invoice.InvoiceNumber, notFound("vendor", invoice.VendorID))
	}
	if _, taken := r.s.invoices[invoice.ID]; taken {
		return fmt.Errorf("invoice id %s: %w", invoice.ID, domain.ErrDuplicate)
	}
	r.s.invoices[invoice.ID] = *invoice

	id := invoice.ID
	r.j.record(func() { delete(r.s.invoices, id) })
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r *invoiceRepo) ListByVendor(ctx context.Context, vendorID string) ([]*entity.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*entity.Invoice
	for _, inv := range r.s.invoices {
		if inv.VendorID == vendorID {
			out = append(out, &inv)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// DeleteAll falla si alguna línea referencia todavía a una factura.
func (r *invoiceRepo) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if len(r.s.lineItems) > 0 {
		return fmt.Errorf("delete invoices: %d líneas las referencian: %w", len(r.s.lineItems), domain.ErrInvalidInput)
	}
	invoices := maps.Clone(r.s.invoices)
	clear(r.s.invoices)
	r.j.record(func() { r.s.invoices = invoices })
	return nil
}
