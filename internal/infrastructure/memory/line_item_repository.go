package memory

import (
	"context"
	"fmt"
	"maps"
	"sort"

	"github.com/jhoicas/invoice-analytics/internal/domain"
	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
)

type lineItemRepo struct {
	s *Store
	j *journal
}

// CreateMany valida todas las líneas antes de insertar ninguna.
func (r *lineItemRepo) CreateMany(ctx context.Context, items []*entity.LineItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := r.s.invoices[item.InvoiceID]; !ok {
			return fmt.Errorf("line item %d: %w", item.SrNo, notFound("invoice", item.InvoiceID))
		}
		_, stored := r.s.lineItems[item.ID]
		_, repeated := seen[item.ID]
		if stored || repeated {
			return fmt.Errorf("line item id %s: %w", item.ID, domain.ErrDuplicate)
		}
		seen[item.ID] = struct{}{}
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		r.s.lineItems[item.ID] = *item
		ids = append(ids, item.ID)
	}
	r.j.record(func() {
		for _, id := range ids {
			delete(r.s.lineItems, id)
		}
	})
	return nil
}

func (r *lineItemRepo) ListByInvoice(ctx context.Context, invoiceID string) ([]*entity.LineItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*entity.LineItem
	for _, item := range r.s.lineItems {
		if item.InvoiceID == invoiceID {
			out = append(out, &item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SrNo < out[j].SrNo })
	return out, nil
}

func (r *lineItemRepo) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	items := maps.Clone(r.s.lineItems)
	clear(r.s.lineItems)
	r.j.record(func() { r.s.lineItems = items })
	return nil
}
