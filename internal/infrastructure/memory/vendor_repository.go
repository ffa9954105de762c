package memory

import (
	"context"
	"fmt"
	"maps"
	"sort"

	"github.com/jhoicas/invoice-analytics/internal/domain"
	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
)

type vendorRepo struct {
	s *Store
	j *journal
}

func (r *vendorRepo) Create(ctx context.Context, vendor *entity.Vendor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.names[vendor.Name]; taken {
		return fmt.Errorf("vendor %q: %w", vendor.Name, domain.ErrDuplicate)
	}
	if _, taken := r.s.vendors[vendor.ID]; taken {
		return fmt.Errorf("vendor id %s: %w", vendor.ID, domain.ErrDuplicate)
	}
	r.s.vendors[vendor.ID] = *vendor
	r.s.names[vendor.Name] = vendor.ID

	id, name := vendor.ID, vendor.Name
	r.j.record(func() {
		delete(r.s.vendors, id)
		delete(r.s.names, name)
	})
	return nil
}

func (r *vendorRepo) GetByName(ctx context.Context, name string) (*entity.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.names[name]
	if !ok {
		return nil, nil
	}
	v := r.s.vendors[id]
	return &v, nil
}

func (r *vendorRepo) List(ctx context.Context) ([]*entity.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*entity.Vendor, 0, len(r.s.vendors))
	for _, v := range r.s.vendors {
		out = append(out, &v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// DeleteAll falla si alguna factura referencia todavía a un proveedor.
func (r *vendorRepo) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if len(r.s.invoices) > 0 {
		return fmt.Errorf("delete vendors: %d facturas los referencian: %w", len(r.s.invoices), domain.ErrInvalidInput)
	}
	vendors, names := maps.Clone(r.s.vendors), maps.Clone(r.s.names)
	clear(r.s.vendors)
	clear(r.s.names)
	r.j.record(func() {
		r.s.vendors, r.s.names = vendors, names
	})
	return nil
}
