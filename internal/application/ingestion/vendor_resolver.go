package ingestion

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/invoice-analytics/internal/domain"
	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
	"github.com/jhoicas/invoice-analytics/internal/domain/repository"
)

// VendorResolver busca o crea proveedores por nombre exacto.
//
// Las resoluciones concurrentes del mismo nombre se agrupan (singleflight) y los
// nombres ya resueltos se sirven desde caché. Si aun así el almacén rechaza el alta
// por nombre duplicado, se vuelve a leer el proveedor existente.
type VendorResolver struct {
	repo  repository.VendorRepository
	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]entity.Vendor
}

// NewVendorResolver construye un resolvedor con caché vacía (una por ejecución de ingesta).
func NewVendorResolver(repo repository.VendorRepository) *VendorResolver {
	return &VendorResolver{repo: repo, cache: make(map[string]entity.Vendor)}
}

// Resolve devuelve el proveedor con el nombre del candidato, creándolo si no existe.
// Un proveedor existente se devuelve sin modificar sus atributos.
func (r *VendorResolver) Resolve(ctx context.Context, candidate entity.Vendor) (*entity.Vendor, error) {
	if candidate.Name == "" {
		return nil, fmt.Errorf("%w: nombre de proveedor vacío", domain.ErrInvalidInput)
	}
	if v, ok := r.cached(candidate.Name); ok {
		return &v, nil
	}

	res, err, _ := r.group.Do(candidate.Name, func() (any, error) {
		if v, ok := r.cached(candidate.Name); ok {
			return v, nil
		}
		v, err := r.findOrCreate(ctx, candidate)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.cache[v.Name] = *v
		r.mu.Unlock()
		return *v, nil
	})
	if err != nil {
		return nil, err
	}
	v := res.(entity.Vendor)
	return &v, nil
}

func (r *VendorResolver) findOrCreate(ctx context.Context, candidate entity.Vendor) (*entity.Vendor, error) {
	existing, err := r.repo.GetByName(ctx, candidate.Name)
	if err != nil {
		return nil, fmt.Errorf("buscar proveedor: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	v := &entity.Vendor{
		ID:        uuid.New().String(),
		Name:      candidate.Name,
		Address:   candidate.Address,
		TaxID:     candidate.TaxID,
		CreatedAt: time.Now().UTC(),
	}
	err = r.repo.Create(ctx, v)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, domain.ErrDuplicate) {
		return nil, fmt.Errorf("crear proveedor: %w", err)
	}

	// Otro escritor lo creó entre la lectura y el alta.
	existing, err = r.repo.GetByName(ctx, candidate.Name)
	if err != nil {
		return nil, fmt.Errorf("releer proveedor: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("proveedor %q duplicado pero no encontrado: %w", candidate.Name, domain.ErrNotFound)
	}
	return existing, nil
}

func (r *VendorResolver) cached(name string) (entity.Vendor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.cache[name]
	return v, ok
}
