package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/invoice-analytics/internal/application/ingestion"
	"github.com/jhoicas/invoice-analytics/internal/domain"
	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
	"github.com/jhoicas/invoice-analytics/internal/domain/repository"
)

// Ensure Store implements the ports used by the application layer.
var (
	_ ingestion.TxRunner             = (*Store)(nil)
	_ repository.AnalyticsRepository = (*Store)(nil)
)

// Store almacén en memoria con las mismas restricciones que el esquema SQL:
// nombre de proveedor único y claves foráneas factura → proveedor y línea → factura.
//
// Las transacciones (Run) se serializan entre sí y se deshacen con un registro de
// operaciones inversas; las lecturas concurrentes pueden ver escrituras aún no confirmadas.
type Store struct {
	mu        sync.RWMutex
	txMu      sync.Mutex
	vendors   map[string]entity.Vendor   // por ID
	names     map[string]string          // nombre → ID
	invoices  map[string]entity.Invoice  // por ID
	lineItems map[string]entity.LineItem // por ID
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		vendors:   make(map[string]entity.Vendor),
		names:     make(map[string]string),
		invoices:  make(map[string]entity.Invoice),
		lineItems: make(map[string]entity.LineItem),
	}
}

// Vendors repositorio de proveedores fuera de transacción.
func (s *Store) Vendors() repository.VendorRepository { return &vendorRepo{s: s} }

// Invoices repositorio de facturas fuera de transacción.
func (s *Store) Invoices() repository.InvoiceRepository { return &invoiceRepo{s: s} }

// LineItems repositorio de líneas fuera de transacción.
func (s *Store) LineItems() repository.LineItemRepository { return &lineItemRepo{s: s} }

// Run ejecuta fn con repositorios atados a una transacción; si fn falla se
// deshacen sus escrituras en orden inverso.
func (s *Store) Run(ctx context.Context, fn func(
	vendorRepo repository.VendorRepository,
	invoiceRepo repository.InvoiceRepository,
	lineItemRepo repository.LineItemRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	j := &journal{}
	if err := fn(&vendorRepo{s: s, j: j}, &invoiceRepo{s: s, j: j}, &lineItemRepo{s: s, j: j}); err != nil {
		s.mu.Lock()
		j.rollback()
		s.mu.Unlock()
		return err
	}
	return nil
}

// journal acumula las operaciones inversas de una transacción.
// Se invoca siempre con s.mu tomado en escritura.
type journal struct {
	undo []func()
}

func (j *journal) record(fn func()) {
	if j != nil {
		j.undo = append(j.undo, fn)
	}
}

func (j *journal) rollback() {
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
}
