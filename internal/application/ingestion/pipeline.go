package ingestion

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/invoice-analytics/internal/application/dto"
	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
	"github.com/jhoicas/invoice-analytics/internal/domain/repository"
	"github.com/jhoicas/invoice-analytics/pkg/logger"
)

type outcome int

const (
	outcomeProcessed outcome = iota
	outcomeRejected
	outcomeFailed
)

// Pipeline reemplaza el contenido del almacén con una tanda de elementos crudos.
type Pipeline struct {
	txRunner   TxRunner
	vendorRepo repository.VendorRepository
	log        *logger.Logger
	workers    int
}

// NewPipeline construye el pipeline. workers <= 1 procesa en orden, uno a uno.
func NewPipeline(
	txRunner TxRunner,
	vendorRepo repository.VendorRepository,
	log *logger.Logger,
	workers int,
) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Pipeline{
		txRunner:   txRunner,
		vendorRepo: vendorRepo,
		log:        log.WithComponent("ingestion"),
		workers:    workers,
	}
}

// Run borra todos los datos existentes (líneas, facturas, proveedores) y carga items.
//
// Un elemento rechazado o con error de persistencia se registra en el log y se
// cuenta, pero no detiene la tanda. Solo un fallo al limpiar o la cancelación del
// contexto devuelven error; en el segundo caso el resultado refleja lo procesado.
func (p *Pipeline) Run(ctx context.Context, items []RawItem) (dto.IngestionResult, error) {
	start := time.Now()
	result := dto.IngestionResult{Total: len(items)}

	if err := p.reset(ctx); err != nil {
		return result, fmt.Errorf("limpiar datos previos: %w", err)
	}

	resolver := NewVendorResolver(p.vendorRepo)
	var processed, rejected, failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(p.workers)
	for _, item := range items {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			switch p.ingestOne(ctx, resolver, item) {
			case outcomeProcessed:
				processed.Add(1)
			case outcomeRejected:
				rejected.Add(1)
			case outcomeFailed:
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	result.Processed = int(processed.Load())
	result.Rejected = int(rejected.Load())
	result.Failed = int(failed.Load())
	result.Duration = time.Since(start).Milliseconds()

	p.log.Info().
		Int("total", result.Total).
		Int("processed", result.Processed).
		Int("rejected", result.Rejected).
		Int("failed", result.Failed).
		Int64("duration_ms", result.Duration).
		Msg("ingesta finalizada")

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// reset elimina en orden inverso de dependencia dentro de una única transacción.
func (p *Pipeline) reset(ctx context.Context) error {
	return p.txRunner.Run(ctx, func(
		vendorRepo repository.VendorRepository,
		invoiceRepo repository.InvoiceRepository,
		lineItemRepo repository.LineItemRepository,
	) error {
		if err := lineItemRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("line items: %w", err)
		}
		if err := invoiceRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("invoices: %w", err)
		}
		if err := vendorRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("vendors: %w", err)
		}
		return nil
	})
}

func (p *Pipeline) ingestOne(ctx context.Context, resolver *VendorResolver, item RawItem) outcome {
	rec, err := Normalize(item)
	if err != nil {
		p.log.Warn().Str("doc_id", item.ID).Err(err).Msg("elemento rechazado")
		return outcomeRejected
	}

	vendor, err := resolver.Resolve(ctx, rec.Vendor)
	if err != nil {
		p.log.Error().Str("doc_id", item.ID).Str("vendor", rec.Vendor.Name).Err(err).Msg("no se pudo resolver el proveedor")
		return outcomeFailed
	}

	if err := p.persist(ctx, vendor.ID, rec); err != nil {
		p.log.Error().Str("doc_id", item.ID).Str("invoice_number", rec.Invoice.InvoiceNumber).Err(err).Msg("no se pudo guardar la factura")
		return outcomeFailed
	}

	p.log.Debug().
		Str("doc_id", item.ID).
		Str("vendor", vendor.Name).
		Int("line_items", len(rec.LineItems)).
		Msg("factura guardada")
	return outcomeProcessed
}

// persist guarda la cabecera y sus líneas de forma atómica.
func (p *Pipeline) persist(ctx context.Context, vendorID string, rec *NormalizedRecord) error {
	now := time.Now().UTC()
	invoice := rec.Invoice
	invoice.ID = uuid.New().String()
	invoice.VendorID = vendorID
	invoice.CreatedAt = now

	lines := make([]*entity.LineItem, len(rec.LineItems))
	for i := range rec.LineItems {
		line := rec.LineItems[i]
		line.ID = uuid.New().String()
		line.InvoiceID = invoice.ID
		lines[i] = &line
	}

	return p.txRunner.Run(ctx, func(
		_ repository.VendorRepository,
		invoiceRepo repository.InvoiceRepository,
		lineItemRepo repository.LineItemRepository,
	) error {
		if err := invoiceRepo.Create(ctx, &invoice); err != nil {
			return fmt.Errorf("crear factura: %w", err)
		}
		if len(lines) == 0 {
			return nil
		}
		if err := lineItemRepo.CreateMany(ctx, lines); err != nil {
			return fmt.Errorf("crear líneas: %w", err)
		}
		return nil
	})
}
