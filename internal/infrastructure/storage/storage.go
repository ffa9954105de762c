package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoice-analytics/internal/application/ingestion"
	"github.com/jhoicas/invoice-analytics/internal/domain/repository"
	"github.com/jhoicas/invoice-analytics/internal/infrastructure/memory"
	"github.com/jhoicas/invoice-analytics/internal/infrastructure/postgres"
	"github.com/jhoicas/invoice-analytics/pkg/config"
	"github.com/jhoicas/invoice-analytics/pkg/logger"
)

// Backend almacén seleccionado por DB_DRIVER. Se construye una vez en main y se
// cierra al apagar.
type Backend struct {
	TxRunner  ingestion.TxRunner
	Vendors   repository.VendorRepository
	Analytics repository.AnalyticsRepository
	close     func()
}

// Open abre el almacén configurado. Con postgres crea el esquema si falta.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Backend, error) {
	if log == nil {
		log = logger.Nop()
	}
	switch cfg.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		return &Backend{
			TxRunner:  store,
			Vendors:   store.Vendors(),
			Analytics: store,
			close:     func() {},
		}, nil
	case config.DriverPostgres, "":
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Backend{
			TxRunner:  postgres.NewTxRunner(pool),
			Vendors:   postgres.NewVendorRepository(pool),
			Analytics: postgres.NewAnalyticsRepository(pool),
			close:     pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Driver)
	}
}

// Close libera las conexiones del almacén.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}
