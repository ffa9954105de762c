package ingestion

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/jhoicas/invoice-analytics/internal/application/dto"
	"github.com/jhoicas/invoice-analytics/internal/domain"
)

// ReloadUseCase carga la fuente configurada y ejecuta el pipeline.
// Solo se admite una recarga a la vez (HTTP, cron y CLI comparten la instancia).
type ReloadUseCase struct {
	source   Source
	pipeline *Pipeline
	location string
	running  atomic.Bool
}

// NewReloadUseCase construye el caso de uso.
func NewReloadUseCase(source Source, pipeline *Pipeline, location string) *ReloadUseCase {
	return &ReloadUseCase{source: source, pipeline: pipeline, location: location}
}

// Reload ejecuta una recarga completa; domain.ErrReloadInProgress si ya hay otra en curso.
func (uc *ReloadUseCase) Reload(ctx context.Context) (dto.IngestionResult, error) {
	if uc.location == "" {
		return dto.IngestionResult{}, fmt.Errorf("%w: fuente de ingesta no configurada", domain.ErrInvalidInput)
	}
	if !uc.running.CompareAndSwap(false, true) {
		return dto.IngestionResult{}, domain.ErrReloadInProgress
	}
	defer uc.running.Store(false)

	items, err := uc.source.Load(ctx, uc.location)
	if err != nil {
		return dto.IngestionResult{}, fmt.Errorf("cargar %s: %w", uc.location, err)
	}
	return uc.pipeline.Run(ctx, items)
}

// Running indica si hay una recarga en curso.
func (uc *ReloadUseCase) Running() bool {
	return uc.running.Load()
}
