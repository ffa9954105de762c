package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/invoice-analytics/internal/application/dto"
	"github.com/jhoicas/invoice-analytics/internal/domain"
	"github.com/jhoicas/invoice-analytics/pkg/config"
	"github.com/jhoicas/invoice-analytics/pkg/logger"
)

// reloadTimeout tope de duración de una recarga programada.
const reloadTimeout = 2 * time.Hour

// Reloader ejecuta una recarga completa de documentos.
type Reloader interface {
	Reload(ctx context.Context) (dto.IngestionResult, error)
}

// ReloadScheduler dispara la recarga según la expresión cron configurada.
type ReloadScheduler struct {
	cron     *cron.Cron
	reloader Reloader
	log      *logger.Logger
	schedule string
	location *time.Location
}

// NewReloadScheduler valida la expresión y registra el job; no arranca el cron.
// Una zona horaria inválida se sustituye por UTC.
func NewReloadScheduler(cfg config.IngestionConfig, reloader Reloader, log *logger.Logger) (*ReloadScheduler, error) {
	if cfg.Schedule == "" {
		return nil, fmt.Errorf("%w: INGEST_SCHEDULE vacío", domain.ErrInvalidInput)
	}
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("reload-scheduler")

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", cfg.Timezone).Msg("zona horaria inválida, se usa UTC")
		loc = time.UTC
	}

	s := &ReloadScheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		reloader: reloader,
		log:      log,
		schedule: cfg.Schedule,
		location: loc,
	}
	if _, err := s.cron.AddFunc(cfg.Schedule, s.runOnce); err != nil {
		return nil, fmt.Errorf("programar recarga %q: %w", cfg.Schedule, err)
	}
	return s, nil
}

// Start arranca el cron en segundo plano.
func (s *ReloadScheduler) Start() {
	s.cron.Start()
	s.log.Info().Str("schedule", s.schedule).Str("timezone", s.location.String()).Msg("recarga programada")
}

// Stop detiene el cron; el contexto devuelto se cierra cuando termina el job en curso.
func (s *ReloadScheduler) Stop() context.Context {
	return s.cron.Stop()
}

// Location zona horaria efectiva del cron.
func (s *ReloadScheduler) Location() *time.Location {
	return s.location
}

func (s *ReloadScheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
	defer cancel()

	start := time.Now()
	res, err := s.reloader.Reload(ctx)
	switch {
	case errors.Is(err, domain.ErrReloadInProgress):
		s.log.Warn().Msg("recarga omitida: ya hay una en curso")
	case err != nil:
		s.log.Error().Err(err).Msg("recarga programada fallida")
	default:
		s.log.Info().
			Int("processed", res.Processed).
			Int("rejected", res.Rejected).
			Int("failed", res.Failed).
			Dur("elapsed", time.Since(start)).
			Msg("recarga programada completada")
	}
}
