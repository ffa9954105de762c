package jobs

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-analytics/internal/application/dto"
	"github.com/jhoicas/invoice-analytics/internal/domain"
	"github.com/jhoicas/invoice-analytics/pkg/config"
	"github.com/jhoicas/invoice-analytics/pkg/logger"
)

type stubReloader struct {
	calls atomic.Int32
	res   dto.IngestionResult
	err   error
}

func (s *stubReloader) Reload(ctx context.Context) (dto.IngestionResult, error) {
	s.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return dto.IngestionResult{}, errors.New("sin deadline")
	}
	return s.res, s.err
}

func newTestLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "debug", Output: buf})
}

func TestNewReloadScheduler_Validacion(t *testing.T) {
	_, err := NewReloadScheduler(config.IngestionConfig{}, &stubReloader{}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewReloadScheduler(config.IngestionConfig{Schedule: "cada día"}, &stubReloader{}, nil)
	assert.Error(t, err)

	s, err := NewReloadScheduler(config.IngestionConfig{Schedule: "0 3 * * *", Timezone: "Europe/Berlin"}, &stubReloader{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", s.Location().String())
}

func TestNewReloadScheduler_ZonaInvalidaUsaUTC(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewReloadScheduler(config.IngestionConfig{Schedule: "@hourly", Timezone: "Marte/Olympus"}, &stubReloader{}, newTestLogger(&buf))
	require.NoError(t, err)
	assert.Equal(t, time.UTC, s.Location())
	assert.Contains(t, buf.String(), "zona horaria inválida")
}

func TestRunOnce_Resultados(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"completada", nil, "recarga programada completada"},
		{"en curso", domain.ErrReloadInProgress, "recarga omitida"},
		{"fallida", errors.New("bucket inaccesible"), "recarga programada fallida"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := &stubReloader{res: dto.IngestionResult{Total: 3, Processed: 2, Rejected: 1}, err: tt.err}
			s, err := NewReloadScheduler(config.IngestionConfig{Schedule: "@daily", Timezone: "UTC"}, r, newTestLogger(&buf))
			require.NoError(t, err)

			s.runOnce()

			assert.Equal(t, int32(1), r.calls.Load())
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), `"component":"reload-scheduler"`)
		})
	}
}

func TestStartStop(t *testing.T) {
	s, err := NewReloadScheduler(config.IngestionConfig{Schedule: "@every 1h", Timezone: "UTC"}, &stubReloader{}, nil)
	require.NoError(t, err)
	s.Start()
	select {
	case <-s.Stop().Done():
	case <-time.After(time.Second):
		t.Fatal("el cron no se detuvo")
	}
}
