package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jhoicas/invoice-analytics/internal/application/ingestion"
	"github.com/jhoicas/invoice-analytics/internal/infrastructure/source"
	"github.com/jhoicas/invoice-analytics/internal/infrastructure/storage"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Recarga completa: borra los datos actuales e ingiere la fuente",
		Example: `  ingest run --source data/extract.json
  ingest run --source gs://facturas/extract.json --workers 8`,
		Args: cobra.NoArgs,
		RunE: runIngest,
	}
	cmd.Flags().Int("workers", 0, "Elementos en paralelo (default: INGEST_WORKERS)")
	cmd.Flags().String("driver", "", "postgres | memory (default: DB_DRIVER)")
	return cmd
}

func runIngest(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if n, _ := cmd.Flags().GetInt("workers"); n > 0 {
		cfg.Ingestion.Workers = n
	}
	if d, _ := cmd.Flags().GetString("driver"); d != "" {
		cfg.DB.Driver = d
	}
	log := newLogger(cfg, cmd.ErrOrStderr())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		return err
	}
	defer backend.Close()

	pipeline := ingestion.NewPipeline(backend.TxRunner, backend.Vendors, log, cfg.Ingestion.Workers)
	reload := ingestion.NewReloadUseCase(source.NewLoader(), pipeline, cfg.Ingestion.Source)

	log.Info().
		Str("source", cfg.Ingestion.Source).
		Str("driver", cfg.DB.Driver).
		Int("workers", cfg.Ingestion.Workers).
		Msg("iniciando ingesta")

	res, err := reload.Reload(ctx)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return fmt.Errorf("ingesta interrumpida: %w", err)
		}
		return err
	}
	return printJSON(cmd.OutOrStdout(), res)
}
