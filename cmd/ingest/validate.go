package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/invoice-analytics/internal/application/ingestion"
	"github.com/jhoicas/invoice-analytics/internal/domain"
	"github.com/jhoicas/invoice-analytics/internal/infrastructure/source"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "validate",
		Short:   "Normaliza la fuente sin escribir y resume los rechazos",
		Example: `  ingest validate --source data/extract.json`,
		Args:    cobra.NoArgs,
		RunE:    runValidate,
	}
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cfg.Ingestion.Source == "" {
		return fmt.Errorf("%w: indique --source o INGEST_SOURCE", domain.ErrInvalidInput)
	}

	items, err := source.NewLoader().Load(cmd.Context(), cfg.Ingestion.Source)
	if err != nil {
		return fmt.Errorf("cargar %s: %w", cfg.Ingestion.Source, err)
	}
	res := ingestion.Validate(items)

	newLogger(cfg, cmd.ErrOrStderr()).Info().
		Int("total", res.Total).
		Int("accepted", res.Accepted).
		Int("rejected", res.Rejected).
		Msg("validación completada")
	return printJSON(cmd.OutOrStdout(), res)
}
