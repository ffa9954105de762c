package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/jhoicas/invoice-analytics/pkg/config"
	"github.com/jhoicas/invoice-analytics/pkg/logger"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ingest",
		Short: "Carga o valida documentos extraídos",
		Long: `ingest lee un array JSON de documentos extraídos desde una ruta local
o un objeto gs://bucket/objeto y lo normaliza a proveedores, facturas y líneas.

La configuración se toma de las mismas variables que la API (DB_DRIVER,
DATABASE_URL, INGEST_SOURCE, INGEST_WORKERS, ...); los flags tienen prioridad.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("source", "", "Ruta local o gs://bucket/objeto (default: INGEST_SOURCE)")

	root.AddCommand(newRunCmd(), newValidateCmd())
	return root
}

// loadSettings configuración de la app con los flags comunes aplicados.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if src, _ := cmd.Flags().GetString("source"); src != "" {
		cfg.Ingestion.Source = src
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) *logger.Logger {
	return logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: w}).WithComponent("ingest")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
