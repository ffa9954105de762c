package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/invoice-analytics/docs"
	appanalytics "github.com/jhoicas/invoice-analytics/internal/application/analytics"
	"github.com/jhoicas/invoice-analytics/internal/application/ingestion"
	"github.com/jhoicas/invoice-analytics/internal/infrastructure/report"
	"github.com/jhoicas/invoice-analytics/internal/infrastructure/source"
	"github.com/jhoicas/invoice-analytics/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/invoice-analytics/internal/interfaces/http"
	"github.com/jhoicas/invoice-analytics/internal/jobs"
	"github.com/jhoicas/invoice-analytics/pkg/config"
	"github.com/jhoicas/invoice-analytics/pkg/logger"
)

// @title        Invoice Analytics API
// @version      1.0
// @description  Normalización de documentos extraídos y métricas del dashboard de facturas.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén")
	}
	defer backend.Close()

	dashboardUC := appanalytics.NewDashboardUseCase(backend.Analytics)
	invoiceListUC := appanalytics.NewInvoiceListUseCase(backend.Analytics, cfg.App.DefaultCurrency)
	reportUC := appanalytics.NewReportUseCase(
		dashboardUC, invoiceListUC,
		report.NewDashboardPDFGenerator(cfg.App.DefaultCurrency),
		report.NewInvoiceSheetWriter(),
	)

	pipeline := ingestion.NewPipeline(backend.TxRunner, backend.Vendors, log, cfg.Ingestion.Workers)
	reloadUC := ingestion.NewReloadUseCase(source.NewLoader(), pipeline, cfg.Ingestion.Source)

	// Recarga programada (INGEST_SCHEDULE vacío = desactivada)
	var scheduler *jobs.ReloadScheduler
	if cfg.Ingestion.Schedule != "" {
		scheduler, err = jobs.NewReloadScheduler(cfg.Ingestion, reloadUC, log)
		if err != nil {
			log.Fatal().Err(err).Msg("programar recarga")
		}
		scheduler.Start()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Minute * 5,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invoice Analytics API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName: cfg.App.Name,
		DashboardUC: dashboardUC,
		InvoiceList: invoiceListUC,
		ReportUC:    reportUC,
		ReloadUC:    reloadUC,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if scheduler != nil {
		select {
		case <-scheduler.Stop().Done():
		case <-shutdownCtx.Done():
			log.Warn().Msg("recarga programada aún en curso al apagar")
		}
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
