package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/invoice-analytics/internal/application/analytics"
	"github.com/jhoicas/invoice-analytics/internal/application/ingestion"
	"github.com/jhoicas/invoice-analytics/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName string
	DashboardUC *appanalytics.DashboardUseCase
	InvoiceList *appanalytics.InvoiceListUseCase
	ReportUC    *appanalytics.ReportUseCase
	ReloadUC    *ingestion.ReloadUseCase
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("http")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api")

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	api.Get("/stats", dashboardHandler.GetStats)
	api.Get("/cash-outflow", dashboardHandler.GetCashOutflow)
	api.Get("/category-spend", dashboardHandler.GetCategorySpend)
	api.Get("/invoice-trends", dashboardHandler.GetInvoiceTrends)
	api.Get("/vendors/top10", dashboardHandler.GetTopVendors)

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceList, deps.ReportUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/export.xlsx", invoiceHandler.Export)

	// Reports
	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/reports/dashboard.pdf", reportHandler.DashboardPDF)

	// Admin
	adminHandler := NewAdminHandler(deps.ReloadUC, log)
	api.Post("/admin/reload", adminHandler.Reload)
}
