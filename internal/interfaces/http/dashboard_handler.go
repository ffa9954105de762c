package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/invoice-analytics/internal/application/analytics"
	"github.com/jhoicas/invoice-analytics/pkg/logger"
)

// DashboardHandler expone las cinco métricas del dashboard.
// Cada endpoint falla de forma independiente (500 solo para la métrica afectada).
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// GetStats godoc
// @Summary      Resumen del dashboard
// @Description  Gasto del año en curso, facturas procesadas, documentos del último mes y valor medio.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.OverviewStatsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetOverview(c.Context())
	if err != nil {
		return h.fail(c, "stats", err)
	}
	return c.JSON(stats)
}

// GetCashOutflow godoc
// @Summary      Previsión de pagos por tramo de vencimiento
// @Description  Cinco tramos en orden fijo: Overdue, 0 - 7 days, 8 - 30 days, 31 - 60 days, 60+ days.
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   dto.CashOutflowDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/cash-outflow [get]
func (h *DashboardHandler) GetCashOutflow(c *fiber.Ctx) error {
	buckets, err := h.uc.GetCashOutflow(c.Context())
	if err != nil {
		return h.fail(c, "cash-outflow", err)
	}
	return c.JSON(buckets)
}

// GetCategorySpend godoc
// @Summary      Gasto por categoría contable
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   dto.CategorySpendDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/category-spend [get]
func (h *DashboardHandler) GetCategorySpend(c *fiber.Ctx) error {
	categories, err := h.uc.GetCategorySpend(c.Context())
	if err != nil {
		return h.fail(c, "category-spend", err)
	}
	return c.JSON(categories)
}

// GetInvoiceTrends godoc
// @Summary      Evolución mensual de facturas
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   dto.InvoiceTrendDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/invoice-trends [get]
func (h *DashboardHandler) GetInvoiceTrends(c *fiber.Ctx) error {
	trend, err := h.uc.GetInvoiceTrends(c.Context())
	if err != nil {
		return h.fail(c, "invoice-trends", err)
	}
	return c.JSON(trend)
}

// GetTopVendors godoc
// @Summary      Diez proveedores con mayor gasto
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   dto.TopVendorDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/vendors/top10 [get]
func (h *DashboardHandler) GetTopVendors(c *fiber.Ctx) error {
	vendors, err := h.uc.GetTopVendors(c.Context())
	if err != nil {
		return h.fail(c, "top-vendors", err)
	}
	return c.JSON(vendors)
}

func (h *DashboardHandler) fail(c *fiber.Ctx, metric string, err error) error {
	h.log.Error().Err(err).Str("metric", metric).Msg("métrica no disponible")
	return respondError(c, err)
}
