package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/invoice-analytics/internal/application/analytics"
)

// ReportHandler descarga del informe PDF del dashboard.
type ReportHandler struct {
	uc *appanalytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// DashboardPDF godoc
// @Summary      Informe PDF del dashboard
// @Description  Resumen, previsión de pagos, categorías, evolución mensual y top proveedores.
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/dashboard.pdf [get]
func (h *ReportHandler) DashboardPDF(c *fiber.Ctx) error {
	body, filename, err := h.uc.DownloadDashboardPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, "application/pdf", filename, body)
}
