package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/invoice-analytics/internal/application/analytics"
	"github.com/jhoicas/invoice-analytics/internal/application/dto"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InvoiceHandler listado de facturas y su exportación a Excel.
type InvoiceHandler struct {
	list    *appanalytics.InvoiceListUseCase
	reports *appanalytics.ReportUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(list *appanalytics.InvoiceListUseCase, reports *appanalytics.ReportUseCase) *InvoiceHandler {
	return &InvoiceHandler{list: list, reports: reports}
}

// List godoc
// @Summary      Últimas facturas (máx. 10)
// @Description  Excluye notas de crédito. Búsqueda por proveedor o número de factura.
// @Tags         invoices
// @Produce      json
// @Param        search  query  string  false  "Subcadena (sin distinguir mayúsculas)"
// @Param        sort    query  string  false  "invoice_date | invoice_number | invoice_total | due_date | vendor_name"
// @Param        order   query  string  false  "asc | desc (default desc)"
// @Success      200  {array}   dto.InvoiceRowDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var req dto.InvoiceListRequest
	if err := c.QueryParser(&req); err != nil {
		return invalidParams(c)
	}
	rows, err := h.list.List(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// Export godoc
// @Summary      Exportar el listado de facturas a Excel
// @Tags         invoices
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        search  query  string  false  "Subcadena (sin distinguir mayúsculas)"
// @Param        sort    query  string  false  "Campo de ordenación"
// @Param        order   query  string  false  "asc | desc"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/invoices/export.xlsx [get]
func (h *InvoiceHandler) Export(c *fiber.Ctx) error {
	var req dto.InvoiceListRequest
	if err := c.QueryParser(&req); err != nil {
		return invalidParams(c)
	}
	body, filename, err := h.reports.ExportInvoices(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, contentTypeXLSX, filename, body)
}

func invalidParams(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
	})
}
