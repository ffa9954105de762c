package analytics

import (
	"github.com/jhoicas/invoice-analytics/internal/application/dto"
)

// DashboardPDFGenerator genera el informe PDF del dashboard.
type DashboardPDFGenerator interface {
	Generate(report *dto.DashboardReportDTO) ([]byte, error)
}

// InvoiceSheetWriter genera la hoja de cálculo del listado de facturas.
type InvoiceSheetWriter interface {
	Write(rows []dto.InvoiceRowDTO) ([]byte, error)
}
