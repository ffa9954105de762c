package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoice-analytics/internal/application/dto"
)

// ReportUseCase exportaciones descargables: informe PDF y listado en Excel.
type ReportUseCase struct {
	dashboard *DashboardUseCase
	invoices  *InvoiceListUseCase
	pdf       DashboardPDFGenerator
	sheet     InvoiceSheetWriter
}

// NewReportUseCase construye el caso de uso inyectando todas sus dependencias.
func NewReportUseCase(
	dashboard *DashboardUseCase,
	invoices *InvoiceListUseCase,
	pdf DashboardPDFGenerator,
	sheet InvoiceSheetWriter,
) *ReportUseCase {
	return &ReportUseCase{dashboard: dashboard, invoices: invoices, pdf: pdf, sheet: sheet}
}

// DownloadDashboardPDF genera el PDF con las cinco métricas.
func (uc *ReportUseCase) DownloadDashboardPDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	report, err := uc.dashboard.GetReport(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("informe: %w", err)
	}
	pdfBytes, err = uc.pdf.Generate(report)
	if err != nil {
		return nil, "", fmt.Errorf("informe: generar PDF: %w", err)
	}
	return pdfBytes, fmt.Sprintf("dashboard_%s.pdf", uc.dashboard.now().Format("20060102")), nil
}

// ExportInvoices genera el XLSX con las mismas filas que GET /api/invoices.
func (uc *ReportUseCase) ExportInvoices(ctx context.Context, req dto.InvoiceListRequest) (xlsxBytes []byte, filename string, err error) {
	rows, err := uc.invoices.List(ctx, req)
	if err != nil {
		return nil, "", err
	}
	xlsxBytes, err = uc.sheet.Write(rows)
	if err != nil {
		return nil, "", fmt.Errorf("exportar facturas: %w", err)
	}
	return xlsxBytes, fmt.Sprintf("invoices_%s.xlsx", uc.invoices.now().Format("20060102")), nil
}
