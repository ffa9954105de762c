package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/invoice-analytics/internal/application/analytics"
	"github.com/jhoicas/invoice-analytics/internal/application/dto"
)

var _ analytics.InvoiceSheetWriter = (*InvoiceSheetWriter)(nil)

const invoiceSheet = "Invoices"

var invoiceHeaders = []any{"Vendor", "Invoice date", "Invoice number", "Net value", "Status"}

// InvoiceSheetWriter implementa analytics.InvoiceSheetWriter con excelize.
type InvoiceSheetWriter struct{}

// NewInvoiceSheetWriter construye el escritor.
func NewInvoiceSheetWriter() *InvoiceSheetWriter { return &InvoiceSheetWriter{} }

// Write genera un libro con una hoja: cabecera en negrita y una fila por factura.
func (w *InvoiceSheetWriter) Write(rows []dto.InvoiceRowDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", invoiceSheet); err != nil {
		return nil, fmt.Errorf("xlsx: hoja: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	if err := f.SetSheetRow(invoiceSheet, "A1", &invoiceHeaders); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}
	if err := f.SetCellStyle(invoiceSheet, "A1", "E1", bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda: %w", err)
		}
		values := []any{r.VendorName, r.InvoiceDate, r.InvoiceNumber, r.NetValue, r.Status}
		if err := f.SetSheetRow(invoiceSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(invoiceSheet, "A", "A", 32); err != nil {
		return nil, fmt.Errorf("xlsx: ancho: %w", err)
	}
	if err := f.SetColWidth(invoiceSheet, "B", "E", 16); err != nil {
		return nil, fmt.Errorf("xlsx: ancho: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
