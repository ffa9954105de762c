package ingestion

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/invoice-analytics/internal/domain"
	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
	"github.com/jhoicas/invoice-analytics/pkg/extraction"
)

// Rutas dentro de extractedData.llmData.
const (
	pathVendorName     = "vendor.value.vendorName"
	pathVendorAddress  = "vendor.value.vendorAddress"
	pathVendorTaxID    = "vendor.value.vendorTaxId"
	pathInvoiceNumber  = "invoice.value.invoiceId"
	pathInvoiceDate    = "invoice.value.invoiceDate"
	pathDeliveryDate   = "invoice.value.deliveryDate"
	pathInvoiceTotal   = "summary.value.invoiceTotal"
	pathSubTotal       = "summary.value.subTotal"
	pathTotalTax       = "summary.value.totalTax"
	pathCurrencySymbol = "summary.value.currencySymbol"
	pathDocumentType   = "summary.value.documentType"
	pathDueDate        = "payment.value.dueDate"
	pathNetDays        = "payment.value.netDays"
	pathLineItems      = "lineItems.value.items.value"
)

// NormalizedRecord terna candidata producida a partir de un elemento crudo.
// Los IDs y las referencias (VendorID, InvoiceID) se asignan al persistir.
type NormalizedRecord struct {
	Vendor    entity.Vendor
	Invoice   entity.Invoice
	LineItems []entity.LineItem
}

// Normalize convierte un elemento crudo en registros canónicos.
//
// Rechaza el elemento (domain.ErrMissingExtraction
// o domain.ErrMissingRequiredField) si falta el árbol llmData o alguno de los
// campos mínimos: proveedor, número de factura y total numérico.
// El resto de campos son opcionales: importes a cero, fechas inválidas a nil.
func Normalize(item RawItem) (*NormalizedRecord, error) {
	llm, ok := item.ExtractedData["llmData"].(map[string]any)
	if !ok || llm == nil {
		return nil, domain.ErrMissingExtraction
	}

	vendorName, ok := extraction.String(llm, pathVendorName)
	if !ok {
		return nil, fmt.Errorf("%w: vendorName", domain.ErrMissingRequiredField)
	}
	invoiceNumber, ok := extraction.String(llm, pathInvoiceNumber)
	if !ok {
		return nil, fmt.Errorf("%w: invoiceId", domain.ErrMissingRequiredField)
	}
	total, ok := extraction.Decimal(llm, pathInvoiceTotal)
	if !ok {
		return nil, fmt.Errorf("%w: invoiceTotal", domain.ErrMissingRequiredField)
	}

	rec := &NormalizedRecord{
		Vendor: entity.Vendor{
			Name:    vendorName,
			Address: optionalString(llm, pathVendorAddress),
			TaxID:   optionalString(llm, pathVendorTaxID),
		},
		Invoice: entity.Invoice{
			DocID:          item.ID,
			InvoiceNumber:  invoiceNumber,
			InvoiceDate:    optionalDate(llm, pathInvoiceDate),
			DeliveryDate:   optionalDate(llm, pathDeliveryDate),
			DueDate:        optionalDate(llm, pathDueDate),
			NetDays:        optionalInt(llm, pathNetDays),
			SubTotal:       extraction.DecimalOrZero(llm, pathSubTotal),
			TotalTax:       extraction.DecimalOrZero(llm, pathTotalTax),
			InvoiceTotal:   total,
			CurrencySymbol: optionalString(llm, pathCurrencySymbol),
			DocumentType:   optionalString(llm, pathDocumentType),
		},
	}

	lines, _ := extraction.Slice(llm, pathLineItems)
	rec.LineItems = make([]entity.LineItem, 0, len(lines))
	for i, raw := range lines {
		rec.LineItems = append(rec.LineItems, normalizeLine(raw, i))
	}
	return rec, nil
}

// normalizeLine aplica la política de valores por defecto a una línea.
// srNo toma la posición (base 1) si falta o es cero.
func normalizeLine(raw any, index int) entity.LineItem {
	line := entity.LineItem{
		SrNo:         index + 1,
		Description:  entity.DefaultLineDescription,
		Quantity:     extraction.DecimalOrZero(raw, "quantity"),
		UnitPrice:    extraction.DecimalOrZero(raw, "unitPrice"),
		TotalPrice:   extraction.DecimalOrZero(raw, "totalPrice"),
		Sachkonto:    accountCode(raw, "Sachkonto"),
		BUSchluessel: accountCode(raw, "BUSchluessel"),
		VATRate:      extraction.DecimalOrZero(raw, "vatRate"),
		VATAmount:    extraction.DecimalOrZero(raw, "vatAmount"),
	}
	if n, ok := extraction.Int(raw, "srNo"); ok && n > 0 {
		line.SrNo = n
	}
	if desc, ok := extraction.String(raw, "description"); ok {
		line.Description = desc
	}
	return line
}

// accountCode devuelve el código como texto. Solo el cero numérico cuenta
// como ausente; la cadena "0" es un código válido.
func accountCode(raw any, path string) string {
	if v, ok := extraction.Resolve(raw, path); ok && isNumericZero(v) {
		return ""
	}
	return optionalString(raw, path)
}

func isNumericZero(v any) bool {
	switch v.(type) {
	case json.Number, float64, int, int64:
		d, ok := extraction.Decimal(v, "")
		return ok && d.IsZero()
	}
	return false
}

func optionalString(root any, path string) string {
	s, _ := extraction.String(root, path)
	return s
}

func optionalDate(root any, path string) *time.Time {
	d, ok := extraction.Date(root, path)
	if !ok {
		return nil
	}
	return &d
}

func optionalInt(root any, path string) *int {
	n, ok := extraction.Int(root, path)
	if !ok {
		return nil
	}
	return &n
}
