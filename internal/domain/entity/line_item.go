package entity

import "github.com/shopspring/decimal"

// DefaultLineDescription se asigna a las líneas sin descripción.
const DefaultLineDescription = "No Description"

// LineItem representa una línea de una factura extraída.
type LineItem struct {
	ID           string
	InvoiceID    string
	SrNo         int
	Description  string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	TotalPrice   decimal.Decimal
	Sachkonto    string // cuenta contable (SKR); "" = sin cuenta
	BUSchluessel string // clave de impuesto DATEV; "" = sin clave
	VATRate      decimal.Decimal
	VATAmount    decimal.Decimal
}
