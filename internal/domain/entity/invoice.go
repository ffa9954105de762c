package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento que distinguen los filtros del dashboard.
const (
	DocumentTypeInvoice    = "invoice"
	DocumentTypeCreditNote = "creditNote"
)

// DefaultCurrencySymbol se usa al presentar importes sin símbolo de moneda.
const DefaultCurrencySymbol = "€"

// Invoice representa la cabecera normalizada de un documento extraído.
// Los importes nunca son nulos: si faltan en la fuente valen cero.
type Invoice struct {
	ID             string
	VendorID       string
	DocID          string // identificador del documento fuente (_id)
	InvoiceNumber  string
	InvoiceDate    *time.Time
	DeliveryDate   *time.Time
	DueDate        *time.Time
	NetDays        *int
	SubTotal       decimal.Decimal
	TotalTax       decimal.Decimal
	InvoiceTotal   decimal.Decimal
	CurrencySymbol string // "" = usar DefaultCurrencySymbol al presentar
	DocumentType   string // "invoice", "creditNote", texto libre o ""
	CreatedAt      time.Time
}

// IsOverdue indica si el vencimiento cae en un día (UTC) anterior al de now.
// Una factura que vence hoy nunca está vencida.
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.DueDate != nil && DayUTC(*i.DueDate).Before(DayUTC(now))
}

// DayUTC trunca t a las 00:00 UTC de su día.
func DayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Currency devuelve el símbolo de moneda o el predeterminado.
func (i *Invoice) Currency(def string) string {
	if i.CurrencySymbol != "" {
		return i.CurrencySymbol
	}
	if def != "" {
		return def
	}
	return DefaultCurrencySymbol
}
