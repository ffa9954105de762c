package analytics

import (
	"time"

	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Etiquetas de los tramos de vencimiento, en el orden en que se presentan.
const (
	BucketOverdue    = "Overdue"
	Bucket0To7Days   = "0 - 7 days"
	Bucket8To30Days  = "8 - 30 days"
	Bucket31To60Days = "31 - 60 days"
	BucketOver60Days = "60+ days"
)

var bucketOrder = [...]string{
	BucketOverdue,
	Bucket0To7Days,
	Bucket8To30Days,
	Bucket31To60Days,
	BucketOver60Days,
}

// forthcomingRanges límites superiores (en días) de los tramos futuros.
// Lo que no cae en ninguno va a BucketOver60Days.
var forthcomingRanges = []struct {
	label   string
	maxDays int
}{
	{Bucket0To7Days, 7},
	{Bucket8To30Days, 30},
	{Bucket31To60Days, 60},
}

// OutflowBucket importe previsto de pagos en un tramo de vencimiento.
type OutflowBucket struct {
	Label  string
	Amount decimal.Decimal
}

// BucketCashOutflow reparte el total de cada factura en un único tramo según
// su fecha de vencimiento respecto a now.
//
// Solo participan documentos de tipo "invoice" con due_date. Un vencimiento
// en un día anterior al de now es Overdue; el resto se asigna por días completos
// de 24 h hasta el vencimiento (una factura que vence hoy cae en 0 - 7 days).
// Cada tramo se redondea por separado; siempre se devuelven los cinco tramos.
func BucketCashOutflow(invoices []entity.Invoice, now time.Time) []OutflowBucket {
	sums := make(map[string]decimal.Decimal, len(bucketOrder))
	for i := range invoices {
		inv := &invoices[i]
		if inv.DocumentType != entity.DocumentTypeInvoice || inv.DueDate == nil {
			continue
		}
		label := bucketFor(inv, now)
		sums[label] = sums[label].Add(inv.InvoiceTotal)
	}

	out := make([]OutflowBucket, 0, len(bucketOrder))
	for _, label := range bucketOrder {
		out = append(out, OutflowBucket{Label: label, Amount: Round2(sums[label])})
	}
	return out
}

func bucketFor(inv *entity.Invoice, now time.Time) string {
	if inv.IsOverdue(now) {
		return BucketOverdue
	}
	days := DaysUntil(now, *inv.DueDate)
	for _, r := range forthcomingRanges {
		if days <= r.maxDays {
			return r.label
		}
	}
	return BucketOver60Days
}

// DaysUntil número de días completos (24 h) entre from y to, truncado hacia cero.
func DaysUntil(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
