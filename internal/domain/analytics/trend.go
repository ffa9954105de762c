package analytics

import (
	"sort"
	"time"

	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// monthLabelLayout etiqueta "mes abreviado + año", ej. "Jan 2025".
const monthLabelLayout = "Jan 2006"

// MonthTrend facturas y gasto de un mes natural.
type MonthTrend struct {
	Month      string
	Count      int
	TotalSpend decimal.Decimal
}

// MonthLabel devuelve la etiqueta del mes de t (en UTC: las fechas extraídas
// son fechas de calendario sin zona).
func MonthLabel(t time.Time) string {
	return t.UTC().Format(monthLabelLayout)
}

// MonthlyTrend agrupa por mes las facturas con invoice_date y las ordena
// cronológicamente ("Dec 2024" antes que "Jan 2025").
func MonthlyTrend(invoices []entity.Invoice) []MonthTrend {
	byMonth := make(map[string]*MonthTrend)
	for i := range invoices {
		inv := &invoices[i]
		if inv.InvoiceDate == nil {
			continue
		}
		label := MonthLabel(*inv.InvoiceDate)
		m, ok := byMonth[label]
		if !ok {
			m = &MonthTrend{Month: label}
			byMonth[label] = m
		}
		m.Count++
		m.TotalSpend = m.TotalSpend.Add(inv.InvoiceTotal)
	}

	out := make([]MonthTrend, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, MonthTrend{Month: m.Month, Count: m.Count, TotalSpend: Round2(m.TotalSpend)})
	}
	sort.Slice(out, func(i, j int) bool {
		return monthStart(out[i].Month).Before(monthStart(out[j].Month))
	})
	return out
}

// monthStart reconstruye el primer día del mes a partir de la etiqueta.
func monthStart(label string) time.Time {
	t, err := time.Parse(monthLabelLayout, label)
	if err != nil {
		return time.Time{}
	}
	return t
}
