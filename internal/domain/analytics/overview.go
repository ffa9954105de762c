package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// OverviewWindow límites temporales de las tarjetas del resumen, calculados en el momento de la consulta.
type OverviewWindow struct {
	YearStart time.Time // 1 de enero del año de now (YTD)
	MonthAgo  time.Time // now menos un mes natural
}

// NewOverviewWindow calcula los límites para now. MonthAgo usa aritmética de
// meses (31 de marzo - 1 mes se normaliza al 3 de marzo, igual que Date.setMonth).
func NewOverviewWindow(now time.Time) OverviewWindow {
	return OverviewWindow{
		YearStart: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
		MonthAgo:  now.AddDate(0, -1, 0),
	}
}

// OverviewStats cifras independientes del resumen.
type OverviewStats struct {
	TotalSpend             decimal.Decimal
	TotalInvoicesProcessed int
	DocumentsUploaded      int
	AverageInvoiceValue    decimal.Decimal
}

// Rounded devuelve una copia con los importes redondeados para presentación.
func (s OverviewStats) Rounded() OverviewStats {
	s.TotalSpend = Round2(s.TotalSpend)
	s.AverageInvoiceValue = Round2(s.AverageInvoiceValue)
	return s
}
