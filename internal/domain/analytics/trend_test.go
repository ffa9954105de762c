package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-analytics/internal/domain/analytics"
	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
)

func dated(y int, m time.Month, d int, total string) entity.Invoice {
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return entity.Invoice{InvoiceDate: &date, InvoiceTotal: dec(total)}
}

func TestMonthlyTrend_OrdenCronologicoEntreAnios(t *testing.T) {
	got := analytics.MonthlyTrend([]entity.Invoice{
		dated(2026, time.January, 3, "5"),
		dated(2025, time.February, 10, "20"),
		dated(2025, time.January, 31, "10.005"),
		dated(2024, time.December, 24, "1"),
		dated(2025, time.January, 1, "10"),
		{InvoiceTotal: dec("999")}, // sin fecha: no cuenta
	})

	require.Len(t, got, 4)
	months := []string{got[0].Month, got[1].Month, got[2].Month, got[3].Month}
	assert.Equal(t, []string{"Dec 2024", "Jan 2025", "Feb 2025", "Jan 2026"}, months)

	assert.Equal(t, 2, got[1].Count)
	assert.Equal(t, "20.01", got[1].TotalSpend.StringFixed(2))
	assert.Equal(t, 1, got[3].Count)
}

func TestMonthlyTrend_Vacio(t *testing.T) {
	assert.Empty(t, analytics.MonthlyTrend(nil))
}

func TestMonthLabel_UTC(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)
	// 1 de febrero 00:30 en Berlín sigue siendo enero en UTC.
	assert.Equal(t, "Jan 2025", analytics.MonthLabel(time.Date(2025, time.February, 1, 0, 30, 0, 0, berlin)))
}
