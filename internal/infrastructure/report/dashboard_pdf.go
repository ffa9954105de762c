// Package report genera las exportaciones descargables del dashboard: el
// informe PDF con las cinco métricas y el listado de facturas en Excel.
//
// Layout del PDF (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: gasto YTD | facturas | último mes | media          │
//	│  CASH OUTFLOW: tramo | importe                               │
//	│  CATEGORÍAS: categoría | importe                             │
//	│  TENDENCIA: mes | facturas | gasto                           │
//	│  TOP PROVEEDORES: proveedor | facturas | gasto               │
//	└─────────────────────────────────────────────────────────────┘
package report

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-analytics/internal/application/analytics"
	"github.com/jhoicas/invoice-analytics/internal/application/dto"
)

var _ analytics.DashboardPDFGenerator = (*DashboardPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// DashboardPDFGenerator implementa analytics.DashboardPDFGenerator usando Maroto v2.
type DashboardPDFGenerator struct {
	currency string
}

// NewDashboardPDFGenerator construye el generador; currency se antepone a los importes.
func NewDashboardPDFGenerator(currency string) *DashboardPDFGenerator {
	return &DashboardPDFGenerator{currency: currency}
}

// Generate genera el PDF y devuelve sus bytes.
func (g *DashboardPDFGenerator) Generate(report *dto.DashboardReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice Analytics Dashboard", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report.GeneratedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.overviewRow(report.Overview))

	cash := make([][]string, 0, len(report.CashOutflow))
	for _, b := range report.CashOutflow {
		cash = append(cash, []string{b.Label, g.money(b.Amount)})
	}
	m.AddRows(section("Cash outflow", []string{"Vencimiento", "Importe"}, cash)...)

	categories := make([][]string, 0, len(report.Categories))
	for _, c := range report.Categories {
		categories = append(categories, []string{c.Category, g.money(c.Value)})
	}
	m.AddRows(section("Gasto por categoría", []string{"Categoría", "Importe"}, categories)...)

	trend := make([][]string, 0, len(report.Trend))
	for _, t := range report.Trend {
		trend = append(trend, []string{t.Month, strconv.Itoa(t.Count), g.money(t.TotalSpend)})
	}
	m.AddRows(section("Tendencia mensual", []string{"Mes", "Facturas", "Gasto"}, trend)...)

	vendors := make([][]string, 0, len(report.TopVendors))
	for _, v := range report.TopVendors {
		vendors = append(vendors, []string{v.Vendor, strconv.Itoa(v.InvoiceCount), g.money(v.TotalSpend)})
	}
	m.AddRows(section("Top 10 proveedores", []string{"Proveedor", "Facturas", "Gasto"}, vendors)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generatedAt string) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("INVOICE ANALYTICS", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt, props.Text{
				Size: 8, Align: align.Right, Top: 6, Color: colorGray,
			}),
		),
	)
}

// overviewRow: cuatro tarjetas con las cifras del resumen.
func (g *DashboardPDFGenerator) overviewRow(o dto.OverviewStatsDTO) core.Row {
	card := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 2, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 7, Align: align.Center}),
		)
	}
	return row.New(16).Add(
		card("Gasto YTD", g.money(o.TotalSpend)),
		card("Facturas procesadas", strconv.Itoa(o.TotalInvoicesProcessed)),
		card("Último mes", strconv.Itoa(o.DocumentsUploaded)),
		card("Valor medio", g.money(o.AverageInvoiceValue)),
	)
}

// section: título + cabecera + una fila por registro. La primera columna
// ocupa el espacio sobrante; el resto se reparte a partes iguales.
func section(title string, headers []string, records [][]string) []core.Row {
	rows := []core.Row{
		row.New(4),
		row.New(7).Add(col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1}),
		)),
		tableRow(headers, true),
		line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}),
	}
	if len(records) == 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Sin datos", props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
		return rows
	}
	for _, r := range records {
		rows = append(rows, tableRow(r, false))
	}
	return rows
}

func tableRow(cells []string, header bool) core.Row {
	rest := 0
	if len(cells) > 1 {
		rest = 6 / (len(cells) - 1)
	}
	first := 12 - rest*(len(cells)-1)

	style := fontstyle.Normal
	if header {
		style = fontstyle.Bold
	}
	cols := make([]core.Col, 0, len(cells))
	for i, c := range cells {
		size, a := rest, align.Right
		if i == 0 {
			size, a = first, align.Left
		}
		cols = append(cols, col.New(size).Add(
			text.New(c, props.Text{Style: style, Size: 8, Align: a, Top: 1, Left: 1, Right: 1}),
		))
	}
	return row.New(6).Add(cols...)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (g *DashboardPDFGenerator) money(d decimal.Decimal) string {
	return g.currency + " " + formatMoney(d.StringFixed(2))
}

// formatMoney inserta puntos de miles y coma decimal en un importe con dos decimales.
// Ej: "1234567.50" → "1.234.567,50", "-25000.00" → "-25.000,00"
func formatMoney(s string) string {
	sign := ""
	if len(s) > 0 && s[0] == '-' {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	for i := range s {
		if s[i] == '.' {
			intPart, frac = s[:i], s[i+1:]
			break
		}
	}
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+len(frac)+1)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	if frac != "" {
		buf = append(buf, ',')
		buf = append(buf, frac...)
	}
	return sign + string(buf)
}
