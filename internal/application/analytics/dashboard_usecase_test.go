package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-analytics/internal/application/analytics"
	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
	"github.com/jhoicas/invoice-analytics/internal/domain/repository"
	"github.com/jhoicas/invoice-analytics/internal/infrastructure/memory"
)

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return testNow }

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// seededStore dos proveedores, cuatro documentos (uno es nota de crédito) y tres líneas.
func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, s.Vendors().Create(ctx, &entity.Vendor{ID: "v1", Name: "Telekom"}))
	require.NoError(t, s.Vendors().Create(ctx, &entity.Vendor{ID: "v2", Name: "Amazon"}))
	require.NoError(t, s.Vendors().Create(ctx, &entity.Vendor{ID: "v3", Name: "Sin facturas"}))

	invoices := []entity.Invoice{
		{ID: "i1", VendorID: "v1", InvoiceNumber: "TK-1", DocumentType: "invoice", InvoiceTotal: decimal.RequireFromString("150.505"),
			InvoiceDate: day(2024, 12, 20), DueDate: day(2025, 6, 1)},
		{ID: "i2", VendorID: "v1", InvoiceNumber: "TK-2", DocumentType: "invoice", InvoiceTotal: decimal.NewFromInt(100),
			InvoiceDate: day(2025, 6, 1), DueDate: day(2025, 6, 15)},
		{ID: "i3", VendorID: "v2", InvoiceNumber: "AMZ-1", DocumentType: "invoice", InvoiceTotal: decimal.NewFromInt(300),
			InvoiceDate: day(2025, 1, 5), DueDate: day(2025, 9, 1), CurrencySymbol: "$"},
		{ID: "i4", VendorID: "v2", InvoiceNumber: "AMZ-CN", DocumentType: entity.DocumentTypeCreditNote, InvoiceTotal: decimal.NewFromInt(-50),
			InvoiceDate: day(2025, 6, 2), DueDate: day(2025, 6, 20)},
	}
	for i := range invoices {
		require.NoError(t, s.Invoices().Create(ctx, &invoices[i]))
	}
	require.NoError(t, s.LineItems().CreateMany(ctx, []*entity.LineItem{
		{ID: "l1", InvoiceID: "i1", SrNo: 1, Sachkonto: "4925", TotalPrice: decimal.NewFromInt(80)},
		{ID: "l2", InvoiceID: "i1", SrNo: 2, Sachkonto: "4210", TotalPrice: decimal.RequireFromString("70.505")},
		{ID: "l3", InvoiceID: "i3", SrNo: 1, TotalPrice: decimal.NewFromInt(300)},
	}))
	return s
}

func newDashboard(repo repository.AnalyticsRepository) *analytics.DashboardUseCase {
	return analytics.NewDashboardUseCase(repo).WithClock(clock)
}

func TestGetCashOutflow(t *testing.T) {
	out, err := newDashboard(seededStore(t)).GetCashOutflow(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 5)

	got := map[string]string{}
	for _, b := range out {
		got[b.Label] = b.Amount.StringFixed(2)
	}
	assert.Equal(t, "150.51", got["Overdue"])
	assert.Equal(t, "100.00", got["0 - 7 days"])
	assert.Equal(t, "0.00", got["8 - 30 days"])
	assert.Equal(t, "0.00", got["31 - 60 days"])
	assert.Equal(t, "300.00", got["60+ days"])
}

func TestGetCategorySpend(t *testing.T) {
	out, err := newDashboard(seededStore(t)).GetCategorySpend(context.Background())
	require.NoError(t, err)

	got := map[string]string{}
	for _, c := range out {
		got[c.Category] = c.Value.StringFixed(2)
	}
	assert.Equal(t, map[string]string{
		"Subscription Fee":   "80.00",
		"Operating Expenses": "70.51",
		"Uncategorized":      "300.00",
	}, got)
}

func TestGetInvoiceTrends_CruzaAnio(t *testing.T) {
	out, err := newDashboard(seededStore(t)).GetInvoiceTrends(context.Background())
	require.NoError(t, err)

	months := make([]string, 0, len(out))
	for _, m := range out {
		months = append(months, m.Month)
	}
	assert.Equal(t, []string{"Dec 2024", "Jan 2025", "Jun 2025"}, months)
	assert.Equal(t, 2, out[2].Count)
	assert.Equal(t, "50.00", out[2].TotalSpend.StringFixed(2))
}

func TestGetTopVendors(t *testing.T) {
	out, err := newDashboard(seededStore(t)).GetTopVendors(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "Telekom", out[0].Vendor)
	assert.Equal(t, "250.51", out[0].TotalSpend.StringFixed(2))
	assert.Equal(t, "Amazon", out[1].Vendor)
	assert.Equal(t, "250.00", out[1].TotalSpend.StringFixed(2))
	assert.Equal(t, 2, out[1].InvoiceCount)
	assert.Equal(t, "Sin facturas", out[2].Vendor)
	assert.Zero(t, out[2].InvoiceCount)
}

func TestGetOverview(t *testing.T) {
	out, err := newDashboard(seededStore(t)).GetOverview(context.Background())
	require.NoError(t, err)

	// YTD 2025: 100 + 300 - 50; el último mes empieza el 15 de mayo.
	assert.Equal(t, "350.00", out.TotalSpend.StringFixed(2))
	assert.Equal(t, 4, out.TotalInvoicesProcessed)
	assert.Equal(t, 2, out.DocumentsUploaded)
	assert.Equal(t, "125.13", out.AverageInvoiceValue.StringFixed(2))
}

func TestGetOverview_AlmacenVacio(t *testing.T) {
	out, err := newDashboard(memory.NewStore()).GetOverview(context.Background())
	require.NoError(t, err)
	assert.True(t, out.TotalSpend.IsZero())
	assert.Zero(t, out.TotalInvoicesProcessed)
	assert.True(t, out.AverageInvoiceValue.IsZero())
}

// brokenRepo falla en las consultas indicadas y delega el resto.
type brokenRepo struct {
	repository.AnalyticsRepository
	failCount bool
}

var errDB = errors.New("conexión rechazada")

func (b *brokenRepo) CountInvoices(ctx context.Context) (int, error) {
	if b.failCount {
		return 0, errDB
	}
	return b.AnalyticsRepository.CountInvoices(ctx)
}

func (b *brokenRepo) ListDueInvoices(context.Context, string) ([]entity.Invoice, error) {
	return nil, errDB
}

func TestMetricasIndependientes(t *testing.T) {
	uc := newDashboard(&brokenRepo{AnalyticsRepository: seededStore(t), failCount: true})
	ctx := context.Background()

	_, err := uc.GetCashOutflow(ctx)
	assert.ErrorIs(t, err, errDB)
	_, err = uc.GetOverview(ctx)
	assert.ErrorIs(t, err, errDB)

	trend, err := uc.GetInvoiceTrends(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, trend)
	_, err = uc.GetTopVendors(ctx)
	assert.NoError(t, err)
}

func TestGetReport(t *testing.T) {
	report, err := newDashboard(seededStore(t)).GetReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "15.06.2025 12:00", report.GeneratedAt)
	assert.Len(t, report.CashOutflow, 5)
	assert.Len(t, report.Categories, 3)
	assert.Len(t, report.Trend, 3)
	assert.Len(t, report.TopVendors, 3)
	assert.Equal(t, 4, report.Overview.TotalInvoicesProcessed)

	_, err = newDashboard(&brokenRepo{AnalyticsRepository: seededStore(t)}).GetReport(context.Background())
	assert.ErrorIs(t, err, errDB)
}
