package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/invoice-analytics/internal/application/analytics"
	"github.com/jhoicas/invoice-analytics/internal/application/dto"
	"github.com/jhoicas/invoice-analytics/internal/application/ingestion"
	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
	"github.com/jhoicas/invoice-analytics/internal/domain/repository"
	"github.com/jhoicas/invoice-analytics/internal/infrastructure/memory"
	"github.com/jhoicas/invoice-analytics/internal/infrastructure/report"
	apphttp "github.com/jhoicas/invoice-analytics/internal/interfaces/http"
	"github.com/jhoicas/invoice-analytics/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return testNow }

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// seededStore Telekom con una factura vencida y Amazon con una factura y una nota de crédito.
func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, s.Vendors().Create(ctx, &entity.Vendor{ID: "v1", Name: "Telekom"}))
	require.NoError(t, s.Vendors().Create(ctx, &entity.Vendor{ID: "v2", Name: "Amazon"}))

	invoices := []entity.Invoice{
		{ID: "i1", VendorID: "v1", InvoiceNumber: "TK-1", DocumentType: entity.DocumentTypeInvoice,
			InvoiceTotal: decimal.RequireFromString("150.505"), InvoiceDate: day(2024, 12, 20), DueDate: day(2025, 6, 1)},
		{ID: "i2", VendorID: "v2", InvoiceNumber: "AMZ-1", DocumentType: entity.DocumentTypeInvoice, CurrencySymbol: "$",
			InvoiceTotal: decimal.NewFromInt(300), InvoiceDate: day(2025, 6, 10), DueDate: day(2025, 9, 1)},
		{ID: "i3", VendorID: "v2", InvoiceNumber: "AMZ-CN", DocumentType: entity.DocumentTypeCreditNote,
			InvoiceTotal: decimal.NewFromInt(-50), InvoiceDate: day(2025, 6, 11)},
	}
	for i := range invoices {
		require.NoError(t, s.Invoices().Create(ctx, &invoices[i]))
	}
	return s
}

// stubSource devuelve items fijos; si release no es nil espera a que se cierre.
type stubSource struct {
	items   []ingestion.RawItem
	started chan struct{}
	release chan struct{}
}

func (s *stubSource) Load(ctx context.Context, _ string) ([]ingestion.RawItem, error) {
	if s.started != nil {
		close(s.started)
	}
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.items, nil
}

// brokenTrends falla solo en la consulta de la evolución mensual.
type brokenTrends struct {
	*memory.Store
}

func (brokenTrends) ListDatedInvoices(context.Context) ([]entity.Invoice, error) {
	return nil, errors.New("conexión perdida")
}

type appOptions struct {
	repo     repository.AnalyticsRepository
	source   ingestion.Source
	location string
}

func buildTestApp(t *testing.T, store *memory.Store, opts appOptions) *fiber.App {
	t.Helper()
	repo := opts.repo
	if repo == nil {
		repo = store
	}
	src := opts.source
	if src == nil {
		src = &stubSource{}
	}

	dashboard := appanalytics.NewDashboardUseCase(repo).WithClock(clock)
	list := appanalytics.NewInvoiceListUseCase(repo, entity.DefaultCurrencySymbol).WithClock(clock)
	reports := appanalytics.NewReportUseCase(dashboard, list,
		report.NewDashboardPDFGenerator(entity.DefaultCurrencySymbol), report.NewInvoiceSheetWriter())
	pipeline := ingestion.NewPipeline(store, store.Vendors(), logger.Nop(), 1)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ServiceName: "invoice-analytics-test",
		DashboardUC: dashboard,
		InvoiceList: list,
		ReportUC:    reports,
		ReloadUC:    ingestion.NewReloadUseCase(src, pipeline, opts.location),
		Log:         logger.Nop(),
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, target string) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func rawItem(t *testing.T, doc string) ingestion.RawItem {
	t.Helper()
	dec := json.NewDecoder(bytes.NewBufferString(doc))
	dec.UseNumber()
	var m map[string]any
	require.NoError(t, dec.Decode(&m))
	return ingestion.RawItemFromMap(m)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app := buildTestApp(t, memory.NewStore(), appOptions{})
	resp, body := do(t, app, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","service":"invoice-analytics-test"}`, string(body))
}

func TestCashOutflow(t *testing.T) {
	app := buildTestApp(t, seededStore(t), appOptions{})
	resp, body := do(t, app, http.MethodGet, "/api/cash-outflow")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var buckets []struct {
		Label  string      `json:"label"`
		Amount json.Number `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(body, &buckets))
	require.Len(t, buckets, 5)

	labels := make([]string, 0, len(buckets))
	got := map[string]string{}
	for _, b := range buckets {
		labels = append(labels, b.Label)
		got[b.Label] = b.Amount.String()
	}
	assert.Equal(t, []string{"Overdue", "0 - 7 days", "8 - 30 days", "31 - 60 days", "60+ days"}, labels)
	assert.Equal(t, "150.51", got["Overdue"])
	assert.Equal(t, "300", got["60+ days"])
	assert.Equal(t, "0", got["0 - 7 days"])
}

func TestTopVendors(t *testing.T) {
	app := buildTestApp(t, seededStore(t), appOptions{})
	resp, body := do(t, app, http.MethodGet, "/api/vendors/top10")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[
		{"vendor":"Amazon","totalSpend":250,"invoiceCount":2},
		{"vendor":"Telekom","totalSpend":150.51,"invoiceCount":1}
	]`, string(body))
}

func TestStats(t *testing.T) {
	app := buildTestApp(t, seededStore(t), appOptions{})
	resp, body := do(t, app, http.MethodGet, "/api/stats")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats struct {
		TotalSpend             json.Number `json:"totalSpend"`
		TotalInvoicesProcessed int         `json:"totalInvoicesProcessed"`
		DocumentsUploaded      int         `json:"documentsUploaded"`
	}
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, "250", stats.TotalSpend.String())
	assert.Equal(t, 3, stats.TotalInvoicesProcessed)
	assert.Equal(t, 2, stats.DocumentsUploaded)
}

func TestInvoices_ListadoYFiltros(t *testing.T) {
	app := buildTestApp(t, seededStore(t), appOptions{})

	resp, body := do(t, app, http.MethodGet, "/api/invoices")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[
		{"vendorName":"Amazon","invoiceDate":"10.06.2025","invoiceNumber":"AMZ-1","netValue":"$ 300.00","status":"Due"},
		{"vendorName":"Telekom","invoiceDate":"20.12.2024","invoiceNumber":"TK-1","netValue":"€ 150.51","status":"Overdue"}
	]`, string(body))

	resp, body = do(t, app, http.MethodGet, "/api/invoices?search=TELE&sort=invoice_total&order=asc")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rows []dto.InvoiceRowDTO
	require.NoError(t, json.Unmarshal(body, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "TK-1", rows[0].InvoiceNumber)

	resp, body = do(t, app, http.MethodGet, "/api/invoices?sort=drop_table")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "BAD_REQUEST", errResp.Code)
}

func TestInvoices_ExportXLSX(t *testing.T) {
	app := buildTestApp(t, seededStore(t), appOptions{})
	resp, body := do(t, app, http.MethodGet, "/api/invoices/export.xlsx")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "spreadsheetml")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "invoices_20250615.xlsx")
	assert.True(t, bytes.HasPrefix(body, []byte("PK")))
}

func TestDashboardPDF(t *testing.T) {
	app := buildTestApp(t, seededStore(t), appOptions{})
	resp, body := do(t, app, http.MethodGet, "/api/reports/dashboard.pdf")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "dashboard_20250615.pdf")
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestMetricaFallidaNoAfectaALasDemas(t *testing.T) {
	store := seededStore(t)
	app := buildTestApp(t, store, appOptions{repo: brokenTrends{store}})

	resp, body := do(t, app, http.MethodGet, "/api/invoice-trends")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "INTERNAL", errResp.Code)

	for _, path := range []string{"/api/stats", "/api/cash-outflow", "/api/category-spend", "/api/vendors/top10"} {
		resp, _ := do(t, app, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestAdminReload(t *testing.T) {
	store := seededStore(t)
	src := &stubSource{items: []ingestion.RawItem{
		rawItem(t, `{"_id": "d1", "extractedData": {"llmData": {
			"vendor": {"value": {"vendorName": {"value": "ACME"}}},
			"invoice": {"value": {"invoiceId": {"value": "A-1"}}},
			"summary": {"value": {"invoiceTotal": {"value": 99.5}}}}}}`),
		rawItem(t, `{"_id": "d2", "extractedData": {}}`),
	}}
	app := buildTestApp(t, store, appOptions{source: src, location: "fixtures/extract.json"})

	resp, body := do(t, app, http.MethodPost, "/api/admin/reload")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var res dto.IngestionResult
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 1, res.Processed)
	assert.Equal(t, 1, res.Rejected)

	// La recarga sustituye los datos anteriores.
	count, err := store.CountInvoices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAdminReload_SinFuente(t *testing.T) {
	app := buildTestApp(t, memory.NewStore(), appOptions{})
	resp, _ := do(t, app, http.MethodPost, "/api/admin/reload")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdminReload_Concurrente(t *testing.T) {
	src := &stubSource{started: make(chan struct{}), release: make(chan struct{})}
	app := buildTestApp(t, memory.NewStore(), appOptions{source: src, location: "gs://facturas/extract.json"})

	first := make(chan int, 1)
	go func() {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/admin/reload", nil), -1)
		if err != nil {
			first <- 0
			return
		}
		resp.Body.Close()
		first <- resp.StatusCode
	}()
	<-src.started

	resp, body := do(t, app, http.MethodPost, "/api/admin/reload")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "RELOAD_IN_PROGRESS", errResp.Code)

	close(src.release)
	assert.Equal(t, http.StatusOK, <-first)
}
