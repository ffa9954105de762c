package dto

import "github.com/shopspring/decimal"

// OverviewStatsDTO respuesta de GET /api/stats.
type OverviewStatsDTO struct {
	TotalSpend             decimal.Decimal `json:"totalSpend"`             // gasto YTD
	TotalInvoicesProcessed int             `json:"totalInvoicesProcessed"` // todas las facturas
	DocumentsUploaded      int             `json:"documentsUploaded"`      // último mes natural
	AverageInvoiceValue    decimal.Decimal `json:"averageInvoiceValue"`
}

// CashOutflowDTO tramo de GET /api/cash-outflow.
type CashOutflowDTO struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// CategorySpendDTO elemento de GET /api/category-spend.
type CategorySpendDTO struct {
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
}

// InvoiceTrendDTO elemento de GET /api/invoice-trends.
type InvoiceTrendDTO struct {
	Month      string          `json:"month"` // ej. "Jan 2025"
	Count      int             `json:"count"`
	TotalSpend decimal.Decimal `json:"totalSpend"`
}

// TopVendorDTO elemento de GET /api/vendors/top10.
type TopVendorDTO struct {
	Vendor       string          `json:"vendor"`
	TotalSpend   decimal.Decimal `json:"totalSpend"`
	InvoiceCount int             `json:"invoiceCount"`
}

// DashboardReportDTO agrupa las cinco métricas (informe PDF).
type DashboardReportDTO struct {
	GeneratedAt string             `json:"generatedAt"`
	Overview    OverviewStatsDTO   `json:"overview"`
	CashOutflow []CashOutflowDTO   `json:"cashOutflow"`
	Categories  []CategorySpendDTO `json:"categories"`
	Trend       []InvoiceTrendDTO  `json:"trend"`
	TopVendors  []TopVendorDTO     `json:"topVendors"`
}
