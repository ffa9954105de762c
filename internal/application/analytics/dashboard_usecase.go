// Package analytics contiene los casos de uso del dashboard de análisis de
// facturas: cada métrica consulta el almacén por separado y delega el cálculo
// en internal/domain/analytics.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/invoice-analytics/internal/application/dto"
	"github.com/jhoicas/invoice-analytics/internal/domain/analytics"
	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
	"github.com/jhoicas/invoice-analytics/internal/domain/repository"
)

// DashboardUseCase calcula las métricas del dashboard.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). Cada método es
// independiente: el fallo de una métrica no afecta a las demás.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// WithClock sustituye el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetCashOutflow previsión de pagos por tramo de vencimiento (siempre 5 tramos).
func (uc *DashboardUseCase) GetCashOutflow(ctx context.Context) ([]dto.CashOutflowDTO, error) {
	invoices, err := uc.analyticsRepo.ListDueInvoices(ctx, entity.DocumentTypeInvoice)
	if err != nil {
		return nil, fmt.Errorf("dashboard: cash outflow: %w", err)
	}
	buckets := analytics.BucketCashOutflow(invoices, uc.now())

	out := make([]dto.CashOutflowDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.CashOutflowDTO{Label: b.Label, Amount: b.Amount})
	}
	return out, nil
}

// GetCategorySpend gasto por categoría contable (solo valores positivos).
func (uc *DashboardUseCase) GetCategorySpend(ctx context.Context) ([]dto.CategorySpendDTO, error) {
	items, err := uc.analyticsRepo.ListLineItemSpend(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: category spend: %w", err)
	}
	spend := analytics.SpendByCategory(items)

	out := make([]dto.CategorySpendDTO, 0, len(spend))
	for _, c := range spend {
		out = append(out, dto.CategorySpendDTO{Category: c.Category, Value: c.Value})
	}
	return out, nil
}

// GetInvoiceTrends volumen y gasto mensual en orden cronológico.
func (uc *DashboardUseCase) GetInvoiceTrends(ctx context.Context) ([]dto.InvoiceTrendDTO, error) {
	invoices, err := uc.analyticsRepo.ListDatedInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: invoice trends: %w", err)
	}
	trend := analytics.MonthlyTrend(invoices)

	out := make([]dto.InvoiceTrendDTO, 0, len(trend))
	for _, m := range trend {
		out = append(out, dto.InvoiceTrendDTO{Month: m.Month, Count: m.Count, TotalSpend: m.TotalSpend})
	}
	return out, nil
}

// GetTopVendors los 10 proveedores con mayor gasto total.
func (uc *DashboardUseCase) GetTopVendors(ctx context.Context) ([]dto.TopVendorDTO, error) {
	totals, err := uc.analyticsRepo.VendorSpendTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: top vendors: %w", err)
	}
	ranked := analytics.RankVendors(totals, analytics.TopVendorsLimit)

	out := make([]dto.TopVendorDTO, 0, len(ranked))
	for _, v := range ranked {
		out = append(out, dto.TopVendorDTO{Vendor: v.Vendor, TotalSpend: v.TotalSpend, InvoiceCount: v.InvoiceCount})
	}
	return out, nil
}

// GetOverview construye las tarjetas del resumen.
//
// Cuatro consultas en paralelo:
//  1. SumInvoiceTotalSince(1 de enero) → TotalSpend
//  2. CountInvoices                    → TotalInvoicesProcessed
//  3. CountInvoicesSince(hace un mes)  → DocumentsUploaded
//  4. AverageInvoiceTotal              → AverageInvoiceValue
func (uc *DashboardUseCase) GetOverview(ctx context.Context) (*dto.OverviewStatsDTO, error) {
	window := analytics.NewOverviewWindow(uc.now())

	var (
		stats   analytics.OverviewStats
		spend   decimal.Decimal
		average decimal.Decimal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if spend, err = uc.analyticsRepo.SumInvoiceTotalSince(gctx, window.YearStart); err != nil {
			return fmt.Errorf("gasto YTD: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if stats.TotalInvoicesProcessed, err = uc.analyticsRepo.CountInvoices(gctx); err != nil {
			return fmt.Errorf("total de facturas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if stats.DocumentsUploaded, err = uc.analyticsRepo.CountInvoicesSince(gctx, window.MonthAgo); err != nil {
			return fmt.Errorf("documentos del último mes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if average, err = uc.analyticsRepo.AverageInvoiceTotal(gctx); err != nil {
			return fmt.Errorf("valor medio: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard: overview: %w", err)
	}

	stats.TotalSpend = spend
	stats.AverageInvoiceValue = average
	stats = stats.Rounded()
	return &dto.OverviewStatsDTO{
		TotalSpend:             stats.TotalSpend,
		TotalInvoicesProcessed: stats.TotalInvoicesProcessed,
		DocumentsUploaded:      stats.DocumentsUploaded,
		AverageInvoiceValue:    stats.AverageInvoiceValue,
	}, nil
}

// GetReport reúne las cinco métricas para el informe descargable.
// A diferencia de los endpoints individuales, falla si falla cualquiera.
func (uc *DashboardUseCase) GetReport(ctx context.Context) (*dto.DashboardReportDTO, error) {
	report := &dto.DashboardReportDTO{GeneratedAt: uc.now().Format("02.01.2006 15:04")}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		overview, err := uc.GetOverview(gctx)
		if err == nil {
			report.Overview = *overview
		}
		return err
	})
	g.Go(func() (err error) {
		report.CashOutflow, err = uc.GetCashOutflow(gctx)
		return err
	})
	g.Go(func() (err error) {
		report.Categories, err = uc.GetCategorySpend(gctx)
		return err
	})
	g.Go(func() (err error) {
		report.Trend, err = uc.GetInvoiceTrends(gctx)
		return err
	})
	g.Go(func() (err error) {
		report.TopVendors, err = uc.GetTopVendors(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}
