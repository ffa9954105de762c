package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/invoice-analytics/internal/application/dto"
	"github.com/jhoicas/invoice-analytics/internal/domain"
	"github.com/jhoicas/invoice-analytics/internal/domain/entity"
	"github.com/jhoicas/invoice-analytics/internal/domain/repository"
)

const (
	invoiceListLimit  = 10
	invoiceDateLayout = "02.01.2006"
	missingDate       = "N/A"
)

var sortFields = map[string]bool{
	repository.SortInvoiceDate:   true,
	repository.SortInvoiceNumber: true,
	repository.SortInvoiceTotal:  true,
	repository.SortDueDate:       true,
	repository.SortVendorName:    true,
}

// InvoiceListUseCase listado de facturas del dashboard (sin notas de crédito).
type InvoiceListUseCase struct {
	analyticsRepo   repository.AnalyticsRepository
	defaultCurrency string
	now             func() time.Time
}

// NewInvoiceListUseCase construye el caso de uso. defaultCurrency se usa para
// las facturas sin símbolo de moneda ("" = €).
func NewInvoiceListUseCase(analyticsRepo repository.AnalyticsRepository, defaultCurrency string) *InvoiceListUseCase {
	return &InvoiceListUseCase{analyticsRepo: analyticsRepo, defaultCurrency: defaultCurrency, now: time.Now}
}

// WithClock sustituye el reloj (tests).
func (uc *InvoiceListUseCase) WithClock(now func() time.Time) *InvoiceListUseCase {
	uc.now = now
	return uc
}

// List devuelve como máximo 10 filas formateadas.
// domain.ErrInvalidInput si el campo de ordenación no está admitido.
func (uc *InvoiceListUseCase) List(ctx context.Context, req dto.InvoiceListRequest) ([]dto.InvoiceRowDTO, error) {
	filter, err := toFilter(req)
	if err != nil {
		return nil, err
	}
	rows, err := uc.analyticsRepo.ListInvoices(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("invoices: listar: %w", err)
	}

	now := uc.now()
	out := make([]dto.InvoiceRowDTO, 0, len(rows))
	for i := range rows {
		out = append(out, uc.toRow(&rows[i], now))
	}
	return out, nil
}

func toFilter(req dto.InvoiceListRequest) (repository.InvoiceListFilter, error) {
	field := strings.TrimSpace(req.Sort)
	if field == "" {
		field = repository.SortInvoiceDate
	}
	if !sortFields[field] {
		return repository.InvoiceListFilter{}, fmt.Errorf("%w: campo de ordenación %q", domain.ErrInvalidInput, req.Sort)
	}
	return repository.InvoiceListFilter{
		Search:              strings.TrimSpace(req.Search),
		SortField:           field,
		Ascending:           strings.EqualFold(req.Order, "asc"),
		ExcludeDocumentType: entity.DocumentTypeCreditNote,
		Limit:               invoiceListLimit,
	}, nil
}

func (uc *InvoiceListUseCase) toRow(row *repository.InvoiceListRow, now time.Time) dto.InvoiceRowDTO {
	inv := &row.Invoice
	date := missingDate
	if inv.InvoiceDate != nil {
		date = inv.InvoiceDate.UTC().Format(invoiceDateLayout)
	}
	status := dto.InvoiceStatusDue
	if inv.IsOverdue(now) {
		status = dto.InvoiceStatusOverdue
	}
	return dto.InvoiceRowDTO{
		VendorName:    row.VendorName,
		InvoiceDate:   date,
		InvoiceNumber: inv.InvoiceNumber,
		NetValue:      fmt.Sprintf("%s %s", inv.Currency(uc.defaultCurrency), inv.InvoiceTotal.StringFixed(2)),
		Status:        status,
	}
}
