package analytics

import (
	"sort"

	"github.com/jhoicas/invoice-analytics/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TopVendorsLimit número de proveedores del ranking del dashboard.
const TopVendorsLimit = 10

// VendorRank proveedor con su gasto total y número de documentos.
type VendorRank struct {
	Vendor       string
	TotalSpend   decimal.Decimal
	InvoiceCount int
}

// RankVendors ordena por gasto total descendente (sin redondear) y devuelve
// como máximo limit proveedores. El orden entre empates no está definido.
func RankVendors(totals []repository.VendorSpendResult, limit int) []VendorRank {
	sorted := make([]repository.VendorSpendResult, len(totals))
	copy(sorted, totals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalSpend.GreaterThan(sorted[j].TotalSpend)
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]VendorRank, 0, len(sorted))
	for _, v := range sorted {
		out = append(out, VendorRank{
			Vendor:       v.VendorName,
			TotalSpend:   Round2(v.TotalSpend),
			InvoiceCount: v.InvoiceCount,
		})
	}
	return out
}
