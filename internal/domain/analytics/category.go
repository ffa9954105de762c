package analytics

import (
	"strings"

	"github.com/jhoicas/invoice-analytics/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Categorías de gasto derivadas de la cuenta contable (Sachkonto) de la línea.
const (
	CategoryServicesMarketing = "Services/Marketing"
	CategoryProductsGoods     = "Products/Goods"
	CategoryOperatingExpenses = "Operating Expenses"
	CategorySubscriptionFee   = "Subscription Fee"
	CategoryOtherOperations   = "Other Operations"
	CategoryUncategorized     = "Uncategorized"
)

// subscriptionAccount cuenta exacta de suscripciones; tiene prioridad sobre el prefijo "42".
const subscriptionAccount = "4925"

var categoryPrefixes = []struct {
	prefix   string
	category string
}{
	{"44", CategoryServicesMarketing},
	{"34", CategoryProductsGoods},
	{"42", CategoryOperatingExpenses},
}

var categoryOrder = [...]string{
	CategoryServicesMarketing,
	CategoryProductsGoods,
	CategoryOperatingExpenses,
	CategorySubscriptionFee,
	CategoryOtherOperations,
	CategoryUncategorized,
}

// CategoryForSachkonto clasifica una cuenta contable.
func CategoryForSachkonto(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return CategoryUncategorized
	}
	if code == subscriptionAccount {
		return CategorySubscriptionFee
	}
	for _, p := range categoryPrefixes {
		if strings.HasPrefix(code, p.prefix) {
			return p.category
		}
	}
	return CategoryOtherOperations
}

// CategorySpend gasto acumulado de una categoría.
type CategorySpend struct {
	Category string
	Value    decimal.Decimal
}

// SpendByCategory suma total_price por categoría. Las categorías con total
// redondeado <= 0 se omiten del resultado.
func SpendByCategory(items []repository.LineItemSpend) []CategorySpend {
	sums := make(map[string]decimal.Decimal, len(categoryOrder))
	for _, it := range items {
		cat := CategoryForSachkonto(it.Sachkonto)
		sums[cat] = sums[cat].Add(it.TotalPrice)
	}

	out := make([]CategorySpend, 0, len(sums))
	for _, cat := range categoryOrder {
		total, ok := sums[cat]
		if !ok {
			continue
		}
		value := Round2(total)
		if !value.IsPositive() {
			continue
		}
		out = append(out, CategorySpend{Category: cat, Value: value})
	}
	return out
}
