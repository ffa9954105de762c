package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-analytics/internal/domain/analytics"
	"github.com/jhoicas/invoice-analytics/internal/domain/repository"
)

func TestCategoryForSachkonto(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"4400", "Services/Marketing"},
		{"44", "Services/Marketing"},
		{"3400", "Products/Goods"},
		{"4200", "Operating Expenses"},
		{"4925", "Subscription Fee"},
		{"4929", "Other Operations"},
		{"4210", "Operating Expenses"},
		{"1000", "Other Operations"},
		{"  ", "Uncategorized"},
		{"", "Uncategorized"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.want, analytics.CategoryForSachkonto(tc.code))
		})
	}
}

// "4925" también empieza por "42"; la coincidencia exacta debe ganar.
func TestCategoryForSachkonto_4925GanaAlPrefijo42(t *testing.T) {
	assert.Equal(t, analytics.CategorySubscriptionFee, analytics.CategoryForSachkonto("4925"))
	assert.Equal(t, analytics.CategoryOperatingExpenses, analytics.CategoryForSachkonto("4250"))
}

func spend(code, total string) repository.LineItemSpend {
	return repository.LineItemSpend{Sachkonto: code, TotalPrice: dec(total)}
}

func TestSpendByCategory_AgrupaYRedondea(t *testing.T) {
	got := analytics.SpendByCategory([]repository.LineItemSpend{
		spend("4400", "100.10"),
		spend("4410", "50.005"),
		spend("3400", "20"),
		spend("4925", "9.99"),
		spend("", "5"),
		spend("9999", "1"),
	})

	values := make(map[string]string, len(got))
	order := make([]string, 0, len(got))
	for _, c := range got {
		values[c.Category] = c.Value.StringFixed(2)
		order = append(order, c.Category)
	}

	assert.Equal(t, []string{
		"Services/Marketing", "Products/Goods", "Subscription Fee", "Other Operations", "Uncategorized",
	}, order)
	assert.Equal(t, "150.11", values["Services/Marketing"])
	assert.Equal(t, "20.00", values["Products/Goods"])
	assert.Equal(t, "9.99", values["Subscription Fee"])
	assert.Equal(t, "1.00", values["Other Operations"])
	assert.Equal(t, "5.00", values["Uncategorized"])
}

func TestSpendByCategory_OmiteNoPositivos(t *testing.T) {
	got := analytics.SpendByCategory([]repository.LineItemSpend{
		spend("4200", "10"),
		spend("4200", "-10"),
		spend("3400", "-3"),
		spend("4400", "0.004"),
		spend("", "7"),
	})

	assert.Len(t, got, 1)
	assert.Equal(t, "Uncategorized", got[0].Category)
	for _, c := range got {
		assert.True(t, c.Value.IsPositive())
	}
}

func TestSpendByCategory_SumaIgualAlTotalConCodigos(t *testing.T) {
	items := []repository.LineItemSpend{
		spend("4400", "12.5"), spend("3400", "7.25"), spend("4200", "3"),
		spend("4925", "40"), spend("1234", "0.75"),
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalPrice)
	}

	sum := decimal.Zero
	for _, c := range analytics.SpendByCategory(items) {
		sum = sum.Add(c.Value)
	}
	assert.True(t, total.Equal(sum), "total=%s sum=%s", total, sum)
}
