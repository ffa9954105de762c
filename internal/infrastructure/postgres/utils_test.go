package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-analytics/internal/domain"
	"github.com/jhoicas/invoice-analytics/internal/domain/repository"
)

func TestLikePattern_EscapaComodines(t *testing.T) {
	assert.Equal(t, "%telekom%", likePattern("telekom"))
	assert.Equal(t, `%50\%\_off\\x%`, likePattern(`50%_off\x`))
	assert.Equal(t, "%%", likePattern(""))
}

func TestWrapWriteError(t *testing.T) {
	unique := fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505", Message: "duplicate key"})
	fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key"}
	other := errors.New("conexión cerrada")

	assert.ErrorIs(t, wrapWriteError("insert vendor", unique), domain.ErrDuplicate)
	assert.ErrorIs(t, wrapWriteError("insert invoice", fk), domain.ErrNotFound)

	err := wrapWriteError("insert invoice", other)
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "insert invoice")
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	if got := nullIfEmpty("EUR"); assert.NotNil(t, got) {
		assert.Equal(t, "EUR", *got)
	}
}

func TestSortColumns_CubreTodosLosCampos(t *testing.T) {
	for _, field := range []string{
		repository.SortInvoiceDate,
		repository.SortInvoiceNumber,
		repository.SortInvoiceTotal,
		repository.SortDueDate,
		repository.SortVendorName,
	} {
		assert.NotEmpty(t, sortColumns[field], field)
	}
	assert.Len(t, sortColumns, 5)
}
