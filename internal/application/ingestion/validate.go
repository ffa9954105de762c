package ingestion

import (
	"github.com/jhoicas/invoice-analytics/internal/application/dto"
)

// Validate normaliza los elementos sin escribir nada y agrupa los motivos de rechazo.
func Validate(items []RawItem) dto.ValidationResult {
	res := dto.ValidationResult{Total: len(items), Reasons: map[string]int{}}
	for _, item := range items {
		if _, err := Normalize(item); err != nil {
			res.Rejected++
			res.Reasons[err.Error()]++
			continue
		}
		res.Accepted++
	}
	return res
}
