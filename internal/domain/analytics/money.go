// Package analytics contiene los algoritmos de agregación del dashboard
// (servicios de dominio puros: sin acceso a datos ni reloj global).
package analytics

import "github.com/shopspring/decimal"

// displayPlaces precisión de presentación de todos los importes del dashboard.
const displayPlaces = 2

// Round2 redondea a 2 decimales alejándose de cero en el empate
// (150.505 → 150.51, -150.505 → -150.51). Es una regla de presentación, no contable.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(displayPlaces)
}
