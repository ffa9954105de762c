package extraction

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts formatos aceptados para las fechas extraídas, en orden de prueba.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02 15:04:05",
	"02.01.2006",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
}

// String devuelve el valor en path como texto. Los números se formatean sin
// exponente ni ceros decimales sobrantes (4925.0 → "4925"). Cadenas vacías
// cuentan como ausentes.
func String(root any, path string) (string, bool) {
	v, ok := Resolve(root, path)
	if !ok {
		return "", false
	}
	var s string
	switch val := v.(type) {
	case string:
		s = strings.TrimSpace(val)
	case json.Number:
		s = numberText(val)
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		s = strconv.Itoa(val)
	case int64:
		s = strconv.FormatInt(val, 10)
	case bool:
		s = strconv.FormatBool(val)
	default:
		return "", false
	}
	if s == "" {
		return "", false
	}
	return s, true
}

// numberText normaliza un número JSON literal: "4925.0" y "4.925e3" dan "4925".
func numberText(n json.Number) string {
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return n.String()
	}
	return d.String()
}

// Decimal devuelve el valor en path como importe. Acepta números JSON,
// json.Number y cadenas numéricas ("12.50", "12,50"). Cualquier otro tipo se
// considera ausente.
func Decimal(root any, path string) (decimal.Decimal, bool) {
	v, ok := Resolve(root, path)
	if !ok {
		return decimal.Zero, false
	}
	return toDecimal(v)
}

// DecimalOrZero es Decimal con cero por defecto (los importes nunca son nulos).
func DecimalOrZero(root any, path string) decimal.Decimal {
	d, _ := Decimal(root, path)
	return d
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch val := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(val.String())
		return d, err == nil
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(val), true
	case int:
		return decimal.NewFromInt(int64(val)), true
	case int64:
		return decimal.NewFromInt(val), true
	case string:
		s := strings.TrimSpace(val)
		if !strings.Contains(s, ".") {
			s = strings.Replace(s, ",", ".", 1)
		}
		d, err := decimal.NewFromString(s)
		return d, err == nil
	default:
		return decimal.Zero, false
	}
}

// Int devuelve el valor en path como entero. Los decimales se truncan.
func Int(root any, path string) (int, bool) {
	d, ok := Decimal(root, path)
	if !ok {
		return 0, false
	}
	return int(d.IntPart()), true
}

// Date devuelve el valor en path como fecha. Las cadenas que no representan
// una fecha de calendario válida (p. ej. "2024-02-30") se consideran ausentes;
// los números se interpretan como milisegundos Unix.
func Date(root any, path string) (time.Time, bool) {
	v, ok := Resolve(root, path)
	if !ok {
		return time.Time{}, false
	}
	switch val := v.(type) {
	case string:
		return ParseDate(val)
	case json.Number:
		ms, err := val.Int64()
		if err != nil {
			return time.Time{}, false
		}
		return time.UnixMilli(ms).UTC(), true
	case float64:
		return time.UnixMilli(int64(val)).UTC(), true
	default:
		return time.Time{}, false
	}
}

// ParseDate prueba los formatos conocidos y devuelve la primera coincidencia.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Slice devuelve el array en path; ausente si no es un array.
func Slice(root any, path string) ([]any, bool) {
	v, ok := Resolve(root, path)
	if !ok {
		return nil, false
	}
	s, ok := v.([]any)
	return s, ok
}
