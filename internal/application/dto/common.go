package dto

import "github.com/shopspring/decimal"

// Los importes del dashboard se serializan como números JSON (150.51), no como cadenas.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
