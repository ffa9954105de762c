package dto

// IngestionResult resumen de una recarga completa.
type IngestionResult struct {
	Total     int   `json:"total"`     // elementos recibidos
	Processed int   `json:"processed"` // factura + líneas persistidas
	Rejected  int   `json:"rejected"`  // descartados por la normalización
	Failed    int   `json:"failed"`    // normalizados pero con error al persistir
	Duration  int64 `json:"durationMs"`
}

// ValidationResult resumen de una validación sin escritura.
type ValidationResult struct {
	Total    int            `json:"total"`
	Accepted int            `json:"accepted"`
	Rejected int            `json:"rejected"`
	Reasons  map[string]int `json:"reasons,omitempty"` // motivo → ocurrencias
}
