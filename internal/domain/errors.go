package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")

	// Ingesta de extracciones.
	ErrMissingExtraction    = errors.New("extracción ausente (extractedData.llmData)")
	ErrMissingRequiredField = errors.New("campo obligatorio ausente")
	ErrReloadInProgress     = errors.New("ya hay una recarga en curso")
)
