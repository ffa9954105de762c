package entity

import "time"

// Vendor representa un proveedor detectado en los documentos extraídos.
// Name es la clave de identidad: única y sensible a mayúsculas.
type Vendor struct {
	ID        string
	Name      string
	Address   string // opcional ("" = sin dato)
	TaxID     string // opcional (USt-IdNr., NIF, ...)
	CreatedAt time.Time
}
