package ingestion

import (
	"github.com/jhoicas/invoice-analytics/pkg/extraction"
)

// RawItem elemento crudo tal como lo exporta el servicio de extracción.
type RawItem struct {
	ID            string         // _id del documento fuente
	ExtractedData map[string]any // árbol extractedData (puede faltar)
}

// RawItemFromMap adapta un objeto JSON genérico. _id puede venir como cadena,
// número o {"$oid": "..."} (exportaciones de MongoDB).
func RawItemFromMap(m map[string]any) RawItem {
	item := RawItem{}
	if id, ok := extraction.String(m, "_id.$oid"); ok {
		item.ID = id
	} else if id, ok := extraction.String(m, "_id"); ok {
		item.ID = id
	}
	if data, ok := m["extractedData"].(map[string]any); ok {
		item.ExtractedData = data
	}
	return item
}
