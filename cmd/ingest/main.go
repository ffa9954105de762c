// ingest carga un volcado de documentos extraídos (JSON) en el almacén o lo
// valida sin escribir.
//
// Uso:
//
//	go run ./cmd/ingest run --source data/extract.json --workers 4
//	go run ./cmd/ingest validate --source gs://bucket/extract.json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
