// Package source carga las exportaciones del servicio de extracción desde un
// fichero local o desde Google Cloud Storage (gs://bucket/objeto).
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/invoice-analytics/internal/application/ingestion"
)

var _ ingestion.Source = (*Loader)(nil)

const gcsScheme = "gs://"

// Loader implementa ingestion.Source.
type Loader struct {
	openGCS func(ctx context.Context, bucket, object string) (io.ReadCloser, error)
}

// NewLoader construye el cargador. El cliente de GCS se crea bajo demanda con
// las credenciales por defecto de la aplicación.
func NewLoader() *Loader {
	return &Loader{openGCS: openGCSObject}
}

// Load lee y decodifica el array JSON de elementos crudos en location.
func (l *Loader) Load(ctx context.Context, location string) ([]ingestion.RawItem, error) {
	rc, err := l.open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Decode(rc)
}

func (l *Loader) open(ctx context.Context, location string) (io.ReadCloser, error) {
	if !strings.HasPrefix(location, gcsScheme) {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("abrir fichero: %w", err)
		}
		return f, nil
	}
	bucket, object, err := ParseGCSURI(location)
	if err != nil {
		return nil, err
	}
	return l.openGCS(ctx, bucket, object)
}

// ParseGCSURI separa gs://bucket/ruta/objeto en bucket y objeto.
func ParseGCSURI(uri string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(uri, gcsScheme)
	if !ok {
		return "", "", fmt.Errorf("uri %q: falta el prefijo %s", uri, gcsScheme)
	}
	bucket, object, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("uri %q: se espera gs://bucket/objeto", uri)
	}
	return bucket, object, nil
}

// gcsReader cierra el cliente junto con el lector del objeto.
type gcsReader struct {
	*storage.Reader
	client *storage.Client
}

func (r *gcsReader) Close() error {
	err := r.Reader.Close()
	if cerr := r.client.Close(); err == nil {
		err = cerr
	}
	return err
}

func openGCSObject(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("open GCS object reader: %w", err)
	}
	return &gcsReader{Reader: r, client: client}, nil
}

// Decode lee un array JSON de elementos crudos. Un BOM inicial (UTF-8 o UTF-16)
// se elimina y el contenido se convierte a UTF-8. Los números se conservan como
// json.Number para no perder precisión en los importes. Un elemento que no es
// un objeto se devuelve vacío (la normalización lo rechazará).
func Decode(r io.Reader) ([]ingestion.RawItem, error) {
	utf8 := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	dec := json.NewDecoder(utf8)
	dec.UseNumber()

	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decodificar JSON: %w", err)
	}

	items := make([]ingestion.RawItem, 0, len(raw))
	for _, v := range raw {
		m, ok := v.(map[string]any)
		if !ok {
			items = append(items, ingestion.RawItem{})
			continue
		}
		items = append(items, ingestion.RawItemFromMap(m))
	}
	return items, nil
}
