package source

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `[
  {"_id": "a1", "extractedData": {"llmData": {"summary": {"value": {"invoiceTotal": {"value": 150.505}}}}}},
  {"_id": {"$oid": "b2"}},
  42
]`

func TestDecode_ConBOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, sample...)

	items, err := Decode(bytes.NewReader(input))
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "a1", items[0].ID)
	assert.Equal(t, "b2", items[1].ID)
	assert.Nil(t, items[1].ExtractedData)
	assert.Empty(t, items[2].ID)
}

func TestDecode_UTF16(t *testing.T) {
	// UTF-16LE con BOM.
	src := `[{"_id": "ü"}]`
	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xFE})
	for _, r := range src {
		buf.WriteByte(byte(r))
		buf.WriteByte(byte(r >> 8))
	}

	items, err := Decode(&buf)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "ü", items[0].ID)
}

func TestDecode_NoArray(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"_id": "x"}`))
	assert.Error(t, err)
}

func TestLoad_FicheroLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	items, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestLoad_FicheroInexistente(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_GCS(t *testing.T) {
	var gotBucket, gotObject string
	l := &Loader{openGCS: func(_ context.Context, bucket, object string) (io.ReadCloser, error) {
		gotBucket, gotObject = bucket, object
		return io.NopCloser(strings.NewReader(sample)), nil
	}}

	items, err := l.Load(context.Background(), "gs://exports/2025/06/data.json")
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "exports", gotBucket)
	assert.Equal(t, "2025/06/data.json", gotObject)
}

func TestLoad_GCSError(t *testing.T) {
	boom := errors.New("permiso denegado")
	l := &Loader{openGCS: func(context.Context, string, string) (io.ReadCloser, error) { return nil, boom }}

	_, err := l.Load(context.Background(), "gs://b/o.json")
	assert.ErrorIs(t, err, boom)
}

func TestParseGCSURI(t *testing.T) {
	tests := []struct {
		uri     string
		bucket  string
		object  string
		wantErr bool
	}{
		{uri: "gs://b/o.json", bucket: "b", object: "o.json"},
		{uri: "gs://b/dir/o.json", bucket: "b", object: "dir/o.json"},
		{uri: "gs://b", wantErr: true},
		{uri: "gs:///o.json", wantErr: true},
		{uri: "s3://b/o.json", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			bucket, object, err := ParseGCSURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.object, object)
		})
	}
}
