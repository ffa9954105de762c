package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-analytics/internal/application/dto"
	"github.com/jhoicas/invoice-analytics/internal/domain"
)

const fixture = `[
  {"_id": {"$oid": "65a1"}, "extractedData": {"llmData": {
    "vendor": {"value": {"vendorName": {"value": "Telekom"}}},
    "invoice": {"value": {"invoiceId": {"value": "TK-1"}}},
    "summary": {"value": {"invoiceTotal": {"value": 150.505}}}}}},
  {"_id": {"$oid": "65a2"}, "extractedData": {"llmData": {
    "vendor": {"value": {"vendorName": {"value": "Telekom"}}},
    "invoice": {"value": {"invoiceId": {"value": "TK-2"}}},
    "summary": {"value": {"invoiceTotal": {"value": 20}}}}}},
  {"_id": {"$oid": "65a3"}, "extractedData": {}}
]`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "extract.json")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "error")
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate", "--source", writeFixture(t))
	require.NoError(t, err)

	var res dto.ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Accepted)
	assert.Equal(t, 1, res.Rejected)
	assert.Len(t, res.Reasons, 1)
}

func TestValidate_SinFuente(t *testing.T) {
	t.Setenv("INGEST_SOURCE", "")
	_, err := execute(t, "validate")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRun_Memoria(t *testing.T) {
	out, err := execute(t, "run", "--driver", "memory", "--workers", "2", "--source", writeFixture(t))
	require.NoError(t, err)

	var res dto.IngestionResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 1, res.Rejected)
	assert.Zero(t, res.Failed)
}

func TestRun_FuenteInexistente(t *testing.T) {
	_, err := execute(t, "run", "--driver", "memory", "--source", filepath.Join(t.TempDir(), "nada.json"))
	assert.Error(t, err)
}
