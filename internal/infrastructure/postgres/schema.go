package postgres

import (
	"context"
	"fmt"
)

// schema crea las tablas si no existen (idempotente). Los importes son NUMERIC
// sin escala para conservar la precisión de la extracción.
const schema = `
CREATE TABLE IF NOT EXISTS vendors (
    id          UUID PRIMARY KEY,
    name        TEXT NOT NULL UNIQUE,
    address     TEXT,
    tax_id      TEXT,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS invoices (
    id               UUID PRIMARY KEY,
    vendor_id        UUID NOT NULL REFERENCES vendors(id),
    doc_id           TEXT,
    invoice_number   TEXT NOT NULL,
    invoice_date     TIMESTAMPTZ,
    delivery_date    TIMESTAMPTZ,
    due_date         TIMESTAMPTZ,
    net_days         INTEGER,
    sub_total        NUMERIC NOT NULL DEFAULT 0,
    total_tax        NUMERIC NOT NULL DEFAULT 0,
    invoice_total    NUMERIC NOT NULL,
    currency_symbol  TEXT,
    document_type    TEXT,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_invoices_vendor_id    ON invoices (vendor_id);
CREATE INDEX IF NOT EXISTS idx_invoices_invoice_date ON invoices (invoice_date);
CREATE INDEX IF NOT EXISTS idx_invoices_due_date     ON invoices (due_date) WHERE due_date IS NOT NULL;

CREATE TABLE IF NOT EXISTS line_items (
    id             UUID PRIMARY KEY,
    invoice_id     UUID NOT NULL REFERENCES invoices(id),
    sr_no          INTEGER NOT NULL,
    description    TEXT NOT NULL,
    quantity       NUMERIC NOT NULL DEFAULT 0,
    unit_price     NUMERIC NOT NULL DEFAULT 0,
    total_price    NUMERIC NOT NULL DEFAULT 0,
    sachkonto      TEXT,
    bu_schluessel  TEXT,
    vat_rate       NUMERIC NOT NULL DEFAULT 0,
    vat_amount     NUMERIC NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_line_items_invoice_id ON line_items (invoice_id);
`

// EnsureSchema aplica el esquema sobre la conexión indicada.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}
