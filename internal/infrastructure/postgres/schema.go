package postgres

import (
	"context"
	"fmt"
)

// schemaDDL esquema relacional completo. Idempotente: se aplica en cada arranque.
// SKU con constraint UNIQUE (cierra la carrera de creaciones concurrentes);
// category_id con ON DELETE SET NULL para no dejar referencias colgantes.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS users (
	id         UUID PRIMARY KEY,
	username   TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id                  UUID PRIMARY KEY,
	name                TEXT NOT NULL,
	sku                 TEXT NOT NULL UNIQUE,
	description         TEXT NOT NULL DEFAULT '',
	category_id         UUID REFERENCES categories(id) ON DELETE SET NULL,
	price               NUMERIC(12,2) NOT NULL DEFAULT 0,
	cost_price          NUMERIC(12,2) NOT NULL DEFAULT 0,
	stock               INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
	low_stock_threshold INTEGER NOT NULL DEFAULT 10,
	image_url           TEXT,
	is_active           BOOLEAN NOT NULL DEFAULT true,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS inventory_adjustments (
	id         UUID PRIMARY KEY,
	product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	type       TEXT NOT NULL CHECK (type IN ('in', 'out')),
	quantity   INTEGER NOT NULL CHECK (quantity > 0),
	reason     TEXT NOT NULL,
	notes      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_products_category_id ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_adjustments_product_id ON inventory_adjustments(product_id);
`

// EnsureSchema aplica el DDL del esquema. No hay sistema de migraciones; este
// es el único mecanismo que crea las tablas.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}
