package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const ProductsTableSchema = `
	CREATE TABLE IF NOT EXISTS products (
		id VARCHAR PRIMARY KEY,
		name VARCHAR,
		category VARCHAR NOT NULL,
		unit_type VARCHAR NOT NULL,
		cost_basis DOUBLE NOT NULL DEFAULT 0,
		default_price DOUBLE NULL,
		percentage_fee DOUBLE NULL,
		percentage_cost_basis DOUBLE NULL,
		key_figure VARCHAR NOT NULL DEFAULT 'none',
		key_figure_multiplier DOUBLE NULL,
		has_staffel BOOLEAN NOT NULL DEFAULT FALSE
	);
`

const CategorySettingsTableSchema = `
	CREATE TABLE IF NOT EXISTS category_settings (
		category VARCHAR PRIMARY KEY,
		calculation_type VARCHAR NOT NULL
	);
`

const OffersTableSchema = `
	CREATE TABLE IF NOT EXISTS offers (
		id VARCHAR PRIMARY KEY,
		name VARCHAR,
		status VARCHAR NOT NULL DEFAULT 'draft',
		payload JSON NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

const SnapshotsTableSchema = `
	CREATE TABLE IF NOT EXISTS offer_snapshots (
		offer_id VARCHAR PRIMARY KEY,
		id VARCHAR NOT NULL,
		net_profit DOUBLE NOT NULL,
		category_costs JSON,
		currency VARCHAR,
		signed_at TIMESTAMP NOT NULL
	);
`

var bootQueries = []string{
	ProductsTableSchema,
	CategorySettingsTableSchema,
	OffersTableSchema,
	SnapshotsTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
