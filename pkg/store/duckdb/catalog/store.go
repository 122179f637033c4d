package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/offer-atlas/pkg/models/store"
	"github.com/de-tools/offer-atlas/pkg/store/duckdb"
)

// Store reads and writes the product catalog and category settings
type Store interface {
	ListProducts(ctx context.Context) ([]store.ProductRecord, error)
	UpsertProducts(ctx context.Context, records []store.ProductRecord) error
	ListCategorySettings(ctx context.Context) ([]store.CategorySettingRecord, error)
	UpsertCategorySettings(ctx context.Context, records []store.CategorySettingRecord) error
}

type catalogStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &catalogStore{
		db: db,
	}, nil
}

func (c *catalogStore) ListProducts(ctx context.Context) ([]store.ProductRecord, error) {
	query := `
		SELECT id, name, category, unit_type, cost_basis, default_price, percentage_fee,
		       percentage_cost_basis, key_figure, key_figure_multiplier, has_staffel
		FROM products
		ORDER BY id
	`
	rows, err := duckdb.Conn(ctx, c.db).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	records := make([]store.ProductRecord, 0)
	for rows.Next() {
		var (
			r                                    store.ProductRecord
			name                                 sql.NullString
			price, fee, feeCostBasis, multiplier sql.NullFloat64
		)
		if err := rows.Scan(
			&r.ID, &name, &r.Category, &r.UnitType, &r.CostBasis, &price, &fee,
			&feeCostBasis, &r.KeyFigure, &multiplier, &r.HasStaffel,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		r.Name = name.String
		r.DefaultPrice = nullableFloat(price)
		r.PercentageFee = nullableFloat(fee)
		r.PercentageCostBasis = nullableFloat(feeCostBasis)
		r.KeyFigureMultiplier = nullableFloat(multiplier)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return records, nil
}

func (c *catalogStore) UpsertProducts(ctx context.Context, records []store.ProductRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT OR REPLACE INTO products (
			id, name, category, unit_type, cost_basis, default_price, percentage_fee,
			percentage_cost_basis, key_figure, key_figure_multiplier, has_staffel
		) VALUES (
			?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		)`

	for _, r := range records {
		_, err := duckdb.Conn(ctx, c.db).ExecContext(ctx, query,
			r.ID,
			r.Name,
			r.Category,
			r.UnitType,
			r.CostBasis,
			floatArg(r.DefaultPrice),
			floatArg(r.PercentageFee),
			floatArg(r.PercentageCostBasis),
			r.KeyFigure,
			floatArg(r.KeyFigureMultiplier),
			r.HasStaffel,
		)
		if err != nil {
			return fmt.Errorf("upsert product %s: %w", r.ID, err)
		}
	}
	return nil
}

func (c *catalogStore) ListCategorySettings(ctx context.Context) ([]store.CategorySettingRecord, error) {
	query := `SELECT category, calculation_type FROM category_settings ORDER BY category`
	rows, err := duckdb.Conn(ctx, c.db).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query category settings: %w", err)
	}
	defer rows.Close()

	records := make([]store.CategorySettingRecord, 0)
	for rows.Next() {
		var r store.CategorySettingRecord
		if err := rows.Scan(&r.Category, &r.CalculationType); err != nil {
			return nil, fmt.Errorf("scan category setting: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category settings: %w", err)
	}
	return records, nil
}

func (c *catalogStore) UpsertCategorySettings(ctx context.Context, records []store.CategorySettingRecord) error {
	query := `INSERT OR REPLACE INTO category_settings (category, calculation_type) VALUES (?, ?)`
	for _, r := range records {
		if _, err := duckdb.Conn(ctx, c.db).ExecContext(ctx, query, r.Category, r.CalculationType); err != nil {
			return fmt.Errorf("upsert category setting %s: %w", r.Category, err)
		}
	}
	return nil
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// floatArg passes optional values as plain NULL or float64 parameters
func floatArg(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
