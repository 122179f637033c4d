package catalog

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/offer-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{
	"id", "name", "category", "unit_type", "cost_basis", "default_price", "percentage_fee",
	"percentage_cost_basis", "key_figure", "key_figure_multiplier", "has_staffel",
}

func newMockStore(t *testing.T) (Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := NewStore(db)
	require.NoError(t, err)
	return s, mock
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}

func TestCatalogStore_ListProducts(t *testing.T) {
	// Given
	s, mock := newMockStore(t)
	rows := sqlmock.NewRows(productColumns).
		AddRow("fees", "Card fees", "transaction_processing", "percentage_of_revenue", 0.0,
			nil, 3.0, 1.0, "expected_revenue", nil, false).
		AddRow("stage", nil, "production", "per_unit", 5.0,
			120.0, nil, nil, "none", nil, true)
	mock.ExpectQuery("SELECT (.+) FROM products ORDER BY id").WillReturnRows(rows)

	// When
	products, err := s.ListProducts(context.Background())

	// Then
	require.NoError(t, err)
	require.Len(t, products, 2)

	fees := products[0]
	assert.Equal(t, "Card fees", fees.Name)
	assert.Nil(t, fees.DefaultPrice)
	require.NotNil(t, fees.PercentageFee)
	assert.Equal(t, 3.0, *fees.PercentageFee)
	assert.Nil(t, fees.KeyFigureMultiplier)

	stage := products[1]
	assert.Equal(t, "", stage.Name)
	require.NotNil(t, stage.DefaultPrice)
	assert.Equal(t, 120.0, *stage.DefaultPrice)
	assert.True(t, stage.HasStaffel)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogStore_ListProducts_QueryError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT (.+) FROM products").WillReturnError(errors.New("boom"))

	_, err := s.ListProducts(context.Background())

	assert.ErrorContains(t, err, "query products")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogStore_UpsertProducts(t *testing.T) {
	s, mock := newMockStore(t)
	price := 20.0
	mock.ExpectExec(regexp.QuoteMeta("INSERT OR REPLACE INTO products")).
		WithArgs("stage", "Stage", "production", "per_unit", 5.0, price, nil, nil, "none", nil, true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.UpsertProducts(context.Background(), []store.ProductRecord{{
		ID:           "stage",
		Name:         "Stage",
		Category:     "production",
		UnitType:     "per_unit",
		CostBasis:    5,
		DefaultPrice: &price,
		KeyFigure:    "none",
		HasStaffel:   true,
	}})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogStore_UpsertProducts_Empty(t *testing.T) {
	s, mock := newMockStore(t)

	err := s.UpsertProducts(context.Background(), nil)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogStore_CategorySettings(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT OR REPLACE INTO category_settings")).
		WithArgs("ticketing", "post_event").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT category, calculation_type FROM category_settings").
		WillReturnRows(sqlmock.NewRows([]string{"category", "calculation_type"}).
			AddRow("ticketing", "post_event"))

	ctx := context.Background()
	err := s.UpsertCategorySettings(ctx, []store.CategorySettingRecord{
		{Category: "ticketing", CalculationType: "post_event"},
	})
	require.NoError(t, err)

	settings, err := s.ListCategorySettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, []store.CategorySettingRecord{{Category: "ticketing", CalculationType: "post_event"}}, settings)
	assert.NoError(t, mock.ExpectationsWereMet())
}
