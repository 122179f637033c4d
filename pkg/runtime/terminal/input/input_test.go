package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `offer:
  id: summer-fest
  name: Summer Fest
  showdates: ["2026-07-01", "2026-07-02"]
  expected_visitors_per_showdate:
    "2026-07-01": 1000
    "2026-07-02": 1500
  euro_spend_per_person: 30
  staffel: 2
  lines:
    - product_id: stage
      quantity: 1
      unit_price: 2500
    - product_id: wristbands
  additional_costs:
    Insurance: 120
products:
  - id: stage
    category: production
    unit_type: per_unit
    cost_basis: 1800
    has_staffel: true
  - id: wristbands
    category: ticketing
    unit_type: per_unit
    cost_basis: 0.3
    default_price: 0.5
    key_figure: total_visitors
category_settings:
  - category: ticketing
    calculation_type: post_event
`

func TestLoad(t *testing.T) {
	// Given
	path := filepath.Join(t.TempDir(), "offer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(document), 0o644))

	// When
	doc, err := Load(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "summer-fest", doc.Offer.ID)
	assert.Equal(t, map[string]int{"2026-07-01": 1000, "2026-07-02": 1500}, doc.Offer.ExpectedVisitorsPerShowdate)
	require.NotNil(t, doc.Offer.Staffel)
	assert.Equal(t, 2.0, *doc.Offer.Staffel)
	require.Len(t, doc.Offer.Lines, 2)
	assert.Equal(t, 2500.0, *doc.Offer.Lines[0].UnitPrice)
	assert.Nil(t, doc.Offer.Lines[1].UnitPrice)
	// label keys keep their case
	assert.Equal(t, 120.0, doc.Offer.AdditionalCosts["Insurance"])
	require.Len(t, doc.Products, 2)
	assert.True(t, doc.Products[0].HasStaffel)
	assert.Equal(t, 0.5, *doc.Products[1].DefaultPrice)
	assert.Equal(t, "post_event", doc.CategorySettings[0].CalculationType)
}

func TestDecode_JSON(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"offer": {"id": "o1", "lines": [{"product_id": "p1", "quantity": 3}]}}`))

	require.NoError(t, err)
	assert.Equal(t, 3.0, doc.Offer.Lines[0].Quantity)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown field", doc: "offer:\n  id: o1\n  discount: 5\n"},
		{name: "missing product id", doc: "offer:\n  lines:\n    - quantity: 1\n"},
		{name: "missing category", doc: "products:\n  - id: p1\n    unit_type: per_unit\n"},
		{name: "not yaml", doc: "offer: [1, 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to open input file")
}
