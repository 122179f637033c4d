package forecast

import (
	"math"
	"testing"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestStandardUnitPrice(t *testing.T) {
	assert.Equal(t, 0.0, standardUnitPrice(domain.OfferLine{}))
	assert.Equal(t, 12.5, standardUnitPrice(domain.OfferLine{UnitPrice: ptr(12.5)}))
	assert.Equal(t, 0.0, standardUnitPrice(domain.OfferLine{UnitPrice: ptr(math.NaN())}))
}

func TestPostEventUnitPrice(t *testing.T) {
	product := domain.Product{DefaultPrice: ptr(4.0)}

	tests := []struct {
		name     string
		line     domain.OfferLine
		product  domain.Product
		expected float64
	}{
		{"line override wins", domain.OfferLine{UnitPrice: ptr(6.0)}, product, 6},
		{"zero override is kept", domain.OfferLine{UnitPrice: ptr(0.0)}, product, 0},
		{"falls back to default price", domain.OfferLine{}, product, 4},
		{"nothing set", domain.OfferLine{}, domain.Product{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, postEventUnitPrice(tt.line, tt.product))
		})
	}
}

func TestPercentageResolution(t *testing.T) {
	product := domain.Product{PercentageFee: ptr(10.0), PercentageCostBasis: ptr(4.0)}

	t.Run("line overrides product", func(t *testing.T) {
		line := domain.OfferLine{PercentageFee: ptr(5.0), PercentageCostBasis: ptr(2.0)}
		assert.Equal(t, 5.0, percentageFee(line, product))
		assert.Equal(t, 2.0, percentageCostBasis(line, product))
	})

	t.Run("product value used without override", func(t *testing.T) {
		assert.Equal(t, 10.0, percentageFee(domain.OfferLine{}, product))
		assert.Equal(t, 4.0, percentageCostBasis(domain.OfferLine{}, product))
	})

	t.Run("defaults to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, percentageFee(domain.OfferLine{}, domain.Product{}))
		assert.Equal(t, 0.0, percentageCostBasis(domain.OfferLine{}, domain.Product{}))
	})

	t.Run("negative values clamp to zero", func(t *testing.T) {
		line := domain.OfferLine{PercentageFee: ptr(-3.0), PercentageCostBasis: ptr(math.Inf(1))}
		assert.Equal(t, 0.0, percentageFee(line, product))
		assert.Equal(t, 0.0, percentageCostBasis(line, product))
	})
}

func TestKeyFigureMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, keyFigureMultiplier(domain.Product{UnitType: domain.UnitTypePercentageOfRevenue}))
	assert.Equal(t, 0.0, keyFigureMultiplier(domain.Product{UnitType: domain.UnitTypePerUnit}))
	assert.Equal(t, 0.5, keyFigureMultiplier(domain.Product{
		UnitType:            domain.UnitTypePercentageOfRevenue,
		KeyFigureMultiplier: ptr(0.5),
	}))
	assert.Equal(t, 2.0, keyFigureMultiplier(domain.Product{
		UnitType:            domain.UnitTypePerUnit,
		KeyFigureMultiplier: ptr(2.0),
	}))
}

func TestStaffelFactor(t *testing.T) {
	scaled := domain.Product{HasStaffel: true}

	tests := []struct {
		name     string
		product  domain.Product
		staffel  *float64
		expected float64
	}{
		{"product without staffel", domain.Product{}, ptr(3.0), 1},
		{"offer staffel applies", scaled, ptr(3.0), 3},
		{"missing staffel is one", scaled, nil, 1},
		{"non finite staffel is one", scaled, ptr(math.NaN()), 1},
		{"negative staffel clamps", scaled, ptr(-2.0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, staffelFactor(tt.product, domain.Offer{Staffel: tt.staffel}))
		})
	}
}

func TestManualForecast(t *testing.T) {
	offer := domain.Offer{PostCalcForecasts: map[string]float64{"p1": 12, "p2": -4}}

	assert.Equal(t, 12.0, manualForecast(domain.Product{ID: "p1"}, offer))
	assert.Equal(t, 0.0, manualForecast(domain.Product{ID: "p2"}, offer))
	assert.Equal(t, 0.0, manualForecast(domain.Product{ID: "p3"}, offer))
}
