package forecast

import (
	"testing"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestEvaluator_Standard(t *testing.T) {
	product := standardProduct("stage", "production", 5)
	product.HasStaffel = true

	t.Run("staffel scales quantity", func(t *testing.T) {
		e := NewEvaluator(domain.Offer{Staffel: ptr(2.0)})
		res := e.Evaluate(domain.OfferLine{Quantity: 10, UnitPrice: ptr(20.0)}, product, domain.CalculationTypeStandard)

		assert.Equal(t, Result{Quantity: 20, Revenue: 400, Cost: 100, Profit: 300}, res)
	})

	t.Run("missing price yields cost only", func(t *testing.T) {
		e := NewEvaluator(domain.Offer{})
		res := e.Evaluate(domain.OfferLine{Quantity: 4}, product, domain.CalculationTypeStandard)

		assert.Equal(t, Result{Quantity: 4, Revenue: 0, Cost: 20, Profit: -20}, res)
	})

	t.Run("default price is not used for standard lines", func(t *testing.T) {
		priced := product
		priced.DefaultPrice = ptr(99.0)
		e := NewEvaluator(domain.Offer{})
		res := e.Evaluate(domain.OfferLine{Quantity: 1}, priced, domain.CalculationTypeStandard)

		assert.Equal(t, 0.0, res.Revenue)
	})

	t.Run("negative quantity contributes nothing", func(t *testing.T) {
		e := NewEvaluator(domain.Offer{})
		res := e.Evaluate(domain.OfferLine{Quantity: -3, UnitPrice: ptr(10.0)}, product, domain.CalculationTypeStandard)

		assert.Equal(t, Result{}, res)
	})
}

func TestEvaluator_Percentage(t *testing.T) {
	offer := domain.Offer{
		ExpectedVisitorsPerShowdate: map[string]int{"d1": 1000},
		EuroSpendPerPerson:          10,
		TotalVisitorsOverride:       ptr(3000),
	}
	product := domain.Product{
		ID:                  "card-fees",
		Category:            "ticketing",
		UnitType:            domain.UnitTypePercentageOfRevenue,
		KeyFigure:           domain.KeyFigureExpectedRevenue,
		PercentageFee:       ptr(10.0),
		PercentageCostBasis: ptr(4.0),
	}
	e := NewEvaluator(offer)

	t.Run("uses ticketing revenue outside transaction processing", func(t *testing.T) {
		res := e.Evaluate(domain.OfferLine{}, product, domain.CalculationTypePostEvent)

		assert.InDelta(t, 3000, res.Revenue, delta)
		assert.InDelta(t, 1200, res.Cost, delta)
		assert.InDelta(t, 1800, res.Profit, delta)
		assert.Equal(t, 0.0, res.Quantity)
	})

	t.Run("line fee override takes precedence", func(t *testing.T) {
		res := e.Evaluate(domain.OfferLine{PercentageFee: ptr(5.0)}, product, domain.CalculationTypePostEvent)

		assert.InDelta(t, 1500, res.Revenue, delta)
		assert.InDelta(t, 1200, res.Cost, delta)
	})

	t.Run("multiplier scales base", func(t *testing.T) {
		scaled := product
		scaled.KeyFigureMultiplier = ptr(0.5)
		res := e.Evaluate(domain.OfferLine{}, scaled, domain.CalculationTypePostEvent)

		assert.InDelta(t, 1500, res.Revenue, delta)
	})

	t.Run("zero percentages skip evaluation", func(t *testing.T) {
		res := e.Evaluate(
			domain.OfferLine{PercentageFee: ptr(0.0), PercentageCostBasis: ptr(0.0)},
			product,
			domain.CalculationTypePostEvent,
		)

		assert.Equal(t, Result{}, res)
	})

	t.Run("no key figure means zero base", func(t *testing.T) {
		none := product
		none.KeyFigure = domain.KeyFigureNone
		res := e.Evaluate(domain.OfferLine{}, none, domain.CalculationTypePostEvent)

		assert.Equal(t, Result{}, res)
	})

	t.Run("values are not rounded", func(t *testing.T) {
		fractional := product
		fractional.PercentageFee = ptr(2.345)
		res := e.Evaluate(domain.OfferLine{}, fractional, domain.CalculationTypePostEvent)

		assert.InDelta(t, 703.5, res.Revenue, 1e-6)
	})
}

func TestEvaluator_PerUnit(t *testing.T) {
	offer := domain.Offer{
		ExpectedVisitorsPerShowdate: map[string]int{"d1": 1001},
		PostCalcForecasts:           map[string]float64{"wristbands": 40},
	}
	e := NewEvaluator(offer)

	t.Run("forecast from key figure is rounded", func(t *testing.T) {
		product := domain.Product{
			ID:                  "cups",
			Category:            "bar",
			UnitType:            domain.UnitTypePerUnit,
			KeyFigure:           domain.KeyFigureTotalVisitors,
			KeyFigureMultiplier: ptr(0.5),
			DefaultPrice:        ptr(2.0),
			CostBasis:           0.5,
		}
		res := e.Evaluate(domain.OfferLine{}, product, domain.CalculationTypePostEvent)

		// 1001 * 0.5 = 500.5 rounds half away from zero
		assert.Equal(t, Result{Quantity: 501, Revenue: 1002, Cost: 250.5, Profit: 751.5}, res)
	})

	t.Run("missing multiplier forecasts nothing", func(t *testing.T) {
		product := domain.Product{
			ID:           "cups",
			UnitType:     domain.UnitTypePerUnit,
			KeyFigure:    domain.KeyFigureTotalVisitors,
			DefaultPrice: ptr(2.0),
		}
		res := e.Evaluate(domain.OfferLine{}, product, domain.CalculationTypePostEvent)

		assert.Equal(t, Result{}, res)
	})

	t.Run("manual forecast without key figure", func(t *testing.T) {
		product := domain.Product{
			ID:           "wristbands",
			UnitType:     domain.UnitTypePerUnit,
			KeyFigure:    domain.KeyFigureNone,
			DefaultPrice: ptr(1.5),
			CostBasis:    0.25,
		}
		res := e.Evaluate(domain.OfferLine{UnitPrice: ptr(2.0)}, product, domain.CalculationTypePostEvent)

		assert.Equal(t, Result{Quantity: 40, Revenue: 80, Cost: 10, Profit: 70}, res)
	})

	t.Run("no manual forecast", func(t *testing.T) {
		product := domain.Product{ID: "lanyards", UnitType: domain.UnitTypePerUnit, KeyFigure: domain.KeyFigureNone}
		res := e.Evaluate(domain.OfferLine{UnitPrice: ptr(2.0)}, product, domain.CalculationTypePostEvent)

		assert.Equal(t, Result{}, res)
	})
}
