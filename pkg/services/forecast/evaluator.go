package forecast

import (
	"math"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
)

// Result is the financial contribution of one line.
type Result struct {
	Quantity float64
	Revenue  float64
	Cost     float64
	Profit   float64
}

func newResult(qty, unitPrice, costBasis float64) Result {
	revenue := qty * unitPrice
	cost := qty * costBasis
	return Result{
		Quantity: qty,
		Revenue:  revenue,
		Cost:     cost,
		Profit:   revenue - cost,
	}
}

// Evaluator computes line results for one offer.
type Evaluator struct {
	offer   domain.Offer
	metrics Metrics
}

func NewEvaluator(offer domain.Offer) *Evaluator {
	return &Evaluator{
		offer:   offer,
		metrics: NewMetrics(offer),
	}
}

func (e *Evaluator) Metrics() Metrics {
	return e.metrics
}

// Evaluate returns revenue, cost and profit of a line whose product is already resolved.
func (e *Evaluator) Evaluate(
	line domain.OfferLine,
	product domain.Product,
	calcType domain.CalculationType,
) Result {
	if calcType == domain.CalculationTypePostEvent {
		if product.UnitType == domain.UnitTypePercentageOfRevenue {
			return e.evaluatePercentage(line, product)
		}
		return e.evaluatePerUnit(line, product)
	}
	return e.evaluateStandard(line, product)
}

func (e *Evaluator) evaluateStandard(line domain.OfferLine, product domain.Product) Result {
	qty := nonNegative(line.Quantity)
	if qty <= 0 {
		return Result{}
	}
	effectiveQty := qty * staffelFactor(product, e.offer)
	return newResult(effectiveQty, standardUnitPrice(line), finite(product.CostBasis))
}

func (e *Evaluator) evaluatePercentage(line domain.OfferLine, product domain.Product) Result {
	fee := percentageFee(line, product)
	costBasis := percentageCostBasis(line, product)
	if fee <= 0 && costBasis <= 0 {
		return Result{}
	}

	var base float64
	if !product.KeyFigure.IsNone() {
		base = e.metrics.BaseValue(product)
	}

	multiplied := base * keyFigureMultiplier(product)
	revenue := multiplied * fee / 100
	cost := multiplied * costBasis / 100
	return Result{
		Revenue: revenue,
		Cost:    cost,
		Profit:  revenue - cost,
	}
}

func (e *Evaluator) evaluatePerUnit(line domain.OfferLine, product domain.Product) Result {
	var qty float64
	if product.KeyFigure.IsNone() {
		qty = manualForecast(product, e.offer)
	} else {
		// units are discrete, percentage amounts are not rounded
		qty = math.Round(e.metrics.BaseValue(product) * keyFigureMultiplier(product))
	}
	if qty <= 0 {
		return Result{}
	}
	return newResult(qty, postEventUnitPrice(line, product), finite(product.CostBasis))
}
