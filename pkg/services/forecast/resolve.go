package forecast

import (
	"math"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
)

// Default resolution for every optional field the engine reads. Each function is the single
// place where the override precedence of its field is decided.

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func nonNegative(v float64) float64 {
	v = finite(v)
	if v < 0 {
		return 0
	}
	return v
}

// firstSet returns the first non-nil value, or def when all are nil.
func firstSet(def float64, values ...*float64) float64 {
	for _, v := range values {
		if v != nil {
			return finite(*v)
		}
	}
	return def
}

// standardUnitPrice: line override, otherwise 0. Standard lines need an explicit price.
func standardUnitPrice(line domain.OfferLine) float64 {
	return firstSet(0, line.UnitPrice)
}

// postEventUnitPrice: line override, then product default price, then 0.
func postEventUnitPrice(line domain.OfferLine, product domain.Product) float64 {
	return firstSet(0, line.UnitPrice, product.DefaultPrice)
}

// percentageFee: line override, then product value, then 0. Negative values clamp to 0.
func percentageFee(line domain.OfferLine, product domain.Product) float64 {
	return nonNegative(firstSet(0, line.PercentageFee, product.PercentageFee))
}

// percentageCostBasis: line override, then product value, then 0. Negative values clamp to 0.
func percentageCostBasis(line domain.OfferLine, product domain.Product) float64 {
	return nonNegative(firstSet(0, line.PercentageCostBasis, product.PercentageCostBasis))
}

// keyFigureMultiplier: product value, otherwise 1 for percentage products and 0 for per-unit products.
func keyFigureMultiplier(product domain.Product) float64 {
	if product.UnitType == domain.UnitTypePercentageOfRevenue {
		return firstSet(1, product.KeyFigureMultiplier)
	}
	return firstSet(0, product.KeyFigureMultiplier)
}

// staffelFactor: offer staffel for products that scale with it, otherwise 1.
// A missing or non-finite staffel is 1, a negative one clamps to 0.
func staffelFactor(product domain.Product, offer domain.Offer) float64 {
	if !product.HasStaffel || offer.Staffel == nil {
		return 1
	}
	s := *offer.Staffel
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 1
	}
	if s < 0 {
		return 0
	}
	return s
}

// manualForecast: the offer's post-calculation forecast for the product, otherwise 0.
func manualForecast(product domain.Product, offer domain.Offer) float64 {
	qty, ok := offer.PostCalcForecasts[product.ID]
	if !ok {
		return 0
	}
	return nonNegative(qty)
}
