package forecast

import "github.com/de-tools/offer-atlas/pkg/models/domain"

const (
	SkipReasonUnknownProduct = "unknown_product"
	SkipReasonZeroQuantity   = "zero_quantity"
)

// Calculate produces the breakdown of an offer. It is total over its inputs: lines that
// reference unknown products contribute nothing, and malformed numbers are clamped.
func Calculate(
	offer domain.Offer,
	products []domain.Product,
	settings []domain.CategorySetting,
) domain.Breakdown {
	catalog := NewCatalog(products, settings)
	evaluator := NewEvaluator(offer)

	lines := make([]domain.LineResult, 0, len(offer.Lines))
	for i, line := range offer.Lines {
		product, ok := catalog.Product(line.ProductID)
		if !ok {
			lines = append(lines, domain.LineResult{
				Index:      i,
				ProductID:  line.ProductID,
				Skipped:    true,
				SkipReason: SkipReasonUnknownProduct,
			})
			continue
		}

		calcType := catalog.Classify(product)
		lr := domain.LineResult{
			Index:           i,
			ProductID:       product.ID,
			Category:        product.Category,
			CalculationType: calcType,
		}

		if calcType == domain.CalculationTypeStandard && nonNegative(line.Quantity) <= 0 {
			lr.Skipped = true
			lr.SkipReason = SkipReasonZeroQuantity
			lines = append(lines, lr)
			continue
		}

		res := evaluator.Evaluate(line, product, calcType)
		lr.Quantity = res.Quantity
		lr.Revenue = res.Revenue
		lr.Cost = res.Cost
		lr.Profit = res.Profit
		lines = append(lines, lr)
	}

	return Aggregate(offer, lines)
}
