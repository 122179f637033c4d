package forecast

import (
	"cmp"
	"slices"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/samber/lo"
)

// Aggregate folds line results into the offer breakdown.
func Aggregate(offer domain.Offer, lines []domain.LineResult) domain.Breakdown {
	b := domain.Breakdown{
		Lines:       lines,
		Categories:  GroupByCategory(lines),
		Corrections: realizationCorrections(offer, lines),
	}

	for _, l := range lines {
		if l.Skipped {
			continue
		}
		switch l.CalculationType {
		case domain.CalculationTypePostEvent:
			b.PostCalcRevenue += l.Revenue
			b.PostCalcCost += l.Cost
			b.PostCalcProfit += l.Profit
		default:
			b.StandardRevenue += l.Revenue
			b.StandardCost += l.Cost
			b.StandardProfit += l.Profit
		}
	}

	for _, c := range b.Corrections {
		b.RealizationCorrection += c.Correction
	}
	b.AdditionalCosts = additionalCosts(offer)
	b.NetProfit = b.StandardProfit + b.PostCalcProfit + b.RealizationCorrection - b.AdditionalCosts

	return b
}

// GroupByCategory sums line results per category and calculation type,
// sorted by category and then by type.
func GroupByCategory(lines []domain.LineResult) []domain.CategoryBreakdown {
	type key struct {
		category string
		calcType domain.CalculationType
	}

	groups := make(map[key]*domain.CategoryBreakdown)
	for _, l := range lines {
		if l.Skipped {
			continue
		}
		k := key{category: l.Category, calcType: l.CalculationType}
		g, ok := groups[k]
		if !ok {
			g = &domain.CategoryBreakdown{Category: l.Category, CalculationType: l.CalculationType}
			groups[k] = g
		}
		g.Revenue += l.Revenue
		g.Cost += l.Cost
		g.Profit += l.Profit
	}

	out := make([]domain.CategoryBreakdown, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	slices.SortFunc(out, func(a, b domain.CategoryBreakdown) int {
		if c := cmp.Compare(a.Category, b.Category); c != 0 {
			return c
		}
		return cmp.Compare(a.CalculationType, b.CalculationType)
	})
	return out
}

// realizationCorrections compares budgeted standard cost with the cost operations recorded.
// Only categories with a non-zero recorded cost are corrected.
func realizationCorrections(offer domain.Offer, lines []domain.LineResult) []domain.RealizationCorrection {
	categories := lo.Keys(offer.RealizationCosts)
	slices.Sort(categories)

	corrections := make([]domain.RealizationCorrection, 0, len(categories))
	for _, category := range categories {
		realized := finite(offer.RealizationCosts[category])
		if realized == 0 {
			continue
		}

		var budgeted float64
		for _, l := range lines {
			if l.Skipped || l.CalculationType != domain.CalculationTypeStandard || l.Category != category {
				continue
			}
			budgeted += l.Cost
		}

		corrections = append(corrections, domain.RealizationCorrection{
			Category:   category,
			Budgeted:   budgeted,
			Realized:   realized,
			Correction: budgeted - realized,
		})
	}
	return corrections
}

// additionalCosts sums the offer's extra costs in label order so the result is stable.
// Negative amounts are not rejected here.
func additionalCosts(offer domain.Offer) float64 {
	labels := lo.Keys(offer.AdditionalCosts)
	slices.Sort(labels)

	var total float64
	for _, label := range labels {
		total += finite(offer.AdditionalCosts[label])
	}
	return total
}
