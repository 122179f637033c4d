package forecast

import (
	"time"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
)

// TakeSnapshot freezes net profit and per-category cost of a breakdown at signing time.
// The caller assigns the snapshot ID.
func TakeSnapshot(offerID string, b domain.Breakdown, signedAt time.Time, currency string) domain.Snapshot {
	costs := make(map[string]float64)
	for _, l := range b.Lines {
		if l.Skipped {
			continue
		}
		costs[l.Category] += l.Cost
	}
	for category, cost := range costs {
		costs[category] = RoundCurrency(cost)
	}

	return domain.Snapshot{
		OfferID:       offerID,
		SignedAt:      signedAt.UTC(),
		NetProfit:     RoundCurrency(b.NetProfit),
		CategoryCosts: costs,
		Currency:      currency,
	}
}
