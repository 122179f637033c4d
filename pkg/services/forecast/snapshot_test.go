package forecast

import (
	"testing"
	"time"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestTakeSnapshot(t *testing.T) {
	products := []domain.Product{
		standardProduct("meals", "catering", 3.333),
		{
			ID:           "cups",
			Category:     "bar",
			UnitType:     domain.UnitTypePerUnit,
			KeyFigure:    domain.KeyFigureNone,
			DefaultPrice: ptr(2.0),
			CostBasis:    0.5,
		},
	}
	offer := domain.Offer{
		ID: "offer-1",
		Lines: []domain.OfferLine{
			{ProductID: "meals", Quantity: 3, UnitPrice: ptr(10.0)},
			{ProductID: "cups"},
			{ProductID: "retired", Quantity: 1},
		},
		PostCalcForecasts: map[string]float64{"cups": 10},
	}
	b := Calculate(offer, products, postEventSettings("bar"))
	signedAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))

	s := TakeSnapshot(offer.ID, b, signedAt, "EUR")

	assert.Equal(t, "offer-1", s.OfferID)
	assert.Equal(t, "EUR", s.Currency)
	assert.Equal(t, time.UTC, s.SignedAt.Location())
	assert.True(t, s.SignedAt.Equal(signedAt))
	assert.Equal(t, map[string]float64{"catering": 10, "bar": 5}, s.CategoryCosts)
	// 30 - 9.999 + 20 - 5
	assert.Equal(t, 35.0, s.NetProfit)
}
