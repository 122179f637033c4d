package forecast

import "github.com/de-tools/offer-atlas/pkg/models/domain"

// Metrics holds the event figures derived once per offer and shared by all of its lines.
type Metrics struct {
	VisitorsFromShowdates float64
	TransactionRevenue    float64 // always from the showdate forecast
	TicketingVisitors     float64 // override when set, otherwise the showdate forecast
	TicketingRevenue      float64
	EuroSpendPerPerson    float64
	BarMeters             float64
	FoodSalesPositions    float64
	Showdates             int
}

func NewMetrics(offer domain.Offer) Metrics {
	var visitors float64
	for _, v := range offer.ExpectedVisitorsPerShowdate {
		if v > 0 {
			visitors += float64(v)
		}
	}

	spend := nonNegative(offer.EuroSpendPerPerson)

	ticketing := visitors
	if offer.TotalVisitorsOverride != nil && *offer.TotalVisitorsOverride > 0 {
		ticketing = float64(*offer.TotalVisitorsOverride)
	}

	return Metrics{
		VisitorsFromShowdates: visitors,
		TransactionRevenue:    visitors * spend,
		TicketingVisitors:     ticketing,
		TicketingRevenue:      ticketing * spend,
		EuroSpendPerPerson:    spend,
		BarMeters:             nonNegative(offer.BarMeters),
		FoodSalesPositions:    nonNegative(offer.FoodSalesPositions),
		Showdates:             len(offer.Showdates),
	}
}

// BaseValue resolves the key figure of a product against the offer metrics.
// Products without a key figure and unrecognized key figures resolve to 0.
func (m Metrics) BaseValue(product domain.Product) float64 {
	transaction := product.Category == domain.CategoryTransactionProcessing

	switch product.KeyFigure {
	case domain.KeyFigureTotalVisitors:
		if transaction {
			return m.VisitorsFromShowdates
		}
		return m.TicketingVisitors
	case domain.KeyFigureExpectedRevenue:
		if transaction {
			return m.TransactionRevenue
		}
		return m.TicketingRevenue
	case domain.KeyFigureBarMeters:
		return m.BarMeters
	case domain.KeyFigureFoodSalesPositions:
		return m.FoodSalesPositions
	case domain.KeyFigureEuroSpendPerPerson:
		return m.EuroSpendPerPerson
	case domain.KeyFigureNumberOfShowdates:
		return float64(m.Showdates)
	default:
		return 0
	}
}
