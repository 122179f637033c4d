package store

import "time"

type OfferRecord struct {
	ID        string
	Name      string
	Status    string
	Payload   OfferPayload
	UpdatedAt time.Time
}

// OfferPayload is the JSON document kept in the offers.payload column
type OfferPayload struct {
	Lines                       []OfferLinePayload `json:"lines"`
	Showdates                   []string           `json:"showdates"`
	ExpectedVisitorsPerShowdate map[string]int     `json:"expected_visitors_per_showdate,omitempty"`
	EuroSpendPerPerson          float64            `json:"euro_spend_per_person"`
	BarMeters                   float64            `json:"bar_meters"`
	FoodSalesPositions          float64            `json:"food_sales_positions"`
	Staffel                     *float64           `json:"staffel,omitempty"`
	TotalVisitorsOverride       *int               `json:"total_visitors_override,omitempty"`
	PostCalcForecasts           map[string]float64 `json:"post_calc_forecasts,omitempty"`
	RealizationCosts            map[string]float64 `json:"realization_costs,omitempty"`
	AdditionalCosts             map[string]float64 `json:"additional_costs,omitempty"`
}

type OfferLinePayload struct {
	ProductID           string   `json:"product_id"`
	Quantity            float64  `json:"quantity"`
	UnitPrice           *float64 `json:"unit_price,omitempty"`
	PercentageFee       *float64 `json:"percentage_fee,omitempty"`
	PercentageCostBasis *float64 `json:"percentage_cost_basis,omitempty"`
}

type SnapshotRecord struct {
	ID            string
	OfferID       string
	NetProfit     float64
	CategoryCosts map[string]float64
	Currency      string
	SignedAt      time.Time
}
