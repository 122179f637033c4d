package api

import "time"

// Product mirrors a catalog entry. The same documents are read from YAML input files.
type Product struct {
	ID                  string   `json:"id" yaml:"id" validate:"required"`
	Name                string   `json:"name,omitempty" yaml:"name"`
	Category            string   `json:"category" yaml:"category" validate:"required"`
	UnitType            string   `json:"unit_type" yaml:"unit_type" validate:"required"`
	CostBasis           float64  `json:"cost_basis" yaml:"cost_basis"`
	DefaultPrice        *float64 `json:"default_price,omitempty" yaml:"default_price"`
	PercentageFee       *float64 `json:"percentage_fee,omitempty" yaml:"percentage_fee"`
	PercentageCostBasis *float64 `json:"percentage_cost_basis,omitempty" yaml:"percentage_cost_basis"`
	KeyFigure           string   `json:"key_figure,omitempty" yaml:"key_figure"`
	KeyFigureMultiplier *float64 `json:"key_figure_multiplier,omitempty" yaml:"key_figure_multiplier"`
	HasStaffel          bool     `json:"has_staffel" yaml:"has_staffel"`
}

type CategorySetting struct {
	Category        string `json:"category" yaml:"category" validate:"required"`
	CalculationType string `json:"calculation_type" yaml:"calculation_type" validate:"required"`
}

type OfferLine struct {
	ProductID           string   `json:"product_id" yaml:"product_id" validate:"required"`
	Quantity            float64  `json:"quantity" yaml:"quantity"`
	UnitPrice           *float64 `json:"unit_price,omitempty" yaml:"unit_price"`
	PercentageFee       *float64 `json:"percentage_fee,omitempty" yaml:"percentage_fee"`
	PercentageCostBasis *float64 `json:"percentage_cost_basis,omitempty" yaml:"percentage_cost_basis"`
}

type Offer struct {
	ID                          string             `json:"id" yaml:"id"`
	Name                        string             `json:"name,omitempty" yaml:"name"`
	Status                      string             `json:"status,omitempty" yaml:"status"`
	Lines                       []OfferLine        `json:"lines" yaml:"lines" validate:"dive"`
	Showdates                   []string           `json:"showdates,omitempty" yaml:"showdates"`
	ExpectedVisitorsPerShowdate map[string]int     `json:"expected_visitors_per_showdate,omitempty" yaml:"expected_visitors_per_showdate"`
	EuroSpendPerPerson          float64            `json:"euro_spend_per_person" yaml:"euro_spend_per_person"`
	BarMeters                   float64            `json:"bar_meters" yaml:"bar_meters"`
	FoodSalesPositions          float64            `json:"food_sales_positions" yaml:"food_sales_positions"`
	Staffel                     *float64           `json:"staffel,omitempty" yaml:"staffel"`
	TotalVisitorsOverride       *int               `json:"total_visitors_override,omitempty" yaml:"total_visitors_override"`
	PostCalcForecasts           map[string]float64 `json:"post_calc_forecasts,omitempty" yaml:"post_calc_forecasts"`
	RealizationCosts            map[string]float64 `json:"realization_costs,omitempty" yaml:"realization_costs"`
	AdditionalCosts             map[string]float64 `json:"additional_costs,omitempty" yaml:"additional_costs"`
}

// ForecastRequest carries everything needed for a stateless calculation
type ForecastRequest struct {
	Offer            Offer             `json:"offer" yaml:"offer"`
	Products         []Product         `json:"products" yaml:"products" validate:"dive"`
	CategorySettings []CategorySetting `json:"category_settings" yaml:"category_settings" validate:"dive"`
}

type LineResult struct {
	Index           int     `json:"index"`
	ProductID       string  `json:"product_id"`
	Category        string  `json:"category,omitempty"`
	CalculationType string  `json:"calculation_type,omitempty"`
	Quantity        float64 `json:"quantity"`
	Revenue         float64 `json:"revenue"`
	Cost            float64 `json:"cost"`
	Profit          float64 `json:"profit"`
	Skipped         bool    `json:"skipped,omitempty"`
	SkipReason      string  `json:"skip_reason,omitempty"`
}

type CategoryBreakdown struct {
	Category        string  `json:"category"`
	CalculationType string  `json:"calculation_type"`
	Revenue         float64 `json:"revenue"`
	Cost            float64 `json:"cost"`
	Profit          float64 `json:"profit"`
}

type RealizationCorrection struct {
	Category   string  `json:"category"`
	Budgeted   float64 `json:"budgeted"`
	Realized   float64 `json:"realized"`
	Correction float64 `json:"correction"`
}

type Breakdown struct {
	Currency              string                  `json:"currency,omitempty"`
	StandardRevenue       float64                 `json:"standard_revenue"`
	StandardCost          float64                 `json:"standard_cost"`
	StandardProfit        float64                 `json:"standard_profit"`
	PostCalcRevenue       float64                 `json:"post_calc_revenue"`
	PostCalcCost          float64                 `json:"post_calc_cost"`
	PostCalcProfit        float64                 `json:"post_calc_profit"`
	RealizationCorrection float64                 `json:"realization_correction"`
	AdditionalCosts       float64                 `json:"additional_costs"`
	NetProfit             float64                 `json:"net_profit"`
	Lines                 []LineResult            `json:"lines"`
	Categories            []CategoryBreakdown     `json:"categories"`
	Corrections           []RealizationCorrection `json:"corrections"`
}

type Snapshot struct {
	ID            string             `json:"id"`
	OfferID       string             `json:"offer_id"`
	SignedAt      time.Time          `json:"signed_at"`
	NetProfit     float64            `json:"net_profit"`
	CategoryCosts map[string]float64 `json:"category_costs"`
	Currency      string             `json:"currency"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
