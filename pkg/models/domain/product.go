package domain

type UnitType string

const (
	UnitTypePercentageOfRevenue UnitType = "percentage_of_revenue"
	UnitTypePerUnit             UnitType = "per_unit"
)

type KeyFigure string

const (
	KeyFigureNone               KeyFigure = "none"
	KeyFigureTotalVisitors      KeyFigure = "total_visitors"
	KeyFigureExpectedRevenue    KeyFigure = "expected_revenue"
	KeyFigureBarMeters          KeyFigure = "bar_meters"
	KeyFigureFoodSalesPositions KeyFigure = "food_sales_positions"
	KeyFigureEuroSpendPerPerson KeyFigure = "euro_spend_per_person"
	KeyFigureNumberOfShowdates  KeyFigure = "number_of_showdates"
)

// IsNone reports whether the product has no key figure. An empty value is treated as none.
func (k KeyFigure) IsNone() bool {
	return k == "" || k == KeyFigureNone
}

// Product is a catalog entry. Optional values are nil when the catalog does not set them.
type Product struct {
	ID                  string
	Name                string
	Category            string
	UnitType            UnitType
	CostBasis           float64  // currency per unit
	DefaultPrice        *float64 // currency per unit
	PercentageFee       *float64 // 0-100, percentage products only
	PercentageCostBasis *float64 // 0-100, percentage products only
	KeyFigure           KeyFigure
	KeyFigureMultiplier *float64
	HasStaffel          bool
}
