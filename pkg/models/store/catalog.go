package store

type ProductRecord struct {
	ID                  string
	Name                string
	Category            string
	UnitType            string
	CostBasis           float64
	DefaultPrice        *float64
	PercentageFee       *float64
	PercentageCostBasis *float64
	KeyFigure           string
	KeyFigureMultiplier *float64
	HasStaffel          bool
}

type CategorySettingRecord struct {
	Category        string
	CalculationType string
}
