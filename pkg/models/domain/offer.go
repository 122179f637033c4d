package domain

type OfferStatus string

const (
	OfferStatusDraft  OfferStatus = "draft"
	OfferStatusSigned OfferStatus = "signed"
)

type OfferLine struct {
	ProductID           string
	Quantity            float64
	UnitPrice           *float64
	PercentageFee       *float64
	PercentageCostBasis *float64
}

type Offer struct {
	ID                          string
	Name                        string
	Status                      OfferStatus
	Lines                       []OfferLine
	Showdates                   []string       // YYYY-MM-DD
	ExpectedVisitorsPerShowdate map[string]int // showdate -> visitors
	EuroSpendPerPerson          float64
	BarMeters                   float64
	FoodSalesPositions          float64
	Staffel                     *float64 // nil means 1
	TotalVisitorsOverride       *int
	PostCalcForecasts           map[string]float64 // product id -> forecast quantity
	RealizationCosts            map[string]float64 // category -> incurred cost
	AdditionalCosts             map[string]float64 // label -> amount
}
