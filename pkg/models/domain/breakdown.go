package domain

// LineResult is the contribution of a single offer line.
type LineResult struct {
	Index           int
	ProductID       string
	Category        string
	CalculationType CalculationType
	Quantity        float64 // effective or forecast quantity, 0 for percentage lines
	Revenue         float64
	Cost            float64
	Profit          float64
	Skipped         bool
	SkipReason      string
}

// CategoryBreakdown holds the totals of one category within one calculation bucket.
type CategoryBreakdown struct {
	Category        string
	CalculationType CalculationType
	Revenue         float64
	Cost            float64
	Profit          float64
}

type RealizationCorrection struct {
	Category   string
	Budgeted   float64
	Realized   float64
	Correction float64 // Budgeted - Realized
}

type Breakdown struct {
	StandardRevenue       float64
	StandardCost          float64
	StandardProfit        float64
	PostCalcRevenue       float64
	PostCalcCost          float64
	PostCalcProfit        float64
	RealizationCorrection float64
	AdditionalCosts       float64
	NetProfit             float64

	Lines       []LineResult
	Categories  []CategoryBreakdown
	Corrections []RealizationCorrection
}
