package domain

type CalculationType string

const (
	CalculationTypeStandard  CalculationType = "standard"
	CalculationTypePostEvent CalculationType = "post_event"
)

// CategoryTransactionProcessing is the one category whose visitor based key figures
// are taken from the showdate forecast instead of the ticketing override.
const CategoryTransactionProcessing = "transaction_processing"

type CategorySetting struct {
	Category        string
	CalculationType CalculationType
}
