package forecast

import "github.com/shopspring/decimal"

// RoundCurrency rounds an amount to cents. Engine values stay unrounded; this is
// applied only when an amount is displayed or frozen.
func RoundCurrency(amount float64) float64 {
	v, _ := decimal.NewFromFloat(finite(amount)).Round(2).Float64()
	return v
}
