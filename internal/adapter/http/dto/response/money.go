package response

import "github.com/shopspring/decimal"

// money rounds for display only; stored values keep full precision.
func money(v decimal.Decimal) float64 {
	return v.Round(2).InexactFloat64()
}

func weight(v decimal.Decimal) float64 {
	return v.Round(3).InexactFloat64()
}
