package entities

import "github.com/shopspring/decimal"

// DefaultWeightPerMeter is used for products without a stored kg/m value.
var DefaultWeightPerMeter = decimal.RequireFromString("1.25")

// Product is a catalog entry. UnitPrice is the price of one standard 6000mm bar.
//
// Storage model (DynamoDB):
//   - PK: id
type Product struct {
	ID             string          `json:"id"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Grade          string          `json:"grade"`
	Dimensions     string          `json:"dimensions"`
	StockQuantity  int             `json:"stock_quantity"`
	StockLocation  string          `json:"stock_location"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	WeightPerMeter decimal.Decimal `json:"weight_per_meter"`
}

func (p Product) EffectiveWeightPerMeter() decimal.Decimal {
	if p.WeightPerMeter.IsPositive() {
		return p.WeightPerMeter
	}
	return DefaultWeightPerMeter
}
