package request

import "github.com/shopspring/decimal"

type PriceQuoteRequest struct {
	CustomLengthMM int `json:"custom_length_mm"`
	Quantity       int `json:"quantity"`
}

// UpdateInventoryRequest carries optional fields; absent fields are left as is.
type UpdateInventoryRequest struct {
	StockQuantity *int             `json:"stock_quantity"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
}

func (r UpdateInventoryRequest) IsEmpty() bool {
	return r.StockQuantity == nil && r.UnitPrice == nil
}
