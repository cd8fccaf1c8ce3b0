package response

import (
	"alu_portal/internal/domain/entities"
	"alu_portal/internal/usecase"
)

type ProductResponse struct {
	ID             string  `json:"id"`
	SKU            string  `json:"sku"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Grade          string  `json:"grade"`
	Dimensions     string  `json:"dimensions"`
	StockQuantity  int     `json:"stock_quantity"`
	StockLocation  string  `json:"stock_location"`
	UnitPrice      float64 `json:"unit_price"`
	WeightPerMeter float64 `json:"weight_per_meter"`
}

type PriceQuoteResponse struct {
	ProductID      string  `json:"product_id"`
	UnitPrice      float64 `json:"unit_price"`
	CustomLengthMM int     `json:"custom_length_mm"`
	Quantity       int     `json:"quantity"`
	LineTotal      float64 `json:"line_total"`
	WeightKg       float64 `json:"weight_kg"`
	IsCustom       bool    `json:"is_custom"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Name:           p.Name,
		Category:       p.Category,
		Grade:          p.Grade,
		Dimensions:     p.Dimensions,
		StockQuantity:  p.StockQuantity,
		StockLocation:  p.StockLocation,
		UnitPrice:      money(p.UnitPrice),
		WeightPerMeter: weight(p.EffectiveWeightPerMeter()),
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

func FromPriceQuote(q usecase.PriceQuote) PriceQuoteResponse {
	return PriceQuoteResponse{
		ProductID:      q.ProductID,
		UnitPrice:      money(q.UnitPrice),
		CustomLengthMM: q.CustomLengthMM,
		Quantity:       q.Quantity,
		LineTotal:      money(q.LineTotal),
		WeightKg:       weight(q.WeightKg),
		IsCustom:       q.IsCustom,
	}
}
