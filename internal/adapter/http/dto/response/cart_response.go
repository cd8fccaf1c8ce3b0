package response

import (
	"alu_portal/internal/domain/entities"
	"alu_portal/internal/usecase"
)

type CartItemResponse struct {
	Index          int     `json:"index"`
	ProductID      string  `json:"product_id"`
	SKU            string  `json:"sku"`
	Name           string  `json:"name"`
	Grade          string  `json:"grade"`
	Quantity       int     `json:"quantity"`
	CustomLengthMM int     `json:"custom_length_mm"`
	Price          float64 `json:"price"`
	IsCustom       bool    `json:"is_custom"`
	WeightKg       float64 `json:"weight_kg"`
}

type CartResponse struct {
	Items         []CartItemResponse `json:"items"`
	TotalPrice    float64            `json:"total_price"`
	ItemCount     int                `json:"item_count"`
	TotalWeightKg float64            `json:"total_weight_kg"`
	Open          bool               `json:"open"`
}

type PlaceOrderResponse struct {
	Message     string        `json:"message"`
	Order       OrderResponse `json:"order"`
	Cart        CartResponse  `json:"cart"`
	CartCleared bool          `json:"cart_cleared"`
}

func FromCartLineItem(index int, it entities.CartLineItem) CartItemResponse {
	return CartItemResponse{
		Index:          index,
		ProductID:      it.ProductID,
		SKU:            it.SKU,
		Name:           it.Name,
		Grade:          it.Grade,
		Quantity:       it.Quantity,
		CustomLengthMM: it.CustomLengthMM,
		Price:          money(it.Price),
		IsCustom:       it.IsCustom,
		WeightKg:       weight(it.WeightKg),
	}
}

func FromCartView(v usecase.CartView) CartResponse {
	items := make([]CartItemResponse, 0, len(v.Items))
	for i, it := range v.Items {
		items = append(items, FromCartLineItem(i, it))
	}
	return CartResponse{
		Items:         items,
		TotalPrice:    money(v.TotalPrice),
		ItemCount:     v.ItemCount,
		TotalWeightKg: weight(v.TotalWeightKg),
		Open:          v.Open,
	}
}

func FromPlaceOrderResult(r usecase.PlaceOrderResult) PlaceOrderResponse {
	return PlaceOrderResponse{
		Message:     "Order placed: " + r.Order.RefNumber,
		Order:       FromOrder(r.Order),
		Cart:        FromCartView(r.Cart),
		CartCleared: r.CartCleared,
	}
}
