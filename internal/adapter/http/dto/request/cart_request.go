package request

type AddCartItemRequest struct {
	ProductID      string `json:"product_id" binding:"required"`
	CustomLengthMM int    `json:"custom_length_mm"`
	Quantity       int    `json:"quantity"`
}

type PlaceOrderRequest struct {
	CustomerName string `json:"customer_name"`
}
