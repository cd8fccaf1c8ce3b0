package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// StandardLengthMM is the length of one standard bar, the pricing reference.
const StandardLengthMM = 6000

// Order is the header of a placed purchase order.
//
// Storage model (DynamoDB):
//   - orders PK: id
//   - order_refs PK: ref_number (uniqueness guard)
//   - order_items PK: order_id, SK: line_no
//
// TotalPrice is fixed at creation and never recomputed.
// Version is bumped on every status write and doubles as the ETag.
type Order struct {
	ID           string          `json:"id"`
	RefNumber    string          `json:"ref_number"`
	CustomerName string          `json:"customer_name"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Status       OrderStatus     `json:"status"`
	Version      int64           `json:"version"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Items        []OrderItem     `json:"items,omitempty"`
}

// OrderItem is a line of an order, owned by exactly one Order.
type OrderItem struct {
	OrderID        string          `json:"order_id"`
	LineNo         int             `json:"line_no"`
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	SKU            string          `json:"sku"`
	Quantity       int             `json:"quantity"`
	CustomLengthMM int             `json:"custom_length"`
	Price          decimal.Decimal `json:"price"`
}

func (i OrderItem) IsCustom() bool {
	return i.CustomLengthMM != StandardLengthMM
}

// ItemsTotal sums the line prices.
func ItemsTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price)
	}
	return total
}

// Clone returns a deep copy so projections never share item slices.
func (o Order) Clone() Order {
	out := o
	if o.Items != nil {
		out.Items = make([]OrderItem, len(o.Items))
		copy(out.Items, o.Items)
	}
	return out
}
