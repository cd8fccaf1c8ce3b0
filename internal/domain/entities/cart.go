package entities

import "github.com/shopspring/decimal"

// CartLineItem is a priced snapshot of a product cut to a length.
// Price and IsCustom are cached at add-time and never re-derived from the catalog.
type CartLineItem struct {
	ProductID      string          `json:"productId"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Grade          string          `json:"grade"`
	Quantity       int             `json:"quantity"`
	CustomLengthMM int             `json:"customLength"`
	Price          decimal.Decimal `json:"price"`
	IsCustom       bool            `json:"isCustom"`
	WeightKg       decimal.Decimal `json:"weightKg"`
}

func (i CartLineItem) Valid() bool {
	return i.ProductID != "" && i.Quantity >= 1 && i.CustomLengthMM > 0
}

// Cart is an ordered sequence of line items owned by a single session.
type Cart struct {
	Items []CartLineItem
}

func NewCart(items []CartLineItem) *Cart {
	c := &Cart{Items: make([]CartLineItem, 0, len(items))}
	c.Items = append(c.Items, items...)
	return c
}

func (c *Cart) Add(item CartLineItem) {
	c.Items = append(c.Items, item)
}

// Remove deletes the item at index. Out-of-range indexes are ignored.
func (c *Cart) Remove(index int) bool {
	if index < 0 || index >= len(c.Items) {
		return false
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	return true
}

func (c *Cart) Clear() {
	c.Items = c.Items[:0]
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Snapshot returns a copy of the items in insertion order.
func (c *Cart) Snapshot() []CartLineItem {
	out := make([]CartLineItem, len(c.Items))
	copy(out, c.Items)
	return out
}

func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Price)
	}
	return total
}

func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) TotalWeightKg() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.WeightKg)
	}
	return total
}
