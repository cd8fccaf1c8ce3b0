package response

import (
	"time"

	"alu_portal/internal/domain/entities"
	"alu_portal/internal/usecase"
)

type OrderItemResponse struct {
	LineNo         int     `json:"line_no"`
	ProductID      string  `json:"product_id"`
	ProductName    string  `json:"product_name"`
	SKU            string  `json:"sku"`
	Quantity       int     `json:"quantity"`
	CustomLengthMM int     `json:"custom_length_mm"`
	IsCustom       bool    `json:"is_custom"`
	Price          float64 `json:"price"`
}

type OrderResponse struct {
	ID           string              `json:"id"`
	RefNumber    string              `json:"ref_number"`
	CustomerName string              `json:"customer_name"`
	TotalPrice   float64             `json:"total_price"`
	Status       string              `json:"status"`
	Version      int64               `json:"version"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	Items        []OrderItemResponse `json:"items"`
}

type OrderStatusResponse struct {
	Order        OrderResponse `json:"order"`
	WritePending bool          `json:"write_pending"`
}

type DashboardResponse struct {
	TotalOrders   int            `json:"total_orders"`
	PendingCount  int            `json:"pending_count"`
	BookedRevenue float64        `json:"booked_revenue"`
	ByStatus      map[string]int `json:"by_status"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			LineNo:         it.LineNo,
			ProductID:      it.ProductID,
			ProductName:    it.ProductName,
			SKU:            it.SKU,
			Quantity:       it.Quantity,
			CustomLengthMM: it.CustomLengthMM,
			IsCustom:       it.IsCustom(),
			Price:          money(it.Price),
		})
	}
	return OrderResponse{
		ID:           o.ID,
		RefNumber:    o.RefNumber,
		CustomerName: o.CustomerName,
		TotalPrice:   money(o.TotalPrice),
		Status:       string(o.Status),
		Version:      o.Version,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		Items:        items,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func FromDashboard(m usecase.DashboardMetrics) DashboardResponse {
	byStatus := make(map[string]int, len(m.ByStatus))
	for st, n := range m.ByStatus {
		byStatus[string(st)] = n
	}
	return DashboardResponse{
		TotalOrders:   m.TotalOrders,
		PendingCount:  m.PendingCount,
		BookedRevenue: money(m.BookedRevenue),
		ByStatus:      byStatus,
	}
}
