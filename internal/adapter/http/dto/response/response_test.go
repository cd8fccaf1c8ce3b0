package response

import (
	"testing"
	"time"

	"alu_portal/internal/domain/entities"
	"alu_portal/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromCartView(t *testing.T) {
	v := usecase.CartView{
		Items: []entities.CartLineItem{{
			ProductID:      "p-1",
			SKU:            "AL-6063-50",
			Quantity:       2,
			CustomLengthMM: 3000,
			Price:          decimal.RequireFromString("1375.004"),
			IsCustom:       true,
			WeightKg:       decimal.RequireFromString("7.5"),
		}},
		TotalPrice:    decimal.RequireFromString("1375.004"),
		ItemCount:     2,
		TotalWeightKg: decimal.RequireFromString("7.5"),
		Open:          true,
	}

	res := FromCartView(v)
	if len(res.Items) != 1 || res.Items[0].Index != 0 || res.Items[0].CustomLengthMM != 3000 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.Items[0].Price != 1375.0 || res.TotalPrice != 1375.0 {
		t.Fatalf("expected prices rounded to 2 decimals, got %+v", res)
	}
	if res.ItemCount != 2 || res.TotalWeightKg != 7.5 || !res.Open {
		t.Fatalf("unexpected totals: %+v", res)
	}
}

func TestFromCartView_EmptyItemsIsArray(t *testing.T) {
	res := FromCartView(usecase.CartView{})
	if res.Items == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:           "o-1",
		RefNumber:    "PO-123456",
		CustomerName: "ABC Construction Co., Ltd.",
		TotalPrice:   decimal.RequireFromString("1350.50"),
		Status:       entities.OrderStatusPending,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
		Items: []entities.OrderItem{
			{LineNo: 1, CustomLengthMM: 2500, Quantity: 2, Price: decimal.RequireFromString("650")},
			{LineNo: 2, CustomLengthMM: 6000, Quantity: 1, Price: decimal.RequireFromString("700.50")},
		},
	}

	res := FromOrder(o)
	if res.ID != "o-1" || res.RefNumber != "PO-123456" || res.Status != "pending" || res.Version != 1 {
		t.Fatalf("unexpected header: %+v", res)
	}
	if res.TotalPrice != 1350.5 || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.Items) != 2 || !res.Items[0].IsCustom || res.Items[1].IsCustom {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
}

func TestFromDashboard(t *testing.T) {
	m := usecase.DashboardMetrics{
		TotalOrders:   3,
		PendingCount:  1,
		BookedRevenue: decimal.RequireFromString("2000"),
		ByStatus: map[entities.OrderStatus]int{
			entities.OrderStatusPending:   1,
			entities.OrderStatusCancelled: 2,
		},
	}

	res := FromDashboard(m)
	if res.PendingCount != 1 || res.BookedRevenue != 2000 || res.ByStatus["cancelled"] != 2 {
		t.Fatalf("unexpected dashboard: %+v", res)
	}
}

func TestFromProduct_DefaultWeight(t *testing.T) {
	res := FromProduct(entities.Product{ID: "p-1", UnitPrice: decimal.RequireFromString("1250")})
	if res.UnitPrice != 1250 || res.WeightPerMeter != 1.25 {
		t.Fatalf("unexpected product: %+v", res)
	}
}
