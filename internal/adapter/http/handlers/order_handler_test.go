package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alu_portal/internal/adapter/http/handlers/mocks"
	"alu_portal/internal/domain/entities"
	"alu_portal/internal/usecase"
	mock_interfaces "alu_portal/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func sampleOrder(status entities.OrderStatus, version int64) entities.Order {
	return entities.Order{
		ID:           "o-1",
		RefNumber:    "PO-123456",
		CustomerName: "ABC Construction Co., Ltd.",
		TotalPrice:   decimal.RequireFromString("1350.50"),
		Status:       status,
		Version:      version,
		CreatedAt:    time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC),
		Items: []entities.OrderItem{
			{OrderID: "o-1", LineNo: 1, ProductID: "p-1", Quantity: 2, CustomLengthMM: 2500, Price: decimal.RequireFromString("650")},
			{OrderID: "o-1", LineNo: 2, ProductID: "p-2", Quantity: 1, CustomLengthMM: 6000, Price: decimal.RequireFromString("700.50")},
		},
	}
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(orders, mocks.NewMockIOrderStatusUseCase(ctrl))

		orders.EXPECT().PlaceOrder(gomock.Any(), "s-1", "").Return(usecase.PlaceOrderResult{}, usecase.ErrEmptyCart)

		r := gin.New()
		r.POST("/v1/orders", h.PlaceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", nil)
		req.Header.Set(HeaderSessionID, "s-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("persistence failure keeps cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(orders, mocks.NewMockIOrderStatusUseCase(ctrl))

		orders.EXPECT().PlaceOrder(gomock.Any(), "", "Site Co").
			Return(usecase.PlaceOrderResult{}, errors.Join(usecase.ErrPersistence, errors.New("items insert failed")))

		r := gin.New()
		r.POST("/v1/orders", h.PlaceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"customer_name":"Site Co"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(orders, mocks.NewMockIOrderStatusUseCase(ctrl))

		orders.EXPECT().PlaceOrder(gomock.Any(), "s-1", "").Return(usecase.PlaceOrderResult{
			Order:       sampleOrder(entities.OrderStatusPending, 1),
			CartCleared: true,
		}, nil)

		r := gin.New()
		r.POST("/v1/orders", h.PlaceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", nil)
		req.Header.Set(HeaderSessionID, "s-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if w.Header().Get(HeaderETag) != `"1"` {
			t.Fatalf("expected ETag \"1\", got %q", w.Header().Get(HeaderETag))
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Order placed: PO-123456" || body["cart_cleared"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestOrderHandler_ListAndMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list forwards filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		status := mocks.NewMockIOrderStatusUseCase(ctrl)
		h := NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl), status)

		status.EXPECT().ListOrders(gomock.Any(), usecase.OrderFilter{Query: "po-12", Status: "pending"}).
			Return([]entities.Order{sampleOrder(entities.OrderStatusPending, 1)}, nil)

		r := gin.New()
		r.GET("/v1/orders", h.ListOrders)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?q=po-12&status=pending", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["ref_number"] != "PO-123456" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("list invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		status := mocks.NewMockIOrderStatusUseCase(ctrl)
		h := NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl), status)

		status.EXPECT().ListOrders(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidStatus)

		r := gin.New()
		r.GET("/v1/orders", h.ListOrders)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?status=shipped", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		status := mocks.NewMockIOrderStatusUseCase(ctrl)
		h := NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl), status)

		status.EXPECT().Metrics(gomock.Any()).Return(usecase.ComputeMetrics([]entities.Order{
			sampleOrder(entities.OrderStatusPending, 1),
			sampleOrder(entities.OrderStatusCancelled, 2),
		}), nil)

		r := gin.New()
		r.GET("/v1/orders/metrics", h.Metrics)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/metrics", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["pending_count"] != float64(1) || body["booked_revenue"] != 1350.5 {
			t.Fatalf("unexpected metrics: %d %v", w.Code, body)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mocks.NewMockIOrderUseCase(ctrl)
	h := NewOrderHandler(orders, mocks.NewMockIOrderStatusUseCase(ctrl))

	orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(sampleOrder(entities.OrderStatusProcessing, 3), nil)
	orders.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, usecase.ErrOrderNotFound)

	r := gin.New()
	r.GET("/v1/orders/:id", h.GetOrder)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/o-1", nil))
	if w.Code != http.StatusOK || w.Header().Get(HeaderETag) != `"3"` {
		t.Fatalf("expected 200 with ETag \"3\", got %d %q", w.Code, w.Header().Get(HeaderETag))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid if-match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl), mocks.NewMockIOrderStatusUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/status", bytes.NewBufferString(`{"status":"processing"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderIfMatch, `"v1"`)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		status := mocks.NewMockIOrderStatusUseCase(ctrl)
		h := NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl), status)

		status.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusPending, int64(0)).
			Return(entities.Order{}, nil, usecase.ErrIllegalTransition)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/status", bytes.NewBufferString(`{"status":"pending"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("accepted with if-match version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		status := mocks.NewMockIOrderStatusUseCase(ctrl)
		h := NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl), status)

		status.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusProcessing, int64(2)).
			Return(sampleOrder(entities.OrderStatusProcessing, 2), nil, nil)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/status", bytes.NewBufferString(`{"status":"processing"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderIfMatch, `"2"`)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["write_pending"] != true {
			t.Fatalf("expected write_pending, got %v", body)
		}
	})
}

// The wait path runs against the real status use case so the durable
// write actually completes.
func TestOrderHandler_UpdateStatusWait(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("confirmed write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders := mocks.NewMockIOrderUseCase(ctrl)
		status := usecase.NewOrderStatusUseCase(repo, nil, nil)
		h := NewOrderHandler(orders, status)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Order{sampleOrder(entities.OrderStatusPending, 1)}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusProcessing, int64(1)).
			Return(sampleOrder(entities.OrderStatusProcessing, 2), nil)
		orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(sampleOrder(entities.OrderStatusProcessing, 2), nil)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/status?wait=true", bytes.NewBufferString(`{"status":"processing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if w.Header().Get(HeaderETag) != `"2"` {
			t.Fatalf("expected ETag \"2\", got %q", w.Header().Get(HeaderETag))
		}
	})

	t.Run("rejected write is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		status := usecase.NewOrderStatusUseCase(repo, nil, nil)
		h := NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl), status)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Order{sampleOrder(entities.OrderStatusPending, 1)}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusCancelled, int64(1)).
			Return(entities.Order{}, errors.New("throttled"))

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/status?wait=true", bytes.NewBufferString(`{"status":"cancelled"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestOrderHandler_UpdateStatusWithFreshETag(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	orders := mocks.NewMockIOrderUseCase(ctrl)
	status := usecase.NewOrderStatusUseCase(repo, nil, nil)
	h := NewOrderHandler(orders, status)

	// this process projected v1; another replica has since stored v2
	repo.EXPECT().List(gomock.Any()).Return([]entities.Order{sampleOrder(entities.OrderStatusPending, 1)}, nil)
	gomock.InOrder(
		orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(sampleOrder(entities.OrderStatusProcessing, 2), nil),
		orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(sampleOrder(entities.OrderStatusDelivered, 3), nil),
	)
	repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(sampleOrder(entities.OrderStatusProcessing, 2), nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusDelivered, int64(2)).
		Return(sampleOrder(entities.OrderStatusDelivered, 3), nil)

	r := gin.New()
	r.GET("/v1/orders/:id", h.GetOrder)
	r.PATCH("/v1/orders/:id/status", h.UpdateStatus)

	if _, err := status.Metrics(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/o-1", nil))
	etag := w.Header().Get(HeaderETag)
	if etag != `"2"` {
		t.Fatalf("expected ETag \"2\", got %q", etag)
	}

	req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/status?wait=true", bytes.NewBufferString(`{"status":"delivered"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderIfMatch, etag)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Header().Get(HeaderETag) != `"3"` {
		t.Fatalf("expected ETag \"3\", got %q", w.Header().Get(HeaderETag))
	}
}
