package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"alu_portal/internal/adapter/http/handlers/mocks"
	"alu_portal/internal/app"
	"alu_portal/internal/infrastructure/metrics"
	"alu_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIOrderStatusUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	status := mocks.NewMockIOrderStatusUseCase(ctrl)
	c := &app.Container{
		Metrics:     metrics.NewRegistry(),
		Products:    mocks.NewMockIProductUseCase(ctrl),
		Carts:       mocks.NewMockICartUseCase(ctrl),
		Orders:      mocks.NewMockIOrderUseCase(ctrl),
		OrderStatus: status,
		Documents:   mocks.NewMockIDocumentUseCase(ctrl),
	}
	return NewRouter(c), status
}

func TestRouter_Ping(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("unexpected ping response: %d %s", w.Code, w.Body.String())
	}
}

func TestRouter_Metrics(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "alu_orders_placed_total") {
		t.Fatalf("unexpected metrics response: %d", w.Code)
	}
}

func TestRouter_OrdersMetricsIsNotAnOrderID(t *testing.T) {
	r, status := newTestRouter(t)
	status.EXPECT().Metrics(gomock.Any()).Return(usecase.ComputeMetrics(nil), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/metrics", nil))

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"pending_count":0`) {
		t.Fatalf("unexpected dashboard response: %d %s", w.Code, w.Body.String())
	}
}
