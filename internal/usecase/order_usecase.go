package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"time"

	"alu_portal/internal/coordinator"
	"alu_portal/internal/coordinator/sagalog"
	"alu_portal/internal/domain/entities"
	"alu_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// RefGenerator returns the candidate ref number for a placement attempt.
type RefGenerator func(attempt int) string

// DefaultRefNumber uses the trailing six digits of the millisecond clock and
// falls back to random suffixes when the store reports a collision.
func DefaultRefNumber(attempt int) string {
	if attempt == 0 {
		return fmt.Sprintf("PO-%06d", time.Now().UnixMilli()%1_000_000)
	}
	return fmt.Sprintf("PO-%06d", rand.IntN(1_000_000))
}

// OrderTracker receives orders as soon as they are committed.
type OrderTracker interface {
	Track(o entities.Order)
}

type PlaceOrderResult struct {
	Order       entities.Order
	Cart        CartView
	CartCleared bool
}

// IOrderUseCase turns a session cart into a persisted order.
type IOrderUseCase interface {
	PlaceOrder(ctx context.Context, sessionID, customerName string) (PlaceOrderResult, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	repo            interfaces.IOrderRepository
	carts           ICartUseCase
	tracker         OrderTracker
	publisher       interfaces.IOrderEventPublisher
	metrics         interfaces.IPortalMetrics
	sagaLog         sagalog.Repository
	nextRef         RefGenerator
	defaultCustomer string
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

type OrderUseCaseOption func(*OrderUseCase)

func WithOrderTracker(t OrderTracker) OrderUseCaseOption {
	return func(u *OrderUseCase) { u.tracker = t }
}

func WithOrderEvents(p interfaces.IOrderEventPublisher) OrderUseCaseOption {
	return func(u *OrderUseCase) { u.publisher = publisherOrNoop(p) }
}

func WithOrderMetrics(m interfaces.IPortalMetrics) OrderUseCaseOption {
	return func(u *OrderUseCase) { u.metrics = metricsOrNoop(m) }
}

func WithSagaLog(r sagalog.Repository) OrderUseCaseOption {
	return func(u *OrderUseCase) { u.sagaLog = r }
}

func WithRefGenerator(g RefGenerator) OrderUseCaseOption {
	return func(u *OrderUseCase) { u.nextRef = g }
}

func WithDefaultCustomer(name string) OrderUseCaseOption {
	return func(u *OrderUseCase) { u.defaultCustomer = strings.TrimSpace(name) }
}

func NewOrderUseCase(repo interfaces.IOrderRepository, carts ICartUseCase, opts ...OrderUseCaseOption) *OrderUseCase {
	u := &OrderUseCase{
		repo:            repo,
		carts:           carts,
		publisher:       noopPublisher{},
		metrics:         noopMetrics{},
		nextRef:         DefaultRefNumber,
		defaultCustomer: "ABC Construction Co., Ltd.",
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// PlaceOrder commits the session cart as one order header plus its lines.
// The cart is cleared only after both writes succeeded; any failure removes
// the partial order and leaves the cart as it was.
func (u *OrderUseCase) PlaceOrder(ctx context.Context, sessionID, customerName string) (PlaceOrderResult, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		customerName = u.defaultCustomer
	}
	log.Printf("[order][usecase] place start session=%s customer=%q", sessionID, customerName)

	lines, err := u.carts.Snapshot(ctx, sessionID)
	if err != nil {
		log.Printf("[order][usecase] cart snapshot failed session=%s err=%v", sessionID, err)
		return PlaceOrderResult{}, err
	}
	if len(lines) == 0 {
		return PlaceOrderResult{}, ErrEmptyCart
	}

	items := make([]entities.OrderItem, 0, len(lines))
	for i, l := range lines {
		if l.Quantity < 1 {
			return PlaceOrderResult{}, ErrInvalidQuantity
		}
		if l.CustomLengthMM <= 0 {
			return PlaceOrderResult{}, ErrInvalidLength
		}
		items = append(items, entities.OrderItem{
			LineNo:         i + 1,
			ProductID:      l.ProductID,
			ProductName:    l.Name,
			SKU:            l.SKU,
			Quantity:       l.Quantity,
			CustomLengthMM: l.CustomLengthMM,
			Price:          l.Price,
		})
	}

	order := entities.Order{
		CustomerName: customerName,
		TotalPrice:   entities.ItemsTotal(items),
		Status:       entities.OrderStatusPending,
	}

	sagaID := uuid.NewString()
	steps := []coordinator.Step{
		&insertOrderHeaderStep{repo: u.repo, nextRef: u.nextRef, order: &order},
		&insertOrderItemsStep{repo: u.repo, order: &order, items: items},
	}
	if err := coordinator.NewOrchestrator(sagaID, steps, u.sagaLog).Start(ctx, placementPayload(sessionID, order, items)); err != nil {
		u.metrics.OrderPlacementFailed()
		log.Printf("[order][usecase] place failed session=%s saga_id=%s err=%v", sessionID, sagaID, err)
		return PlaceOrderResult{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	order.Items = items

	result := PlaceOrderResult{Order: order}
	if view, err := u.carts.Clear(ctx, sessionID); err != nil {
		log.Printf("[order][usecase] cart clear failed after commit session=%s ref=%s err=%v", sessionID, order.RefNumber, err)
	} else {
		result.Cart = view
		result.CartCleared = true
	}

	u.metrics.OrderPlaced()
	if u.tracker != nil {
		u.tracker.Track(order)
	}
	if err := u.publisher.PublishOrderPlaced(ctx, order); err != nil {
		log.Printf("[order][usecase] order placed event failed order_id=%s err=%v", order.ID, err)
	}

	log.Printf("[order][usecase] place success order_id=%s ref=%s total=%s items=%d", order.ID, order.RefNumber, order.TotalPrice.StringFixed(2), len(items))
	return result, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func placementPayload(sessionID string, o entities.Order, items []entities.OrderItem) string {
	b, err := json.Marshal(map[string]any{
		"session_id":    sessionID,
		"customer_name": o.CustomerName,
		"total_price":   o.TotalPrice,
		"items":         items,
	})
	if err != nil {
		return ""
	}
	return string(b)
}

