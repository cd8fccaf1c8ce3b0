package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"alu_portal/internal/domain/entities"
	"alu_portal/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// OrderFilter narrows the admin order list. Query matches ref number or
// customer name, case-insensitively. Status "" or "all" keeps every status.
type OrderFilter struct {
	Query    string
	Status   string
	Customer string
}

type DashboardMetrics struct {
	TotalOrders   int                          `json:"total_orders"`
	PendingCount  int                          `json:"pending_count"`
	BookedRevenue decimal.Decimal              `json:"booked_revenue"`
	ByStatus      map[entities.OrderStatus]int `json:"by_status"`
}

// ComputeMetrics derives the dashboard aggregates. Booked revenue counts
// every order that is not cancelled, whatever its fulfillment stage.
func ComputeMetrics(orders []entities.Order) DashboardMetrics {
	m := DashboardMetrics{
		BookedRevenue: decimal.Zero,
		ByStatus:      make(map[entities.OrderStatus]int, 4),
	}
	for _, st := range entities.AllOrderStatuses() {
		m.ByStatus[st] = 0
	}
	for _, o := range orders {
		m.TotalOrders++
		m.ByStatus[o.Status]++
		if o.Status == entities.OrderStatusPending {
			m.PendingCount++
		}
		if o.Status != entities.OrderStatusCancelled {
			m.BookedRevenue = m.BookedRevenue.Add(o.TotalPrice)
		}
	}
	return m
}

// StatusWrite is the durable half of a status update. It completes once the
// store accepted or rejected the write.
type StatusWrite struct {
	OrderID string
	done    chan struct{}
	err     error
}

func newStatusWrite(orderID string) *StatusWrite {
	return &StatusWrite{OrderID: orderID, done: make(chan struct{})}
}

func (w *StatusWrite) finish(err error) {
	w.err = err
	close(w.done)
}

func (w *StatusWrite) Done() <-chan struct{} { return w.done }

// Wait blocks until the write completes or ctx ends.
func (w *StatusWrite) Wait(ctx context.Context) error {
	select {
	case <-w.done:
		return w.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IOrderStatusUseCase governs status transitions over a local projection of
// the order collection and derives the dashboard from it.
type IOrderStatusUseCase interface {
	ListOrders(ctx context.Context, filter OrderFilter) ([]entities.Order, error)
	Refresh(ctx context.Context) error
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, expectedVersion int64) (entities.Order, *StatusWrite, error)
	Metrics(ctx context.Context) (DashboardMetrics, error)
	Track(o entities.Order)
}

type projectedOrder struct {
	current   entities.Order
	confirmed entities.Order
	pending   *StatusWrite
}

// DefaultProjectionMaxAge bounds how long reads are served from the
// projection before it is reloaded from the store.
const DefaultProjectionMaxAge = 2 * time.Second

type OrderStatusUseCase struct {
	repo      interfaces.IOrderRepository
	publisher interfaces.IOrderEventPublisher
	metrics   interfaces.IPortalMetrics
	maxAge    time.Duration
	now       func() time.Time

	mu          sync.RWMutex
	loaded      bool
	refreshedAt time.Time
	orders      map[string]*projectedOrder
}

type OrderStatusOption func(*OrderStatusUseCase)

// WithProjectionMaxAge sets how stale the projection may get. Zero reloads
// it on every read.
func WithProjectionMaxAge(d time.Duration) OrderStatusOption {
	return func(u *OrderStatusUseCase) {
		if d >= 0 {
			u.maxAge = d
		}
	}
}

var (
	_ IOrderStatusUseCase = (*OrderStatusUseCase)(nil)
	_ OrderTracker        = (*OrderStatusUseCase)(nil)
)

func NewOrderStatusUseCase(repo interfaces.IOrderRepository, publisher interfaces.IOrderEventPublisher, metrics interfaces.IPortalMetrics, opts ...OrderStatusOption) *OrderStatusUseCase {
	u := &OrderStatusUseCase{
		repo:      repo,
		publisher: publisherOrNoop(publisher),
		metrics:   metricsOrNoop(metrics),
		maxAge:    DefaultProjectionMaxAge,
		now:       time.Now,
		orders:    make(map[string]*projectedOrder),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Refresh reloads the projection from the store. Orders with a write in
// flight keep their optimistic state, and a confirmed state newer than the
// listed one is kept.
func (u *OrderStatusUseCase) Refresh(ctx context.Context) error {
	startedAt := u.now()
	orders, err := u.repo.List(ctx)
	if err != nil {
		log.Printf("[order-status][usecase] refresh failed err=%v", err)
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	u.mu.Lock()
	next := make(map[string]*projectedOrder, len(orders))
	for _, o := range orders {
		if p, ok := u.orders[o.ID]; ok && (p.pending != nil || p.confirmed.Version > o.Version) {
			next[o.ID] = p
			continue
		}
		next[o.ID] = &projectedOrder{current: o.Clone(), confirmed: o.Clone()}
	}
	u.orders = next
	u.loaded = true
	u.refreshedAt = startedAt
	u.publishDashboardLocked()
	u.mu.Unlock()

	log.Printf("[order-status][usecase] refreshed orders=%d", len(orders))
	return nil
}

func (u *OrderStatusUseCase) Track(o entities.Order) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.orders[o.ID] = &projectedOrder{current: o.Clone(), confirmed: o.Clone()}
	u.publishDashboardLocked()
}

func (u *OrderStatusUseCase) ListOrders(ctx context.Context, filter OrderFilter) ([]entities.Order, error) {
	if err := u.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	status := strings.ToLower(strings.TrimSpace(filter.Status))
	if status != "" && status != "all" {
		if _, ok := entities.ParseOrderStatus(status); !ok {
			return nil, ErrInvalidStatus
		}
	}
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	customer := strings.ToLower(strings.TrimSpace(filter.Customer))

	u.mu.RLock()
	out := make([]entities.Order, 0, len(u.orders))
	for _, p := range u.orders {
		o := p.current
		if status != "" && status != "all" && string(o.Status) != status {
			continue
		}
		if customer != "" && strings.ToLower(o.CustomerName) != customer {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(o.RefNumber), query) && !strings.Contains(strings.ToLower(o.CustomerName), query) {
			continue
		}
		out = append(out, o.Clone())
	}
	u.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (u *OrderStatusUseCase) Metrics(ctx context.Context) (DashboardMetrics, error) {
	if err := u.ensureLoaded(ctx); err != nil {
		return DashboardMetrics{}, err
	}
	u.mu.RLock()
	defer u.mu.RUnlock()
	return ComputeMetrics(u.snapshotLocked()), nil
}

// UpdateStatus applies the transition to the projection immediately and
// writes it to the store in the background. When the write fails the
// projection reverts to the last confirmed state; a version conflict also
// re-syncs the order from the store. expectedVersion 0 means "the version
// currently projected"; a version newer than the projected one reloads the
// order before it is compared.
func (u *OrderStatusUseCase) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, expectedVersion int64) (entities.Order, *StatusWrite, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, nil, ErrInvalidOrderID
	}
	status, ok := entities.ParseOrderStatus(string(status))
	if !ok {
		return entities.Order{}, nil, ErrInvalidStatus
	}
	if err := u.ensureLoaded(ctx); err != nil {
		return entities.Order{}, nil, err
	}
	if err := u.ensureProjected(ctx, orderID); err != nil {
		return entities.Order{}, nil, err
	}

	u.mu.Lock()
	p := u.orders[orderID]
	if p != nil && p.pending == nil && expectedVersion > p.confirmed.Version {
		// the caller read a version this process has not seen yet
		u.mu.Unlock()
		u.resync(ctx, orderID)
		u.mu.Lock()
		p = u.orders[orderID]
	}
	if p == nil {
		u.mu.Unlock()
		return entities.Order{}, nil, ErrOrderNotFound
	}
	if p.pending != nil {
		u.mu.Unlock()
		return entities.Order{}, nil, ErrStatusWriteInFlight
	}
	if expectedVersion > 0 && expectedVersion != p.confirmed.Version {
		u.mu.Unlock()
		return entities.Order{}, nil, fmt.Errorf("%w: expected version %d, current %d", ErrVersionConflict, expectedVersion, p.confirmed.Version)
	}
	from := p.current.Status
	if !from.CanTransitionTo(status) {
		u.mu.Unlock()
		return entities.Order{}, nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, status)
	}

	write := newStatusWrite(orderID)
	p.pending = write
	p.current.Status = status
	p.current.UpdatedAt = time.Now().UTC()
	optimistic := p.current.Clone()
	version := p.confirmed.Version
	u.publishDashboardLocked()
	u.mu.Unlock()

	log.Printf("[order-status][usecase] optimistic update order_id=%s from=%s to=%s version=%d", orderID, from, status, version)
	go u.persist(context.WithoutCancel(ctx), orderID, from, status, version, write)

	return optimistic, write, nil
}

func (u *OrderStatusUseCase) persist(ctx context.Context, orderID string, from, to entities.OrderStatus, version int64, write *StatusWrite) {
	updated, err := u.repo.UpdateStatus(ctx, orderID, to, version)
	if err == nil && updated.ID == "" {
		err = ErrOrderNotFound
	}

	if err != nil {
		u.metrics.StatusWriteFailed()
		log.Printf("[order-status][usecase] durable write failed order_id=%s to=%s err=%v, rolling back", orderID, to, err)

		u.mu.Lock()
		if p, ok := u.orders[orderID]; ok {
			p.current = p.confirmed.Clone()
			p.pending = nil
		}
		u.publishDashboardLocked()
		u.mu.Unlock()

		if errors.Is(err, interfaces.ErrVersionConflict) {
			u.resync(ctx, orderID)
		}
		if !errors.Is(err, ErrVersionConflict) && !errors.Is(err, ErrOrderNotFound) {
			err = fmt.Errorf("%w: %w", ErrPersistence, err)
		}
		write.finish(err)
		return
	}

	u.mu.Lock()
	if p, ok := u.orders[orderID]; ok {
		updated.Items = p.confirmed.Items
		p.current = updated.Clone()
		p.confirmed = updated.Clone()
		p.pending = nil
	}
	u.publishDashboardLocked()
	u.mu.Unlock()

	log.Printf("[order-status][usecase] durable write ok order_id=%s to=%s version=%d", orderID, to, updated.Version)
	if err := u.publisher.PublishStatusChanged(ctx, updated, from); err != nil {
		log.Printf("[order-status][usecase] status event failed order_id=%s err=%v", orderID, err)
	}
	write.finish(nil)
}

func (u *OrderStatusUseCase) resync(ctx context.Context, orderID string) {
	fresh, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[order-status][usecase] resync failed order_id=%s err=%v", orderID, err)
		return
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if fresh.ID == "" {
		delete(u.orders, orderID)
	} else if p, ok := u.orders[orderID]; ok && p.pending == nil {
		p.current = fresh.Clone()
		p.confirmed = fresh.Clone()
	}
	u.publishDashboardLocked()
}

// ensureLoaded reloads the projection when it was never loaded or is older
// than maxAge, so writes made by other processes show up.
func (u *OrderStatusUseCase) ensureLoaded(ctx context.Context) error {
	u.mu.RLock()
	fresh := u.loaded && u.maxAge > 0 && u.now().Sub(u.refreshedAt) < u.maxAge
	u.mu.RUnlock()
	if fresh {
		return nil
	}
	return u.Refresh(ctx)
}

// ensureProjected pulls an order the projection has not seen yet.
func (u *OrderStatusUseCase) ensureProjected(ctx context.Context, orderID string) error {
	u.mu.RLock()
	_, ok := u.orders[orderID]
	u.mu.RUnlock()
	if ok {
		return nil
	}

	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if o.ID == "" {
		return ErrOrderNotFound
	}

	u.mu.Lock()
	if _, ok := u.orders[orderID]; !ok {
		u.orders[orderID] = &projectedOrder{current: o.Clone(), confirmed: o.Clone()}
	}
	u.mu.Unlock()
	return nil
}

func (u *OrderStatusUseCase) snapshotLocked() []entities.Order {
	out := make([]entities.Order, 0, len(u.orders))
	for _, p := range u.orders {
		out = append(out, p.current)
	}
	return out
}

func (u *OrderStatusUseCase) publishDashboardLocked() {
	m := ComputeMetrics(u.snapshotLocked())
	u.metrics.SetDashboard(m.PendingCount, m.BookedRevenue.InexactFloat64())
}
