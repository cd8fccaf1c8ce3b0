package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"alu_portal/internal/domain/entities"
	"alu_portal/internal/domain/pricing"
	"alu_portal/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const (
	// CartSlotPrefix namespaces the durable cart slot of each session.
	CartSlotPrefix   = "alu-cart"
	DefaultSessionID = "default"
)

// CartView is the cart as presented to the caller. Open reports whether the
// cart view should be surfaced; every successful add opens it.
type CartView struct {
	Items         []entities.CartLineItem `json:"items"`
	TotalPrice    decimal.Decimal         `json:"total_price"`
	ItemCount     int                     `json:"item_count"`
	TotalWeightKg decimal.Decimal         `json:"total_weight_kg"`
	Open          bool                    `json:"open"`
}

type AddToCartInput struct {
	ProductID      string
	CustomLengthMM int
	Quantity       int
}

// ICartUseCase is the session cart: an ordered list of priced lines that is
// written to durable storage after every mutation.
type ICartUseCase interface {
	GetCart(ctx context.Context, sessionID string) (CartView, error)
	AddItem(ctx context.Context, sessionID string, in AddToCartInput) (CartView, error)
	RemoveItem(ctx context.Context, sessionID string, index int) (CartView, error)
	Clear(ctx context.Context, sessionID string) (CartView, error)
	Snapshot(ctx context.Context, sessionID string) ([]entities.CartLineItem, error)
}

type CartUseCase struct {
	storage  interfaces.ICartStorage
	products interfaces.IProductRepository
	metrics  interfaces.IPortalMetrics

	mu    sync.Mutex
	locks map[string]*sessionLock
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(storage interfaces.ICartStorage, products interfaces.IProductRepository, metrics interfaces.IPortalMetrics) *CartUseCase {
	return &CartUseCase{
		storage:  storage,
		products: products,
		metrics:  metricsOrNoop(metrics),
		locks:    make(map[string]*sessionLock),
	}
}

func (u *CartUseCase) GetCart(ctx context.Context, sessionID string) (CartView, error) {
	sessionID = normalizeSession(sessionID)
	unlock := u.lock(sessionID)
	defer unlock()

	cart, err := u.restore(ctx, sessionID)
	if err != nil {
		// a read failure still renders as an empty cart
		log.Printf("[cart][usecase] read failed session=%s err=%v", sessionID, err)
		return viewOf(entities.NewCart(nil), false), nil
	}
	return viewOf(cart, false), nil
}

func (u *CartUseCase) AddItem(ctx context.Context, sessionID string, in AddToCartInput) (CartView, error) {
	sessionID = normalizeSession(sessionID)
	in.ProductID = strings.TrimSpace(in.ProductID)
	if in.ProductID == "" {
		return CartView{}, ErrInvalidProductID
	}
	if err := pricing.Validate(in.CustomLengthMM, in.Quantity); err != nil {
		return CartView{}, err
	}

	product, err := u.products.GetByID(ctx, in.ProductID)
	if err != nil {
		log.Printf("[cart][usecase] product lookup failed product_id=%s err=%v", in.ProductID, err)
		return CartView{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if product.ID == "" {
		return CartView{}, ErrProductNotFound
	}

	item, err := pricing.LineItem(product, in.CustomLengthMM, in.Quantity)
	if err != nil {
		return CartView{}, err
	}

	unlock := u.lock(sessionID)
	defer unlock()

	cart, err := u.restore(ctx, sessionID)
	if err != nil {
		return CartView{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	cart.Add(item)
	if err := u.persist(ctx, sessionID, cart); err != nil {
		return CartView{}, err
	}

	log.Printf("[cart][usecase] item added session=%s sku=%s length_mm=%d qty=%d price=%s", sessionID, item.SKU, item.CustomLengthMM, item.Quantity, item.Price.StringFixed(2))
	return viewOf(cart, true), nil
}

// RemoveItem deletes the line at index. A stale index leaves the cart untouched.
func (u *CartUseCase) RemoveItem(ctx context.Context, sessionID string, index int) (CartView, error) {
	sessionID = normalizeSession(sessionID)
	unlock := u.lock(sessionID)
	defer unlock()

	cart, err := u.restore(ctx, sessionID)
	if err != nil {
		return CartView{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if !cart.Remove(index) {
		log.Printf("[cart][usecase] remove ignored session=%s index=%d size=%d", sessionID, index, len(cart.Items))
		return viewOf(cart, true), nil
	}
	if err := u.persist(ctx, sessionID, cart); err != nil {
		return CartView{}, err
	}
	return viewOf(cart, true), nil
}

func (u *CartUseCase) Clear(ctx context.Context, sessionID string) (CartView, error) {
	sessionID = normalizeSession(sessionID)
	unlock := u.lock(sessionID)
	defer unlock()

	cart := entities.NewCart(nil)
	if err := u.persist(ctx, sessionID, cart); err != nil {
		return CartView{}, err
	}
	return viewOf(cart, false), nil
}

func (u *CartUseCase) Snapshot(ctx context.Context, sessionID string) ([]entities.CartLineItem, error) {
	sessionID = normalizeSession(sessionID)
	unlock := u.lock(sessionID)
	defer unlock()

	cart, err := u.restore(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return cart.Snapshot(), nil
}

// restore loads the session cart. Missing or malformed data yields an empty
// cart; only storage I/O failures are returned.
func (u *CartUseCase) restore(ctx context.Context, sessionID string) (*entities.Cart, error) {
	raw, found, err := u.storage.Read(ctx, CartSlotKey(sessionID))
	if err != nil {
		return nil, err
	}
	if !found {
		return entities.NewCart(nil), nil
	}
	items, err := DecodeCart(raw)
	if err != nil {
		u.metrics.CartRestoreCorrupted()
		log.Printf("[cart][usecase] restore corrupted session=%s err=%v, starting empty", sessionID, err)
		return entities.NewCart(nil), nil
	}
	return entities.NewCart(items), nil
}

func (u *CartUseCase) persist(ctx context.Context, sessionID string, cart *entities.Cart) error {
	raw, err := EncodeCart(cart.Items)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if err := u.storage.Write(ctx, CartSlotKey(sessionID), raw); err != nil {
		log.Printf("[cart][usecase] write failed session=%s err=%v", sessionID, err)
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// lock serializes operations on one session. Entries are dropped once no
// caller holds or waits on them.
func (u *CartUseCase) lock(sessionID string) func() {
	u.mu.Lock()
	l, ok := u.locks[sessionID]
	if !ok {
		l = &sessionLock{}
		u.locks[sessionID] = l
	}
	l.refs++
	u.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		u.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(u.locks, sessionID)
		}
		u.mu.Unlock()
	}
}

func CartSlotKey(sessionID string) string {
	return CartSlotPrefix + ":" + normalizeSession(sessionID)
}

// EncodeCart serializes the lines in insertion order.
func EncodeCart(items []entities.CartLineItem) (string, error) {
	if items == nil {
		items = []entities.CartLineItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeCart parses a stored cart and rejects lines that break the line item
// invariants.
func DecodeCart(raw string) ([]entities.CartLineItem, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: empty value", ErrRestoreCorruption)
	}
	var items []entities.CartLineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRestoreCorruption, err)
	}
	for i, it := range items {
		if !it.Valid() {
			return nil, fmt.Errorf("%w: invalid line %d", ErrRestoreCorruption, i)
		}
		if it.IsCustom != pricing.IsCustomLength(it.CustomLengthMM) {
			return nil, fmt.Errorf("%w: inconsistent custom flag on line %d", ErrRestoreCorruption, i)
		}
	}
	return items, nil
}

func viewOf(cart *entities.Cart, open bool) CartView {
	return CartView{
		Items:         cart.Snapshot(),
		TotalPrice:    cart.TotalPrice(),
		ItemCount:     cart.ItemCount(),
		TotalWeightKg: cart.TotalWeightKg(),
		Open:          open,
	}
}

func normalizeSession(sessionID string) string {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return DefaultSessionID
	}
	return sessionID
}
