package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"alu_portal/internal/domain/entities"
	"alu_portal/internal/usecase/interfaces"
	mock_interfaces "alu_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type fakeCart struct {
	lines    []entities.CartLineItem
	snapErr  error
	clearErr error
	cleared  bool
}

func (f *fakeCart) GetCart(context.Context, string) (CartView, error) { return CartView{}, nil }
func (f *fakeCart) AddItem(context.Context, string, AddToCartInput) (CartView, error) {
	return CartView{}, nil
}
func (f *fakeCart) RemoveItem(context.Context, string, int) (CartView, error) { return CartView{}, nil }
func (f *fakeCart) Snapshot(context.Context, string) ([]entities.CartLineItem, error) {
	return f.lines, f.snapErr
}
func (f *fakeCart) Clear(context.Context, string) (CartView, error) {
	if f.clearErr != nil {
		return CartView{}, f.clearErr
	}
	f.cleared = true
	f.lines = nil
	return CartView{}, nil
}

type recordingTracker struct{ orders []entities.Order }

func (r *recordingTracker) Track(o entities.Order) { r.orders = append(r.orders, o) }

func twoLineCart() *fakeCart {
	return &fakeCart{lines: []entities.CartLineItem{
		{ProductID: "p-a", SKU: "SQ-5050", Name: "Square Tube", Grade: "6063-T5", Quantity: 4, CustomLengthMM: 3000, Price: dec("1100"), IsCustom: true},
		{ProductID: "p-b", SKU: "FB-405", Name: "Flat Bar", Grade: "6061-T6", Quantity: 2, CustomLengthMM: 6000, Price: dec("250.50")},
	}}
}

func fixedRefs(attempts *[]int) RefGenerator {
	return func(attempt int) string {
		*attempts = append(*attempts, attempt)
		return fmt.Sprintf("PO-%06d", attempt+1)
	}
}

func TestOrderUseCase_PlaceOrder(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		uc := NewOrderUseCase(nil, &fakeCart{})
		_, err := uc.PlaceOrder(context.Background(), "s-1", "")
		if !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("cart snapshot error", func(t *testing.T) {
		uc := NewOrderUseCase(nil, &fakeCart{snapErr: ErrPersistence})
		_, err := uc.PlaceOrder(context.Background(), "s-1", "")
		if !errors.Is(err, ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
	})

	t.Run("success creates one header and two items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		events := mock_interfaces.NewMockIOrderEventPublisher(ctrl)
		cart := twoLineCart()
		tracker := &recordingTracker{}
		var attempts []int
		uc := NewOrderUseCase(repo, cart, WithRefGenerator(fixedRefs(&attempts)), WithOrderEvents(events), WithOrderTracker(tracker))

		now := time.Now().UTC()
		gomock.InOrder(
			repo.EXPECT().CreateHeader(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
				func(_ context.Context, o entities.Order) (entities.Order, error) {
					if o.Status != entities.OrderStatusPending || o.RefNumber != "PO-000001" {
						t.Fatalf("unexpected header: %+v", o)
					}
					if o.CustomerName != "ABC Construction Co., Ltd." {
						t.Fatalf("expected default customer, got %q", o.CustomerName)
					}
					if !o.TotalPrice.Equal(dec("1350.50")) {
						t.Fatalf("expected total 1350.50, got %s", o.TotalPrice)
					}
					o.ID = "ord-1"
					o.Version = 1
					o.CreatedAt = now
					return o, nil
				},
			),
			repo.EXPECT().CreateItems(gomock.Any(), "ord-1", gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, items []entities.OrderItem) error {
					if len(items) != 2 {
						t.Fatalf("expected 2 items, got %d", len(items))
					}
					for i, it := range items {
						if it.OrderID != "ord-1" || it.LineNo != i+1 {
							t.Fatalf("unexpected item %d: %+v", i, it)
						}
					}
					if items[0].ProductName != "Square Tube" || items[0].CustomLengthMM != 3000 {
						t.Fatalf("unexpected first item: %+v", items[0])
					}
					return nil
				},
			),
			events.EXPECT().PublishOrderPlaced(gomock.Any(), gomock.Any()).Return(nil),
		)

		res, err := uc.PlaceOrder(context.Background(), "s-1", "  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.ID != "ord-1" || res.Order.RefNumber != "PO-000001" {
			t.Fatalf("unexpected order: %+v", res.Order)
		}
		if !entities.ItemsTotal(res.Order.Items).Equal(res.Order.TotalPrice) {
			t.Fatalf("items must sum to the order total")
		}
		if !cart.cleared || !res.CartCleared || res.Cart.Open {
			t.Fatalf("expected cart cleared and closed")
		}
		if len(tracker.orders) != 1 || tracker.orders[0].ID != "ord-1" {
			t.Fatalf("expected order to be tracked, got %+v", tracker.orders)
		}
	})

	t.Run("ref collision retries with a new number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		var attempts []int
		uc := NewOrderUseCase(repo, twoLineCart(), WithRefGenerator(fixedRefs(&attempts)))

		gomock.InOrder(
			repo.EXPECT().CreateHeader(gomock.Any(), gomock.Any()).Return(entities.Order{}, interfaces.ErrRefNumberTaken),
			repo.EXPECT().CreateHeader(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, o entities.Order) (entities.Order, error) {
					o.ID = "ord-2"
					return o, nil
				},
			),
			repo.EXPECT().CreateItems(gomock.Any(), "ord-2", gomock.Any()).Return(nil),
		)

		res, err := uc.PlaceOrder(context.Background(), "s-1", "Site Buyer")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.RefNumber != "PO-000002" || len(attempts) != 2 {
			t.Fatalf("expected second ref, got %s after %v", res.Order.RefNumber, attempts)
		}
		if res.Order.CustomerName != "Site Buyer" {
			t.Fatalf("expected explicit customer, got %q", res.Order.CustomerName)
		}
	})

	t.Run("ref numbers exhausted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cart := twoLineCart()
		var attempts []int
		uc := NewOrderUseCase(repo, cart, WithRefGenerator(fixedRefs(&attempts)))

		repo.EXPECT().CreateHeader(gomock.Any(), gomock.Any()).Return(entities.Order{}, interfaces.ErrRefNumberTaken).Times(maxRefAttempts)

		_, err := uc.PlaceOrder(context.Background(), "s-1", "")
		if !errors.Is(err, ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
		if cart.cleared {
			t.Fatalf("cart must not be cleared")
		}
	})

	t.Run("items failure deletes the orphaned header and keeps the cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		metrics := mock_interfaces.NewMockIPortalMetrics(ctrl)
		cart := twoLineCart()
		var attempts []int
		uc := NewOrderUseCase(repo, cart, WithRefGenerator(fixedRefs(&attempts)), WithOrderMetrics(metrics))

		gomock.InOrder(
			repo.EXPECT().CreateHeader(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, o entities.Order) (entities.Order, error) {
					o.ID = "ord-3"
					return o, nil
				},
			),
			repo.EXPECT().CreateItems(gomock.Any(), "ord-3", gomock.Any()).Return(errors.New("batch write failed")),
			repo.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, o entities.Order) error {
					if o.ID != "ord-3" || o.RefNumber != "PO-000001" {
						t.Fatalf("unexpected compensation target: %+v", o)
					}
					return nil
				},
			),
		)
		metrics.EXPECT().OrderPlacementFailed().Times(1)

		_, err := uc.PlaceOrder(context.Background(), "s-1", "")
		if !errors.Is(err, ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
		if cart.cleared || len(cart.lines) != 2 {
			t.Fatalf("cart must be kept for retry")
		}
	})

	t.Run("header failure needs no compensation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cart := twoLineCart()
		uc := NewOrderUseCase(repo, cart)

		repo.EXPECT().CreateHeader(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("throttled"))

		_, err := uc.PlaceOrder(context.Background(), "s-1", "")
		if !errors.Is(err, ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
		if cart.cleared {
			t.Fatalf("cart must not be cleared")
		}
	})

	t.Run("cart clear failure after commit still reports the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cart := twoLineCart()
		cart.clearErr = ErrPersistence
		uc := NewOrderUseCase(repo, cart)

		repo.EXPECT().CreateHeader(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				o.ID = "ord-4"
				return o, nil
			},
		)
		repo.EXPECT().CreateItems(gomock.Any(), "ord-4", gomock.Any()).Return(nil)

		res, err := uc.PlaceOrder(context.Background(), "s-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CartCleared {
			t.Fatalf("expected CartCleared=false")
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		if _, err := uc.GetByID(context.Background(), "ord-1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, errors.New("db"))

		if _, err := uc.GetByID(context.Background(), "ord-1"); !errors.Is(err, ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
	})
}

func TestDefaultRefNumber(t *testing.T) {
	for attempt := 0; attempt < 3; attempt++ {
		ref := DefaultRefNumber(attempt)
		if len(ref) != len("PO-000000") || ref[:3] != "PO-" {
			t.Fatalf("unexpected ref format %q", ref)
		}
	}
}
