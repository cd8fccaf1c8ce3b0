package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"alu_portal/internal/coordinator"
	"alu_portal/internal/domain/entities"
	"alu_portal/internal/usecase/interfaces"
)

const maxRefAttempts = 5

var errRefNumbersExhausted = errors.New("could not reserve a unique reference number")

// insertOrderHeaderStep writes the header and reserves its ref number. On
// compensation it deletes the header together with anything written under it.
type insertOrderHeaderStep struct {
	repo    interfaces.IOrderRepository
	nextRef RefGenerator
	order   *entities.Order
}

var _ coordinator.Step = (*insertOrderHeaderStep)(nil)

func (s *insertOrderHeaderStep) Name() string { return "insert_order_header" }

func (s *insertOrderHeaderStep) Execute(ctx context.Context) error {
	for attempt := 0; attempt < maxRefAttempts; attempt++ {
		candidate := *s.order
		candidate.RefNumber = s.nextRef(attempt)

		created, err := s.repo.CreateHeader(ctx, candidate)
		if errors.Is(err, interfaces.ErrRefNumberTaken) {
			log.Printf("[order][saga] ref collision ref=%s attempt=%d", candidate.RefNumber, attempt)
			continue
		}
		if err != nil {
			return fmt.Errorf("insert order header: %w", err)
		}
		*s.order = created
		return nil
	}
	return errRefNumbersExhausted
}

func (s *insertOrderHeaderStep) Compensate(ctx context.Context) error {
	if s.order.ID == "" {
		return nil
	}
	log.Printf("[order][saga] deleting orphaned header order_id=%s ref=%s", s.order.ID, s.order.RefNumber)
	return s.repo.Delete(ctx, *s.order)
}

// insertOrderItemsStep writes every line under the header created before it.
type insertOrderItemsStep struct {
	repo  interfaces.IOrderRepository
	order *entities.Order
	items []entities.OrderItem
}

var _ coordinator.Step = (*insertOrderItemsStep)(nil)

func (s *insertOrderItemsStep) Name() string { return "insert_order_items" }

func (s *insertOrderItemsStep) Execute(ctx context.Context) error {
	for i := range s.items {
		s.items[i].OrderID = s.order.ID
	}
	if err := s.repo.CreateItems(ctx, s.order.ID, s.items); err != nil {
		return fmt.Errorf("insert order items: %w", err)
	}
	return nil
}

// Compensate is a no-op: items are removed with their header.
func (s *insertOrderItemsStep) Compensate(context.Context) error { return nil }
