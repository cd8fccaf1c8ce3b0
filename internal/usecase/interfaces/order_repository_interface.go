package interfaces

import (
	"context"
	"errors"

	"alu_portal/internal/domain/entities"
)

var (
	// ErrRefNumberTaken is returned by CreateHeader when the reference number
	// is already reserved by another order.
	ErrRefNumberTaken = errors.New("reference number already taken")
	// ErrVersionConflict is returned by UpdateStatus when the stored version
	// differs from the expected one.
	ErrVersionConflict = errors.New("order version conflict")
)

// IOrderRepository abstracts the record store for orders and their items.
//
// The store must be able to:
//   - insert an order header (assigning id, created_at and version 1) while reserving its ref number
//   - insert the items of an existing header
//   - delete a header together with its items and ref reservation
//   - select orders joined with their items, newest first
//   - update status guarded by the order version
//
// Lookups and updates return a zero Order (ID == "") when the order does not exist.
type IOrderRepository interface {
	CreateHeader(ctx context.Context, o entities.Order) (entities.Order, error)
	CreateItems(ctx context.Context, orderID string, items []entities.OrderItem) error
	Delete(ctx context.Context, o entities.Order) error
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, expectedVersion int64) (entities.Order, error)
}
