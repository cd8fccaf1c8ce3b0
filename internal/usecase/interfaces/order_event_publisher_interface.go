package interfaces

import (
	"context"

	"alu_portal/internal/domain/entities"
)

// IOrderEventPublisher notifies downstream systems (fulfillment, accounting)
// about order lifecycle changes. Publishing is best effort.
type IOrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, o entities.Order) error
	PublishStatusChanged(ctx context.Context, o entities.Order, from entities.OrderStatus) error
}
