package interfaces

import (
	"context"

	"alu_portal/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IProductRepository reads the catalog and applies inventory edits.
// Lookups return a zero Product (ID == "") when nothing matches.
type IProductRepository interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	UpdateInventory(ctx context.Context, id string, stockQuantity *int, unitPrice *decimal.Decimal) (entities.Product, error)
}
