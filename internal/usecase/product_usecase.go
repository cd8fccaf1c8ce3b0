package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"alu_portal/internal/domain/entities"
	"alu_portal/internal/domain/pricing"
	"alu_portal/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// PriceQuote is the live calculator result for a product cut.
type PriceQuote struct {
	ProductID      string
	UnitPrice      decimal.Decimal
	CustomLengthMM int
	Quantity       int
	LineTotal      decimal.Decimal
	WeightKg       decimal.Decimal
	IsCustom       bool
}

// InventoryUpdate carries the optional fields of an inventory edit.
type InventoryUpdate struct {
	StockQuantity *int
	UnitPrice     *decimal.Decimal
}

type IProductUseCase interface {
	List(ctx context.Context, query string) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	QuotePrice(ctx context.Context, id string, customLengthMM, quantity int) (PriceQuote, error)
	UpdateInventory(ctx context.Context, id string, in InventoryUpdate) (entities.Product, error)
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List returns the catalog ordered by SKU, optionally filtered by a
// case-insensitive match on SKU, name or category.
func (u *ProductUseCase) List(ctx context.Context, query string) ([]entities.Product, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]entities.Product, 0, len(all))
	for _, p := range all {
		if query == "" ||
			strings.Contains(strings.ToLower(p.SKU), query) ||
			strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Category), query) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) QuotePrice(ctx context.Context, id string, customLengthMM, quantity int) (PriceQuote, error) {
	if err := pricing.Validate(customLengthMM, quantity); err != nil {
		return PriceQuote{}, err
	}
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return PriceQuote{}, err
	}
	q := pricing.Price(p.UnitPrice, p.EffectiveWeightPerMeter(), customLengthMM, quantity)
	return PriceQuote{
		ProductID:      p.ID,
		UnitPrice:      p.UnitPrice,
		CustomLengthMM: customLengthMM,
		Quantity:       quantity,
		LineTotal:      q.LineTotal,
		WeightKg:       q.WeightKg,
		IsCustom:       q.IsCustom,
	}, nil
}

// UpdateInventory edits stock and list price. Lines already in carts or
// orders keep the price they were created with.
func (u *ProductUseCase) UpdateInventory(ctx context.Context, id string, in InventoryUpdate) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	if in.StockQuantity != nil && *in.StockQuantity < 0 {
		return entities.Product{}, ErrInvalidStock
	}
	if in.UnitPrice != nil && !in.UnitPrice.IsPositive() {
		return entities.Product{}, ErrInvalidUnitPrice
	}
	if in.StockQuantity == nil && in.UnitPrice == nil {
		return u.GetByID(ctx, id)
	}

	updated, err := u.repo.UpdateInventory(ctx, id, in.StockQuantity, in.UnitPrice)
	if err != nil {
		log.Printf("[product][usecase] inventory update failed product_id=%s err=%v", id, err)
		return entities.Product{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	log.Printf("[product][usecase] inventory updated product_id=%s stock=%d unit_price=%s", id, updated.StockQuantity, updated.UnitPrice.StringFixed(2))
	return updated, nil
}
