package usecase

import (
	"context"
	"errors"
	"testing"

	"alu_portal/internal/domain/entities"
	mock_interfaces "alu_portal/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestProductUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewProductUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Product{
		{ID: "2", SKU: "SQ-5050", Name: "Square Tube", Category: "Tube"},
		{ID: "1", SKU: "AN-2525", Name: "Angle", Category: "Profile"},
		{ID: "3", SKU: "FB-405", Name: "Flat Bar", Category: "Bar"},
	}, nil).Times(2)

	all, err := uc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 || all[0].SKU != "AN-2525" || all[2].SKU != "SQ-5050" {
		t.Fatalf("expected sku order, got %+v", all)
	}

	tubes, _ := uc.List(context.Background(), "TUBE")
	if len(tubes) != 1 || tubes[0].ID != "2" {
		t.Fatalf("expected one tube, got %+v", tubes)
	}
}

func TestProductUseCase_QuotePrice(t *testing.T) {
	t.Run("validation before lookup", func(t *testing.T) {
		uc := NewProductUseCase(nil)
		if _, err := uc.QuotePrice(context.Background(), "p-1", 3000, 0); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(sampleProduct(), nil)

		q, err := uc.QuotePrice(context.Background(), "p-1", 3000, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.LineTotal.StringFixed(2) != "1100.00" || q.WeightKg.StringFixed(2) != "15.00" || !q.IsCustom {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})
}

func TestProductUseCase_UpdateInventory(t *testing.T) {
	stock := 12
	negative := -1
	price := decimal.NewFromInt(650)
	zero := decimal.Zero

	t.Run("validation", func(t *testing.T) {
		uc := NewProductUseCase(nil)
		if _, err := uc.UpdateInventory(context.Background(), "", InventoryUpdate{}); !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
		if _, err := uc.UpdateInventory(context.Background(), "p-1", InventoryUpdate{StockQuantity: &negative}); !errors.Is(err, ErrInvalidStock) {
			t.Fatalf("expected ErrInvalidStock, got %v", err)
		}
		if _, err := uc.UpdateInventory(context.Background(), "p-1", InventoryUpdate{UnitPrice: &zero}); !errors.Is(err, ErrInvalidUnitPrice) {
			t.Fatalf("expected ErrInvalidUnitPrice, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)
		repo.EXPECT().UpdateInventory(gomock.Any(), "p-1", &stock, nil).Return(entities.Product{}, nil)

		if _, err := uc.UpdateInventory(context.Background(), "p-1", InventoryUpdate{StockQuantity: &stock}); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)
		updated := sampleProduct()
		updated.StockQuantity = 12
		updated.UnitPrice = price
		repo.EXPECT().UpdateInventory(gomock.Any(), "p-1", &stock, &price).Return(updated, nil)

		res, err := uc.UpdateInventory(context.Background(), " p-1 ", InventoryUpdate{StockQuantity: &stock, UnitPrice: &price})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.StockQuantity != 12 || !res.UnitPrice.Equal(price) {
			t.Fatalf("unexpected product: %+v", res)
		}
	})
}
