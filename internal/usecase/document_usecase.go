package usecase

import (
	"context"
	"strings"
	"time"

	"alu_portal/internal/domain/documents"
)

// IDocumentUseCase renders quotations from a live cart and receipts and
// delivery notes from persisted orders.
type IDocumentUseCase interface {
	Quotation(ctx context.Context, sessionID, customerName string) (documents.Document, error)
	Receipt(ctx context.Context, orderID string) (documents.Document, error)
	DeliveryNote(ctx context.Context, orderID string) (documents.Document, error)
}

type DocumentUseCase struct {
	carts           ICartUseCase
	orders          IOrderUseCase
	shipTo          string
	defaultCustomer string
	now             func() time.Time
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(carts ICartUseCase, orders IOrderUseCase, shipTo, defaultCustomer string) *DocumentUseCase {
	return &DocumentUseCase{
		carts:           carts,
		orders:          orders,
		shipTo:          shipTo,
		defaultCustomer: defaultCustomer,
		now:             time.Now,
	}
}

func (u *DocumentUseCase) Quotation(ctx context.Context, sessionID, customerName string) (documents.Document, error) {
	lines, err := u.carts.Snapshot(ctx, sessionID)
	if err != nil {
		return documents.Document{}, err
	}
	if len(lines) == 0 {
		return documents.Document{}, ErrEmptyCart
	}
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		customerName = u.defaultCustomer
	}
	return documents.Quotation(lines, documents.QuotationOptions{
		CustomerName: customerName,
		Date:         u.now(),
	}), nil
}

func (u *DocumentUseCase) Receipt(ctx context.Context, orderID string) (documents.Document, error) {
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return documents.Document{}, err
	}
	return documents.Receipt(o), nil
}

func (u *DocumentUseCase) DeliveryNote(ctx context.Context, orderID string) (documents.Document, error) {
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return documents.Document{}, err
	}
	return documents.DeliveryNote(o, u.shipTo), nil
}
