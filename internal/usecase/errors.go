package usecase

import (
	"errors"

	"alu_portal/internal/domain/pricing"
	"alu_portal/internal/usecase/interfaces"
)

// Error kinds shared by the portal use cases.
var (
	ErrInvalidQuantity     = pricing.ErrInvalidQuantity
	ErrInvalidLength       = pricing.ErrInvalidLength
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrInvalidStock        = errors.New("invalid stock quantity")
	ErrInvalidUnitPrice    = errors.New("invalid unit price")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrProductNotFound     = errors.New("product not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrPersistence         = errors.New("persistence error")
	ErrIllegalTransition   = errors.New("illegal status transition")
	ErrVersionConflict     = interfaces.ErrVersionConflict
	ErrStatusWriteInFlight = errors.New("status write already in flight")
	ErrRestoreCorruption   = errors.New("cart restore corruption")
)

// IsValidation reports whether err is caused by caller input.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidQuantity, ErrInvalidLength, ErrInvalidProductID, ErrInvalidOrderID,
		ErrInvalidStatus, ErrInvalidStock, ErrInvalidUnitPrice, ErrEmptyCart,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
