package handlers

import (
	"errors"
	"net/http"

	"alu_portal/internal/usecase"
	"alu_portal/pkg"
)

const (
	HeaderSessionID = "X-Session-ID"
	HeaderIfMatch   = "If-Match"
	HeaderETag      = "ETag"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidIndex   = pkg.NewDomainErrorSimple("INVALID_INDEX", "Cart index must be an integer", http.StatusBadRequest)
	errInvalidVersion = pkg.NewDomainErrorSimple("INVALID_VERSION", "If-Match must carry a positive order version", http.StatusBadRequest)
)

// mapPortalError translates use case errors into API errors.
func mapPortalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Cart is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Quantity must be at least 1", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLength):
		return pkg.NewDomainErrorSimple("INVALID_LENGTH", "Length must be greater than 0 mm", http.StatusBadRequest)
	case usecase.IsValidation(err):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Order was modified by someone else", http.StatusConflict)
	case errors.Is(err, usecase.ErrStatusWriteInFlight):
		return pkg.NewDomainErrorSimple("STATUS_WRITE_IN_FLIGHT", "A status change for this order is still being saved", http.StatusConflict)
	case errors.Is(err, usecase.ErrPersistence):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "The record store rejected the operation", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
