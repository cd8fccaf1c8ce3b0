// Package pricing converts a catalog price, a requested cut length and a
// quantity into a line total and a weight.
//
// Callers validate quantity >= 1 and length > 0 before pricing. The
// functions here are total over any input. The only rounding is the
// division by the standard length, carried to QuotientPlaces decimal
// places; display rounding is left to callers.
package pricing

import (
	"errors"

	"alu_portal/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidLength   = errors.New("custom length must be greater than zero")
)

var (
	standardLength = decimal.NewFromInt(entities.StandardLengthMM)
	// CutSurcharge applies only when cutting below the standard length.
	CutSurcharge = decimal.RequireFromString("1.10")
)

// QuotientPlaces is the scale kept when dividing by the standard length.
// Lengths that divide 6000 evenly come out exact.
const QuotientPlaces = 16

// Quote is the priced result for one line.
type Quote struct {
	LineTotal decimal.Decimal
	WeightKg  decimal.Decimal
	IsCustom  bool
}

// Validate checks the caller contract of Price.
func Validate(customLengthMM, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if customLengthMM <= 0 {
		return ErrInvalidLength
	}
	return nil
}

// Price computes unitPrice * (length/6000) * qty, plus 10% when length < 6000,
// and weightPerMeter * (length/1000) * qty.
func Price(unitPrice, weightPerMeter decimal.Decimal, customLengthMM, quantity int) Quote {
	length := decimal.NewFromInt(int64(customLengthMM))
	qty := decimal.NewFromInt(int64(quantity))

	// multiply first so exact ratios stay exact
	total := unitPrice.Mul(length).Mul(qty).DivRound(standardLength, QuotientPlaces)
	if customLengthMM < entities.StandardLengthMM {
		total = total.Mul(CutSurcharge)
	}

	weight := weightPerMeter.Mul(length.Shift(-3)).Mul(qty)

	return Quote{
		LineTotal: total,
		WeightKg:  weight,
		IsCustom:  IsCustomLength(customLengthMM),
	}
}

func IsCustomLength(customLengthMM int) bool {
	return customLengthMM != entities.StandardLengthMM
}

// LineItem prices a product and snapshots it into a cart line.
func LineItem(p entities.Product, customLengthMM, quantity int) (entities.CartLineItem, error) {
	if err := Validate(customLengthMM, quantity); err != nil {
		return entities.CartLineItem{}, err
	}
	q := Price(p.UnitPrice, p.EffectiveWeightPerMeter(), customLengthMM, quantity)
	return entities.CartLineItem{
		ProductID:      p.ID,
		SKU:            p.SKU,
		Name:           p.Name,
		Grade:          p.Grade,
		Quantity:       quantity,
		CustomLengthMM: customLengthMM,
		Price:          q.LineTotal,
		IsCustom:       q.IsCustom,
		WeightKg:       q.WeightKg,
	}, nil
}
