package cart

import (
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shared"
)

// DiscountType selects how the discount value is interpreted
type DiscountType string

const (
	// DiscountPercentage treats the value as a percentage of the subtotal
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixed treats the value as a flat amount
	DiscountFixed DiscountType = "fixed"
)

// Totals is the result of pricing a cart. Discount carries the effective
// discount after clamping, not the requested one.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals prices the given items. Tax is a fraction of the subtotal.
// The effective discount is clamped to [0, subtotal+tax] so the total can
// never go negative; the computation is pure and idempotent.
func ComputeTotals(items []LineItem, taxRate, discountValue decimal.Decimal, discountType DiscountType) (Totals, error) {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount())
	}

	tax := subtotal.Mul(taxRate)
	taxed := subtotal.Add(tax)

	var discount decimal.Decimal
	switch discountType {
	case DiscountPercentage:
		discount = subtotal.Mul(discountValue).Div(decimal.NewFromInt(100))
	case DiscountFixed:
		discount = discountValue
	default:
		return Totals{}, shared.NewDomainError("INVALID_DISCOUNT_TYPE", "Discount type must be percentage or fixed")
	}

	// Clamp: never negative, never more than the taxed subtotal
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if discount.GreaterThan(taxed) {
		discount = taxed
	}

	total := taxed.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    total,
	}, nil
}
