// Package pricing computes line item and order totals. All functions are
// pure; callers pass the catalog product alongside the item.
package pricing

import (
	"math"

	"go-printpos-ws/internal/model"
)

// LinePrice computes the price of a single line item against its catalog
// product. A nil product (deleted or unknown reference) yields 0 rather
// than an error. Dimension products multiply by width and height, with
// missing dimensions treated as 0.
func LinePrice(item model.OrderItem, product *model.Product) int64 {
	if product == nil {
		return 0
	}

	quantity := int64(item.Quantity)

	switch product.CalculationMethod {
	case model.CalcDimension:
		area := item.Width * item.Height
		return int64(math.Round(area * float64(product.Price) * float64(quantity)))
	case model.CalcUnit, model.CalcPackage:
		return product.Price * quantity
	default:
		return 0
	}
}

// OrderTotals sums stored line prices into a subtotal and applies
// discount and other fees. The total is not floored at zero: a discount
// exceeding the subtotal yields a negative total.
func OrderTotals(items []model.OrderItem, discount, otherFees int64) (subtotal, totalCost int64) {
	for _, item := range items {
		subtotal += item.LinePrice
	}
	totalCost = subtotal - discount + otherFees
	return subtotal, totalCost
}

// CoerceQuantity normalizes user input at the boundary: absent or
// non-positive quantities become 1. The engine itself never coerces.
func CoerceQuantity(quantity int) int {
	if quantity <= 0 {
		return 1
	}
	return quantity
}
