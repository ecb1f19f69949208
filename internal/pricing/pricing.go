package pricing

import "github.com/shopspring/decimal"

// AddOnSelection is the price/quantity pair for one chosen add-on.
type AddOnSelection struct {
	Price    decimal.Decimal
	Quantity int
}

// Line is the priced slice of a cart line the aggregate cares about.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// UnitPrice computes the per-unit price frozen onto a cart line at
// add-to-cart time: base price plus the variation delta plus every add-on's
// price times its chosen quantity. Later catalog edits never touch lines
// already carrying this value.
func UnitPrice(basePrice, variationDelta decimal.Decimal, addOns []AddOnSelection) decimal.Decimal {
	total := basePrice.Add(variationDelta)
	for _, addOn := range addOns {
		if addOn.Quantity <= 0 {
			continue
		}
		total = total.Add(addOn.Price.Mul(decimal.NewFromInt(int64(addOn.Quantity))))
	}
	return total
}

// LineTotal multiplies a frozen unit price by the line quantity. Quantities
// at or below zero price to zero; such lines are removed by the cart
// container before they are ever aggregated.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Subtotal sums line totals across the cart. An empty cart sums to zero.
func Subtotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(LineTotal(line.UnitPrice, line.Quantity))
	}
	return total
}
