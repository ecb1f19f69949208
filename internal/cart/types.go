package cart

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/broger/storefront-backend/internal/pricing"
)

// SelectedVariation is the variation snapshot frozen onto a cart line.
type SelectedVariation struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	PriceDelta decimal.Decimal `json:"price_delta"`
}

// SelectedAddOn is an add-on snapshot frozen onto a cart line.
type SelectedAddOn struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// CartItem is one configured line in a session cart. UnitPrice is computed
// once when the line is created and never recomputed from the catalog.
type CartItem struct {
	LineID     string             `json:"line_id"`
	MenuItemID uuid.UUID          `json:"menu_item_id"`
	Name       string             `json:"name"`
	BasePrice  decimal.Decimal    `json:"base_price"`
	Variation  *SelectedVariation `json:"variation,omitempty"`
	AddOns     []SelectedAddOn    `json:"add_ons,omitempty"`
	UnitPrice  decimal.Decimal    `json:"unit_price"`
	Quantity   int                `json:"quantity"`
}

// LineTotal is the line's frozen unit price times its quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return pricing.LineTotal(i.UnitPrice, i.Quantity)
}

// Cart is the full session cart as stored in redis.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Subtotal sums line totals; zero for an empty cart.
func (c *Cart) Subtotal() decimal.Decimal {
	lines := make([]pricing.Line, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, pricing.Line{UnitPrice: item.UnitPrice, Quantity: item.Quantity})
	}
	return pricing.Subtotal(lines)
}

// ItemCount sums quantities across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// LineKey derives the deterministic configuration key for a line: menu item
// id, variation id, and the sorted add-on id/qty pairs. Two adds with the
// same configuration always map to the same line.
func LineKey(menuItemID uuid.UUID, variationID *uuid.UUID, addOns []SelectedAddOn) string {
	parts := make([]string, 0, 2+len(addOns))
	parts = append(parts, menuItemID.String())
	if variationID != nil {
		parts = append(parts, variationID.String())
	} else {
		parts = append(parts, "base")
	}
	addOnParts := make([]string, 0, len(addOns))
	for _, addOn := range addOns {
		addOnParts = append(addOnParts, fmt.Sprintf("%s:%d", addOn.ID, addOn.Quantity))
	}
	sort.Strings(addOnParts)
	parts = append(parts, addOnParts...)
	return strings.Join(parts, "|")
}
