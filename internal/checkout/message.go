package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/broger/storefront-backend/internal/cart"
	"github.com/broger/storefront-backend/pkg/enums"
	"github.com/broger/storefront-backend/pkg/money"
)

// OrderContext carries everything the message assembler needs. All amounts
// are already computed; the assembler only renders.
type OrderContext struct {
	StoreName     string
	Customer      CustomerDetails
	ServiceName   string
	ServiceKind   enums.ServiceKind
	Items         []cart.CartItem
	DeliveryFee   decimal.Decimal
	FinalTotal    decimal.Decimal
	PaymentMethod string
}

// AssembleMessage renders the order hand-off message. Sections appear in a
// fixed order and the output is byte-identical for identical input.
func AssembleMessage(order OrderContext) string {
	addressLine := ""
	pickupLine := ""
	if order.ServiceKind.IsPickup() {
		pickupLine = "⏰ Pickup Time: " + pickupTimeInfo(order.Customer)
	} else {
		addressLine = "🏠 Address: " + order.Customer.Address
		if order.Customer.Landmark != "" {
			addressLine += "\n🗺️ Landmark: " + order.Customer.Landmark
		}
	}

	feeLine := ""
	if order.DeliveryFee.IsPositive() {
		feeLine = "🛵 DELIVERY FEE: " + money.Pesos(order.DeliveryFee)
	}

	notesLine := ""
	if order.Customer.Notes != "" {
		notesLine = "📝 Notes: " + order.Customer.Notes
	}

	itemLines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		itemLines = append(itemLines, itemLine(item))
	}

	lines := []string{
		"🛒 " + order.StoreName + " ORDER",
		"",
		"👤 Customer: " + order.Customer.Name,
		"📞 Contact: " + order.Customer.ContactNumber,
		"📍 Service: " + order.ServiceName,
		addressLine,
		pickupLine,
		"",
		"",
		"📋 ORDER DETAILS:",
		strings.Join(itemLines, "\n"),
		"",
		"💰 TOTAL: " + money.Pesos(order.FinalTotal),
		feeLine,
		"",
		"💳 Payment: " + order.PaymentMethod,
		"📸 Payment Screenshot: Please attach your payment receipt screenshot",
		"",
		notesLine,
		"",
		"Please confirm this order to proceed. Thank you for choosing " + order.StoreName + "! 🥟",
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func itemLine(item cart.CartItem) string {
	var b strings.Builder
	b.WriteString("• ")
	b.WriteString(item.Name)
	if item.Variation != nil {
		b.WriteString(" (" + item.Variation.Name + ")")
	}
	if len(item.AddOns) > 0 {
		names := make([]string, 0, len(item.AddOns))
		for _, addOn := range item.AddOns {
			if addOn.Quantity > 1 {
				names = append(names, fmt.Sprintf("%s x%d", addOn.Name, addOn.Quantity))
			} else {
				names = append(names, addOn.Name)
			}
		}
		b.WriteString(" + " + strings.Join(names, ", "))
	}
	fmt.Fprintf(&b, " x%d - %s", item.Quantity, money.Pesos(item.LineTotal()))
	return b.String()
}

func pickupTimeInfo(details CustomerDetails) string {
	if details.PickupWindow == enums.PickupWindowCustom {
		return details.CustomTime
	}
	return details.PickupWindow.Label()
}

// uriComponentFixups undoes the characters QueryEscape encodes but
// JavaScript's encodeURIComponent leaves literal, and swaps "+" for "%20".
var uriComponentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
	"%7E", "~",
)

// HandoffURL builds the messenger deep link carrying the assembled message,
// percent-encoded exactly as encodeURIComponent would. The server never
// follows it; opening the link is the client's action.
func HandoffURL(pageID, message string) string {
	encoded := uriComponentFixups.Replace(url.QueryEscape(message))
	return "https://m.me/" + pageID + "?text=" + encoded
}
