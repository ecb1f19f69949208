package checkout

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/broger/storefront-backend/internal/cart"
	"github.com/broger/storefront-backend/pkg/enums"
)

func deliveryOrderFixture() OrderContext {
	spicy := &cart.SelectedVariation{ID: uuid.New(), Name: "Spicy", PriceDelta: d("10")}
	return OrderContext{
		StoreName: "Bro-Ger",
		Customer: CustomerDetails{
			Name:          "Ana Cruz",
			ContactNumber: "09171234567",
			Address:       "123 Mabini St",
			Landmark:      "Beside the bakery",
		},
		ServiceName: "In-House Delivery",
		ServiceKind: enums.ServiceKindInHouseDelivery,
		Items: []cart.CartItem{
			{
				Name:      "Classic Burger",
				Variation: spicy,
				AddOns: []cart.SelectedAddOn{
					{Name: "Cheese", Price: d("5"), Quantity: 2},
					{Name: "Egg", Price: d("15"), Quantity: 1},
				},
				UnitPrice: d("155"),
				Quantity:  2,
			},
			{Name: "Iced Tea", UnitPrice: d("35"), Quantity: 1},
		},
		DeliveryFee:   d("40"),
		FinalTotal:    d("385"),
		PaymentMethod: "GCash",
	}
}

func TestAssembleMessageDelivery(t *testing.T) {
	t.Parallel()

	msg := AssembleMessage(deliveryOrderFixture())

	for _, want := range []string{
		"🛒 Bro-Ger ORDER",
		"👤 Customer: Ana Cruz",
		"📞 Contact: 09171234567",
		"📍 Service: In-House Delivery",
		"🏠 Address: 123 Mabini St",
		"🗺️ Landmark: Beside the bakery",
		"📋 ORDER DETAILS:",
		"• Classic Burger (Spicy) + Cheese x2, Egg x2 - ₱310",
		"• Iced Tea x1 - ₱35",
		"💰 TOTAL: ₱385",
		"🛵 DELIVERY FEE: ₱40",
		"💳 Payment: GCash",
		"📸 Payment Screenshot: Please attach your payment receipt screenshot",
		"Please confirm this order to proceed. Thank you for choosing Bro-Ger! 🥟",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "⏰ Pickup Time") {
		t.Fatalf("delivery message must not carry a pickup time:\n%s", msg)
	}
}

func TestAssembleMessagePickupOmitsFeeAndAddress(t *testing.T) {
	t.Parallel()

	order := deliveryOrderFixture()
	order.ServiceName = "Pickup"
	order.ServiceKind = enums.ServiceKindPickup
	order.Customer.PickupWindow = enums.PickupWindow15To20
	order.DeliveryFee = decimal.Zero
	order.FinalTotal = d("345")

	msg := AssembleMessage(order)

	if strings.Contains(msg, "DELIVERY FEE") {
		t.Fatalf("fee line must be omitted when the fee is zero:\n%s", msg)
	}
	if strings.Contains(msg, "🏠 Address") {
		t.Fatalf("pickup message must not carry an address:\n%s", msg)
	}
	if !strings.Contains(msg, "⏰ Pickup Time: 15-20 minutes") {
		t.Fatalf("expected pickup window label:\n%s", msg)
	}
}

func TestAssembleMessageCustomPickupTime(t *testing.T) {
	t.Parallel()

	order := deliveryOrderFixture()
	order.ServiceKind = enums.ServiceKindPickup
	order.Customer.PickupWindow = enums.PickupWindowCustom
	order.Customer.CustomTime = "6:30 PM"
	order.DeliveryFee = decimal.Zero

	msg := AssembleMessage(order)
	if !strings.Contains(msg, "⏰ Pickup Time: 6:30 PM") {
		t.Fatalf("expected custom pickup time:\n%s", msg)
	}
}

func TestAssembleMessageNotesLine(t *testing.T) {
	t.Parallel()

	order := deliveryOrderFixture()
	if strings.Contains(AssembleMessage(order), "📝 Notes") {
		t.Fatal("notes line must be omitted when notes are empty")
	}
	order.Customer.Notes = "No onions please"
	if !strings.Contains(AssembleMessage(order), "📝 Notes: No onions please") {
		t.Fatal("expected notes line")
	}
}

func TestAssembleMessageDeterministic(t *testing.T) {
	t.Parallel()

	order := deliveryOrderFixture()
	first := AssembleMessage(order)
	second := AssembleMessage(order)
	if first != second {
		t.Fatal("identical input must produce byte-identical output")
	}
	if strings.HasPrefix(first, "\n") || strings.HasSuffix(first, "\n") {
		t.Fatal("message must be trimmed")
	}
}

func TestHandoffURL(t *testing.T) {
	t.Parallel()

	got := HandoffURL("110122211630459", "hello world & more")
	want := "https://m.me/110122211630459?text=hello%20world%20%26%20more"
	if got != want {
		t.Fatalf("HandoffURL = %q, want %q", got, want)
	}
}

func TestHandoffURLKeepsUnreservedMarksLiteral(t *testing.T) {
	t.Parallel()

	got := HandoffURL("110122211630459", "Thank you! (2x) ~'best'~ *")
	want := "https://m.me/110122211630459?text=Thank%20you!%20(2x)%20~'best'~%20*"
	if got != want {
		t.Fatalf("HandoffURL = %q, want %q", got, want)
	}
}
