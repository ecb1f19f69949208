package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/broger/storefront-backend/pkg/enums"
)

// DeliveryFee returns the flat fee when the order uses in-house delivery and
// the subtotal is below the free-delivery threshold. Pickup and third-party
// delivery never carry the fee, and a subtotal at or above the threshold
// waives it.
func DeliveryFee(kind enums.ServiceKind, subtotal, threshold, fee decimal.Decimal) decimal.Decimal {
	if kind != enums.ServiceKindInHouseDelivery {
		return decimal.Zero
	}
	if subtotal.GreaterThanOrEqual(threshold) {
		return decimal.Zero
	}
	return fee
}

// FinalTotal is the subtotal plus the delivery fee.
func FinalTotal(subtotal, fee decimal.Decimal) decimal.Decimal {
	return subtotal.Add(fee)
}
