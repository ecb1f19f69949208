package enums

import "fmt"

// PickupWindow is a preset pickup-time choice on the checkout form. The
// custom window requires a free-text time from the customer.
type PickupWindow string

const (
	PickupWindow5To10  PickupWindow = "5-10"
	PickupWindow15To20 PickupWindow = "15-20"
	PickupWindow25To30 PickupWindow = "25-30"
	PickupWindowCustom PickupWindow = "custom"
)

var validPickupWindows = []PickupWindow{
	PickupWindow5To10,
	PickupWindow15To20,
	PickupWindow25To30,
	PickupWindowCustom,
}

// String implements fmt.Stringer.
func (p PickupWindow) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PickupWindow.
func (p PickupWindow) IsValid() bool {
	for _, candidate := range validPickupWindows {
		if candidate == p {
			return true
		}
	}
	return false
}

// Label renders the customer-facing wording used in the order message.
func (p PickupWindow) Label() string {
	if p == PickupWindowCustom {
		return "custom"
	}
	return string(p) + " minutes"
}

// ParsePickupWindow converts raw input into a PickupWindow.
func ParsePickupWindow(value string) (PickupWindow, error) {
	for _, candidate := range validPickupWindows {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid pickup window %q", value)
}
