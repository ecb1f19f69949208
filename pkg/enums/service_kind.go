package enums

import (
	"fmt"
	"strings"
)

// ServiceKind tags a service option with its checkout behavior. Only
// in-house delivery can carry the flat delivery fee; pickup kinds switch the
// checkout form to pickup-time selection.
type ServiceKind string

const (
	ServiceKindPickup          ServiceKind = "pickup"
	ServiceKindInHouseDelivery ServiceKind = "in_house_delivery"
	ServiceKindOtherDelivery   ServiceKind = "other_delivery"
)

var validServiceKinds = []ServiceKind{
	ServiceKindPickup,
	ServiceKindInHouseDelivery,
	ServiceKindOtherDelivery,
}

// String implements fmt.Stringer.
func (s ServiceKind) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ServiceKind.
func (s ServiceKind) IsValid() bool {
	for _, candidate := range validServiceKinds {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsPickup reports whether the kind requires a pickup time instead of an
// address at checkout.
func (s ServiceKind) IsPickup() bool {
	return s == ServiceKindPickup
}

// ParseServiceKind converts raw input into a ServiceKind.
func ParseServiceKind(value string) (ServiceKind, error) {
	for _, candidate := range validServiceKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid service kind %q", value)
}

// ClassifyService derives a kind from a service option's slug and display
// name. Rows written before the kind column existed carry neither, so the
// legacy substring rules ("pickup", "in-house") still apply here.
func ClassifyService(slug, name string) ServiceKind {
	lowerSlug := strings.ToLower(slug)
	lowerName := strings.ToLower(name)
	switch {
	case strings.Contains(lowerSlug, "pickup") || strings.Contains(lowerName, "pickup"):
		return ServiceKindPickup
	case lowerSlug == "in-house-delivery" || strings.Contains(lowerName, "in-house"):
		return ServiceKindInHouseDelivery
	default:
		return ServiceKindOtherDelivery
	}
}
