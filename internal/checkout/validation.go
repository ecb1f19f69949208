package checkout

import (
	"strings"

	"github.com/broger/storefront-backend/pkg/enums"
)

// CustomerDetails is the checkout form state the customer fills in.
type CustomerDetails struct {
	Name          string
	ContactNumber string
	Address       string
	Landmark      string
	PickupWindow  enums.PickupWindow
	CustomTime    string
	Notes         string
}

// Verdict reports whether checkout may proceed and which required fields
// are missing. It is a value the UI renders, not an error.
type Verdict struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing,omitempty"`
}

// ValidateDetails applies the proceed gate: name and contact are always
// required, delivery kinds additionally require an address, and pickup
// requires a preset window or a non-empty custom time.
func ValidateDetails(kind enums.ServiceKind, details CustomerDetails) Verdict {
	var missing []string
	if strings.TrimSpace(details.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(details.ContactNumber) == "" {
		missing = append(missing, "contact_number")
	}
	if kind.IsPickup() {
		switch {
		case details.PickupWindow == "":
			missing = append(missing, "pickup_time")
		case details.PickupWindow == enums.PickupWindowCustom && strings.TrimSpace(details.CustomTime) == "":
			missing = append(missing, "custom_time")
		}
	} else if strings.TrimSpace(details.Address) == "" {
		missing = append(missing, "address")
	}
	return Verdict{Valid: len(missing) == 0, Missing: missing}
}
