package checkout

import (
	"testing"

	"github.com/broger/storefront-backend/pkg/enums"
)

func TestValidateDetails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    enums.ServiceKind
		details CustomerDetails
		valid   bool
		missing []string
	}{
		{
			name:    "empty name blocks proceeding",
			kind:    enums.ServiceKindInHouseDelivery,
			details: CustomerDetails{ContactNumber: "0917", Address: "123 St"},
			valid:   false,
			missing: []string{"name"},
		},
		{
			name:    "delivery requires address",
			kind:    enums.ServiceKindInHouseDelivery,
			details: CustomerDetails{Name: "Ana", ContactNumber: "0917"},
			valid:   false,
			missing: []string{"address"},
		},
		{
			name:    "third-party delivery also requires address",
			kind:    enums.ServiceKindOtherDelivery,
			details: CustomerDetails{Name: "Ana", ContactNumber: "0917"},
			valid:   false,
			missing: []string{"address"},
		},
		{
			name:    "pickup requires a window",
			kind:    enums.ServiceKindPickup,
			details: CustomerDetails{Name: "Ana", ContactNumber: "0917"},
			valid:   false,
			missing: []string{"pickup_time"},
		},
		{
			name: "custom window requires a time",
			kind: enums.ServiceKindPickup,
			details: CustomerDetails{
				Name: "Ana", ContactNumber: "0917",
				PickupWindow: enums.PickupWindowCustom,
			},
			valid:   false,
			missing: []string{"custom_time"},
		},
		{
			name: "pickup with preset window proceeds",
			kind: enums.ServiceKindPickup,
			details: CustomerDetails{
				Name: "Ana", ContactNumber: "0917",
				PickupWindow: enums.PickupWindow5To10,
			},
			valid: true,
		},
		{
			name: "delivery with address proceeds without pickup time",
			kind: enums.ServiceKindInHouseDelivery,
			details: CustomerDetails{
				Name: "Ana", ContactNumber: "0917", Address: "123 St",
			},
			valid: true,
		},
		{
			name:    "whitespace-only fields count as empty",
			kind:    enums.ServiceKindInHouseDelivery,
			details: CustomerDetails{Name: "   ", ContactNumber: "0917", Address: "123 St"},
			valid:   false,
			missing: []string{"name"},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			verdict := ValidateDetails(tc.kind, tc.details)
			if verdict.Valid != tc.valid {
				t.Fatalf("Valid = %v, want %v (missing %v)", verdict.Valid, tc.valid, verdict.Missing)
			}
			if len(tc.missing) > 0 {
				if len(verdict.Missing) != len(tc.missing) {
					t.Fatalf("Missing = %v, want %v", verdict.Missing, tc.missing)
				}
				for i, field := range tc.missing {
					if verdict.Missing[i] != field {
						t.Fatalf("Missing = %v, want %v", verdict.Missing, tc.missing)
					}
				}
			}
		})
	}
}
