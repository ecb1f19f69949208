package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestUnitPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		base      string
		variation string
		addOns    []AddOnSelection
		want      string
	}{
		{
			name:      "base only",
			base:      "120",
			variation: "0",
			want:      "120",
		},
		{
			name:      "variation delta added",
			base:      "120",
			variation: "20",
			want:      "140",
		},
		{
			name:      "burger with spicy variation and double cheese",
			base:      "120",
			variation: "10",
			addOns: []AddOnSelection{
				{Price: d("5"), Quantity: 2},
			},
			want: "140",
		},
		{
			name:      "free add-on contributes nothing",
			base:      "85",
			variation: "0",
			addOns: []AddOnSelection{
				{Price: d("0"), Quantity: 3},
			},
			want: "85",
		},
		{
			name:      "zero quantity add-on ignored",
			base:      "85",
			variation: "0",
			addOns: []AddOnSelection{
				{Price: d("15"), Quantity: 0},
			},
			want: "85",
		},
		{
			name:      "multiple add-ons accumulate",
			base:      "100",
			variation: "25",
			addOns: []AddOnSelection{
				{Price: d("10"), Quantity: 1},
				{Price: d("7.50"), Quantity: 2},
			},
			want: "150",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := UnitPrice(d(tc.base), d(tc.variation), tc.addOns)
			if !got.Equal(d(tc.want)) {
				t.Fatalf("UnitPrice() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestLineTotal(t *testing.T) {
	t.Parallel()

	if got := LineTotal(d("140"), 2); !got.Equal(d("280")) {
		t.Fatalf("LineTotal(140, 2) = %s, want 280", got)
	}
	if got := LineTotal(d("140"), 0); !got.IsZero() {
		t.Fatalf("LineTotal(140, 0) = %s, want 0", got)
	}
	if got := LineTotal(d("140"), -3); !got.IsZero() {
		t.Fatalf("LineTotal(140, -3) = %s, want 0", got)
	}
}

func TestSubtotal(t *testing.T) {
	t.Parallel()

	if got := Subtotal(nil); !got.IsZero() {
		t.Fatalf("Subtotal(nil) = %s, want 0", got)
	}

	lines := []Line{
		{UnitPrice: d("140"), Quantity: 2},
		{UnitPrice: d("55"), Quantity: 1},
		{UnitPrice: d("20"), Quantity: 3},
	}
	if got := Subtotal(lines); !got.Equal(d("395")) {
		t.Fatalf("Subtotal() = %s, want 395", got)
	}
}
