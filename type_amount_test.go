package fintrack

import "testing"

func TestAmountArithmetic(t *testing.T) {
	a := A(0.1)
	for i := 0; i < 9; i++ {
		a = a.Add(A(0.1))
	}
	// exact decimal arithmetic: ten times 0.1 is exactly 1
	if !a.Equal(A(1)) {
		t.Errorf("10 × 0.1 = %s, want 1", a)
	}

	if got := A(100).Sub(A(250)); !got.IsNegative() {
		t.Errorf("100-250 = %s, want negative", got)
	}
	if got := A(-3500).MulInt(3); !got.Equal(A(-10500)) {
		t.Errorf("-3500×3 = %s, want -10500", got)
	}
}

func TestAmountRatio(t *testing.T) {
	if got := A(8500).Ratio(A(12000)); got < 0.708 || got > 0.709 {
		t.Errorf("8500/12000 = %v", got)
	}
	// a zero divisor is substituted with 1
	if got := A(50).Ratio(A(0)); got != 50 {
		t.Errorf("50/0 = %v, want 50", got)
	}
}

func TestAmountDisplay(t *testing.T) {
	testCases := []struct {
		amount   float64
		currency string
		want     string
	}{
		{1234.56, "USD", "$1,234.56"},
		{1234.56, "EUR", "€1,234.56"},
		{0, "USD", "$0.00"},
	}
	for _, tc := range testCases {
		if got := A(tc.amount).Display(tc.currency); got != tc.want {
			t.Errorf("Display(%v, %s) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("1850.50")
	if err != nil {
		t.Fatalf("ParseAmount() failed: %v", err)
	}
	if !got.Equal(A(1850.5)) {
		t.Errorf("ParseAmount(1850.50) = %s", got)
	}

	if _, err := ParseAmount("ten"); err == nil {
		t.Error("ParseAmount(\"ten\") should fail")
	}
}
