package money

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Currency
// ---------------------------------------------------------------------------

func TestNewCurrency_Valid(t *testing.T) {
	for _, code := range []string{"SAR", "USD", "AED"} {
		c, err := NewCurrency(code)
		if err != nil {
			t.Errorf("NewCurrency(%q) unexpected error: %v", code, err)
		}
		if c.Code() != code {
			t.Errorf("NewCurrency(%q).Code() = %q, want %q", code, c.Code(), code)
		}
	}
}

func TestNewCurrency_Invalid(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"lowercase", "sar"},
		{"too short", "SA"},
		{"too long", "SARR"},
		{"digits", "SA1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCurrency(tt.code); err == nil {
				t.Errorf("NewCurrency(%q) expected error, got nil", tt.code)
			}
		})
	}
}

func TestMustCurrency_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustCurrency(\"bad\") did not panic")
		}
	}()
	MustCurrency("bad")
}

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

func TestNewFromString(t *testing.T) {
	m, err := NewFromString("3500000", "SAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.String(); got != "3500000.00 SAR" {
		t.Errorf("String() = %q, want %q", got, "3500000.00 SAR")
	}

	if _, err := NewFromString("abc", "SAR"); err == nil {
		t.Error("expected error for invalid amount")
	}
	if _, err := NewFromString("1", "riyal"); err == nil {
		t.Error("expected error for invalid currency")
	}
}

func TestZeroAndPredicates(t *testing.T) {
	z := Zero(SAR)
	if !z.IsZero() || z.IsPositive() {
		t.Error("Zero(SAR) should be zero and not positive")
	}
	p := NewSAR(decimal.NewFromInt(1))
	if p.IsZero() || !p.IsPositive() {
		t.Error("1 SAR should be positive")
	}
	if (Currency{}).IsZero() != true {
		t.Error("uninitialised currency should report IsZero")
	}
}

// ---------------------------------------------------------------------------
// Arithmetic
// ---------------------------------------------------------------------------

func TestAddSubtract(t *testing.T) {
	a := NewSAR(decimal.NewFromInt(1000))
	b := NewSAR(decimal.NewFromInt(250))

	sum, err := a.Add(b)
	if err != nil || !sum.Amount().Equal(decimal.NewFromInt(1250)) {
		t.Errorf("Add = %s, %v; want 1250", sum.Amount(), err)
	}
	diff, err := a.Subtract(b)
	if err != nil || !diff.Amount().Equal(decimal.NewFromInt(750)) {
		t.Errorf("Subtract = %s, %v; want 750", diff.Amount(), err)
	}

	usd := New(decimal.NewFromInt(1), USD)
	if _, err := a.Add(usd); err == nil {
		t.Error("expected currency mismatch on Add")
	}
	if _, err := a.Subtract(usd); err == nil {
		t.Error("expected currency mismatch on Subtract")
	}
}

func TestMultiplyAndPercent(t *testing.T) {
	price := NewSAR(decimal.NewFromInt(2_000_000))

	if got := price.Multiply(decimal.NewFromFloat(0.8)); !got.Amount().Equal(decimal.NewFromInt(1_600_000)) {
		t.Errorf("Multiply = %s, want 1600000", got.Amount())
	}
	if got := price.Percent(decimal.NewFromInt(20)); !got.Amount().Equal(decimal.NewFromInt(400_000)) {
		t.Errorf("Percent(20) = %s, want 400000", got.Amount())
	}
	if !price.Amount().Equal(decimal.NewFromInt(2_000_000)) {
		t.Error("Multiply mutated the original Money value")
	}
}

func TestBetween(t *testing.T) {
	m := NewSAR(decimal.NewFromInt(850_000))
	tests := []struct {
		name     string
		min, max decimal.Decimal
		want     bool
	}{
		{"open bounds", decimal.Zero, decimal.Zero, true},
		{"inside", decimal.NewFromInt(500_000), decimal.NewFromInt(1_000_000), true},
		{"below min", decimal.NewFromInt(900_000), decimal.Zero, false},
		{"above max", decimal.Zero, decimal.NewFromInt(800_000), false},
		{"inclusive", decimal.NewFromInt(850_000), decimal.NewFromInt(850_000), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Between(tt.min, tt.max); got != tt.want {
				t.Errorf("Between(%s, %s) = %v, want %v", tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a := NewSAR(decimal.NewFromInt(10))
	b, _ := NewFromString("10.00", "SAR")
	if !a.Equal(b) {
		t.Error("expected 10 SAR == 10.00 SAR")
	}
	if a.Equal(New(decimal.NewFromInt(10), USD)) {
		t.Error("expected different currencies to be unequal")
	}
}

// ---------------------------------------------------------------------------
// Display
// ---------------------------------------------------------------------------

func TestDisplay(t *testing.T) {
	tests := []struct {
		amount decimal.Decimal
		want   string
	}{
		{decimal.NewFromInt(3_500_000), "3,500,000 SAR"},
		{decimal.NewFromInt(650_000), "650,000 SAR"},
		{decimal.NewFromInt(999), "999 SAR"},
		{decimal.NewFromFloat(8009.98), "8,009.98 SAR"},
		{decimal.NewFromInt(-1500), "-1,500 SAR"},
		{decimal.Zero, "0 SAR"},
	}
	for _, tt := range tests {
		if got := NewSAR(tt.amount).Display(); got != tt.want {
			t.Errorf("Display(%s) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestMoney_ConcurrentReads(t *testing.T) {
	base := NewSAR(decimal.NewFromInt(1000))
	const goroutines = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_, _ = base.Add(NewSAR(decimal.NewFromInt(1)))
			_ = base.Percent(decimal.NewFromInt(10))
			_ = base.Display()
		}()
	}
	wg.Wait()

	if !base.Amount().Equal(decimal.NewFromInt(1000)) {
		t.Errorf("base amount mutated: %s", base.Amount())
	}
}
