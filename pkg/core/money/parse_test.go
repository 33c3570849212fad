package money

import (
	"math"
	"testing"
)

func TestParseAmountFormats(t *testing.T) {
	cases := []struct {
		in   interface{}
		want float64
	}{
		{"$1,234.56", 1234.56},
		{"(500)", -500.0},
		{"$ 12,000", 12000.0},
		{"($2,500.00)", -2500.0},
		{1500, 1500.0},
		{1500.25, 1500.25},
		{"-300", -300.0},
		{"0", 0.0},
	}

	for _, c := range cases {
		got := ParseAmount(c.in)
		if math.Abs(got-c.want) > 0.0001 {
			t.Errorf("ParseAmount(%v) = %f, want %f", c.in, got, c.want)
		}
	}
}

func TestParseAmountGarbage(t *testing.T) {
	if got := ParseAmount("not a number"); got != 0.0 {
		t.Errorf("Expected 0.0 for garbage input, got %f", got)
	}
	if got := ParseAmount(nil); got != 0.0 {
		t.Errorf("Expected 0.0 for nil input, got %f", got)
	}

	// The checked variant must distinguish garbage from a real zero.
	if _, ok := ParseAmountChecked("not a number"); ok {
		t.Error("Expected ok=false for garbage input")
	}
	if v, ok := ParseAmountChecked("0"); !ok || v != 0.0 {
		t.Errorf("Expected (0, true) for string zero, got (%f, %v)", v, ok)
	}
}

func TestFormatUSD(t *testing.T) {
	if got := FormatUSD(1234567.8); got != "$1,234,567.80" {
		t.Errorf("FormatUSD wrong: %s", got)
	}
	if got := FormatUSD(-500); got != "-$500.00" {
		t.Errorf("FormatUSD negative wrong: %s", got)
	}
	if got := FormatUSDWhole(12000.4); got != "$12,000" {
		t.Errorf("FormatUSDWhole wrong: %s", got)
	}
}

func TestRounding(t *testing.T) {
	if got := Round2(61250.8333); got != 61250.83 {
		t.Errorf("Round2 wrong: %f", got)
	}
	if got := Round1(72.9166); got != 72.9 {
		t.Errorf("Round1 wrong: %f", got)
	}
}
