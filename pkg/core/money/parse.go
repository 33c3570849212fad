package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount normalizes heterogeneous numeric/string representations into a
// signed float. Accepts plain numbers, "$1,200.50", and accounting-style
// negatives like "(500)". Unparseable input returns 0.0; callers that need
// to distinguish a genuine zero from a parse failure should use
// ParseAmountChecked instead.
func ParseAmount(value interface{}) float64 {
	amount, _ := ParseAmountChecked(value)
	return amount
}

// ParseAmountChecked is ParseAmount with an explicit success flag. The
// numeric fallback on failure stays 0.0 so downstream arithmetic is
// unaffected either way.
func ParseAmountChecked(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		cleaned := strings.NewReplacer("$", "", ",", "", "(", "-", ")", "").Replace(v)
		cleaned = strings.TrimSpace(cleaned)
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0.0, false
		}
		return f, true
	default:
		return 0.0, false
	}
}

// Round2 rounds to cents. Monetary results are rounded here at the boundary
// only; intermediate computations keep full precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place (used for percentage shares).
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FormatUSD renders a value as a dollar string with thousands separators,
// e.g. 1234567.8 -> "$1,234,567.80".
func FormatUSD(v float64) string {
	neg := v < 0
	s := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)

	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := fmt.Sprintf("$%s.%s", b.String(), parts[1])
	if neg {
		out = "-" + out
	}
	return out
}

// FormatUSDWhole is FormatUSD without cents, e.g. 12000.4 -> "$12,000".
func FormatUSDWhole(v float64) string {
	full := FormatUSD(math.Round(v))
	return strings.TrimSuffix(full, ".00")
}
