package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySuffix is the fixed currency label appended to formatted amounts.
const CurrencySuffix = "دينار"

// FormatCurrency renders a value as a grouped-thousands figure with two
// decimal places and the dinar suffix, e.g. 1000 -> "1,000.00 دينار".
// Absent or malformed values render as the zero figure rather than failing,
// so a missing field never aborts a document.
func FormatCurrency(v any) string {
	d, ok := ToDecimal(v)
	if !ok {
		d = decimal.Zero
	}
	return GroupThousands(d.StringFixed(2)) + " " + CurrencySuffix
}

// GroupThousands inserts comma separators into the integer part of a plain
// decimal string such as "1234567.89".
func GroupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}
	b.WriteString(fracPart)
	return b.String()
}

// ToDecimal coerces the value shapes a render context can carry into a
// decimal. The second return is false for nil, unsupported types, and
// unparseable strings.
func ToDecimal(v any) (decimal.Decimal, bool) {
	switch val := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return val, true
	case *decimal.Decimal:
		if val == nil {
			return decimal.Zero, false
		}
		return *val, true
	case float64:
		return decimal.NewFromFloat(val), true
	case float32:
		return decimal.NewFromFloat32(val), true
	case int:
		return decimal.NewFromInt(int64(val)), true
	case int32:
		return decimal.NewFromInt32(val), true
	case int64:
		return decimal.NewFromInt(val), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(val))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}
