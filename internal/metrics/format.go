package metrics

import (
	"strconv"
	"strings"
)

const (
	million  = 1_000_000
	thousand = 1_000
)

// FormatNumber abbreviates a count for display: 1250000 -> "1.3M",
// 850000 -> "850.0K", 999 -> "999". Negative values are treated as 0.
func FormatNumber(n int64) string {
	if n < 0 {
		n = 0
	}
	switch {
	case n >= million:
		return oneDecimal(n, million) + "M"
	case n >= thousand:
		return oneDecimal(n, thousand) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}

// FormatCount parses a raw upstream count and formats it
func FormatCount(raw string) string {
	return FormatNumber(ParseCount(raw))
}

// ParseCount parses a base-10 count. Anything unparsable or negative is 0.
func ParseCount(raw string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// oneDecimal renders n/unit with one decimal, rounding half up. It works on
// integers so that values like 1.25 are not subject to binary float rounding.
func oneDecimal(n, unit int64) string {
	step := unit / 10
	tenths := n / step
	if (n%step)*2 >= step {
		tenths++
	}
	return strconv.FormatInt(tenths/10, 10) + "." + strconv.FormatInt(tenths%10, 10)
}
