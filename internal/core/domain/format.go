package domain

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatCurrency renders a dollar amount rounded to the nearest whole unit
// with thousands separators. A nil value renders as "N/A".
func FormatCurrency(value *float64) string {
	if value == nil {
		return "N/A"
	}
	return "$" + humanize.Comma(int64(math.Round(*value)))
}

// FormatPct renders a percentage to one decimal place with an explicit sign
// for non-negative values. A nil value renders as "N/A".
func FormatPct(value *float64) string {
	if value == nil {
		return "N/A"
	}
	return fmt.Sprintf("%+.1f%%", *value)
}
