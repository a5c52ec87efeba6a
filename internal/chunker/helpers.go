package chunker

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/calgarypulse/pulse-qa/internal/core/domain"
)

// truthy mirrors the record authors' convention that a zero count means
// "no data": only present, non-zero numbers enable their template clause.
func truthy(v *float64) bool {
	return v != nil && *v != 0
}

// formatNumber renders a number in its shortest form: integers without a
// decimal point, fractions as written (75 -> "75", 7.5 -> "7.5").
func formatNumber(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// formatCount renders a count with thousands separators.
func formatCount(v *float64) string {
	if v == nil {
		return "N/A"
	}
	if *v == math.Trunc(*v) {
		return humanize.Comma(int64(*v))
	}
	return humanize.Commaf(*v)
}

// titleCase capitalises the first letter of each space-separated word,
// matching the display labels used for property type keys.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// names joins the "name" field of up to max objects with commas.
func names(items []domain.Record, max int) string {
	if len(items) > max {
		items = items[:max]
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.String("name")
	}
	return strings.Join(out, ", ")
}
