package chunker

import (
	"fmt"
	"strings"

	"github.com/calgarypulse/pulse-qa/internal/core/domain"
)

// ChunkSafety builds the safety and crime chunk. The trend clause
// deliberately summarises only the first and last quarters; the full series
// remains reachable through the line-chart descriptor.
func ChunkSafety(rec domain.Record, slug, name string) *domain.Chunk {
	safety := rec.Map("safety")
	if safety.IsEmpty() {
		return nil
	}

	crime := safety.Map("crime")
	disorder := safety.Map("disorder")
	breakdown := safety.Map("breakdown")

	var text strings.Builder
	fmt.Fprintf(&text, "%s safety and crime data. ", name)
	fmt.Fprintf(&text, "Safety percentile: %s/100 ", formatNumber(safety.Float("percentile")))
	fmt.Fprintf(&text, "(%s). ", safety.String("percentile_label"))

	if !crime.IsEmpty() {
		fmt.Fprintf(&text, "Crime incidents (latest quarter): %s, ", formatCount(crime.Float("count")))
		fmt.Fprintf(&text, "%s per 1,000 residents ", formatNumber(crime.Float("per_1000")))
		fmt.Fprintf(&text, "(city average: %s). ", formatNumber(crime.Float("city_avg_per_1000")))
		if yoy := crime.Float("yoy_pct"); yoy != nil {
			fmt.Fprintf(&text, "Year-over-year change: %s. ", domain.FormatPct(yoy))
		}
	}

	if !breakdown.IsEmpty() {
		propPct := breakdown.Map("property").Float("pct")
		violentPct := breakdown.Map("violent").Float("pct")
		if truthy(propPct) && truthy(violentPct) {
			fmt.Fprintf(&text, "Breakdown: %s%% property crime, %s%% violent crime. ",
				formatNumber(propPct), formatNumber(violentPct))
		}
	}

	if !disorder.IsEmpty() {
		fmt.Fprintf(&text, "Disorder calls: %s, ", formatCount(disorder.Float("count")))
		fmt.Fprintf(&text, "%s per 1,000 ", formatNumber(disorder.Float("per_1000")))
		fmt.Fprintf(&text, "(city average: %s). ", formatNumber(disorder.Float("city_avg_per_1000")))
	}

	if trend := safety.Slice("trend"); len(trend) >= 2 {
		first, last := trend[0], trend[len(trend)-1]
		fmt.Fprintf(&text, "Crime trend: %s had %s incidents, ",
			first.String("quarter"), formatNumber(first.Float("crime")))
		fmt.Fprintf(&text, "%s had %s incidents. ",
			last.String("quarter"), formatNumber(last.Float("crime")))
	}

	return &domain.Chunk{
		ID:        slug + "-safety",
		Community: slug,
		Section:   "safety",
		URL:       PulseBaseURL + "/" + slug + "#safety",
		Text:      text.String(),
		Viz: []domain.VizDescriptor{
			{
				Type:      "stat-cards",
				Component: "SafetyStats",
				DataKeys: []string{
					"safety.crime.count", "safety.crime.yoy_pct", "safety.crime.per_1000",
					"safety.crime.city_avg_per_1000", "safety.disorder.count",
					"safety.disorder.per_1000", "safety.disorder.city_avg_per_1000",
				},
				Description: "Two metric cards: Crime incidents with YoY and per-1000 rate vs city avg, Disorder calls with same",
			},
			{
				Type:      "line-chart",
				Component: "CrimeTrendChart",
				DataKeys:  []string{"safety.trend"},
				Series: []domain.VizSeries{
					{Key: "crime", Label: "Crime Incidents"},
					{Key: "disorder", Label: "Disorder Calls"},
				},
				XAxis:       "quarter",
				Description: "Dual-line chart showing crime and disorder trends over 8 quarters with linear regression trend line",
			},
			{
				Type:        "stat-cards",
				Component:   "CrimeBreakdown",
				DataKeys:    []string{"safety.breakdown.property", "safety.breakdown.violent"},
				Description: "Two cards: Property crime vs Violent crime counts and percentages",
			},
			{
				Type:        "stat-grid",
				Component:   "DisorderBreakdown",
				DataKeys:    []string{"safety.disorder_breakdown"},
				Description: "Grid of disorder categories (disturbances, suspicious, welfare, other) with counts and percentages",
			},
		},
	}
}
