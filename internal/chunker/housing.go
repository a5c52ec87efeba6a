package chunker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/calgarypulse/pulse-qa/internal/core/domain"
)

// benchmarkTypes is the fixed set of property types district benchmarks
// report, in the order they are walked.
var benchmarkTypes = []string{"detached", "semi_detached", "row", "apartment"}

// ChunkHousing builds the housing and assessments chunk.
func ChunkHousing(rec domain.Record, slug, name string) *domain.Chunk {
	housing := rec.Map("housing")
	if housing.IsEmpty() {
		return nil
	}

	var text strings.Builder
	fmt.Fprintf(&text, "%s housing data. ", name)
	fmt.Fprintf(&text, "Average assessed value: %s. ", domain.FormatCurrency(housing.Float("assessed_value")))
	if vs := housing.Float("value_vs_city"); vs != nil {
		fmt.Fprintf(&text, "Compared to city median: %s. ", domain.FormatPct(vs))
	}
	fmt.Fprintf(&text, "Total properties: %s. ", formatCount(housing.Float("property_count")))

	byType := housing.Map("assessed_by_type")
	for _, ptype := range sortedKeys(byType) {
		info := byType.Map(ptype)
		count := info.Float("count")
		if !truthy(count) || *count <= 0 {
			continue
		}
		label := titleCase(strings.ReplaceAll(ptype, "_", " "))
		fmt.Fprintf(&text, "%s: %s avg (%s properties",
			label, domain.FormatCurrency(info.Float("value")), formatCount(count))
		if yoy := info.Float("value_yoy"); yoy != nil {
			fmt.Fprintf(&text, ", %s YoY", domain.FormatPct(yoy))
		}
		text.WriteString("). ")
	}

	benchmarks := housing.Map("district_benchmarks")
	if date := benchmarks.String("date"); date != "" {
		fmt.Fprintf(&text, "District (%s) benchmark prices as of %s: ", housing.String("district"), date)
		var prices []string
		for _, ptype := range benchmarkTypes {
			if price := benchmarks.Float(ptype); truthy(price) {
				label := titleCase(strings.ReplaceAll(ptype, "_", " "))
				prices = append(prices, fmt.Sprintf("%s: %s", label, domain.FormatCurrency(price)))
			}
		}
		text.WriteString(strings.Join(prices, ", ") + ". ")
	}

	return &domain.Chunk{
		ID:        slug + "-housing",
		Community: slug,
		Section:   "housing",
		URL:       PulseBaseURL + "/" + slug + "#housing",
		Text:      text.String(),
		Viz: []domain.VizDescriptor{
			{
				Type:        "stat-cards",
				Component:   "HousingAssessments",
				DataKeys:    []string{"housing.assessed_value", "housing.value_vs_city", "housing.property_count"},
				Description: "Summary card: average assessed value, comparison to city median, total properties",
			},
			{
				Type:        "stat-grid",
				Component:   "HousingByType",
				DataKeys:    []string{"housing.assessed_by_type"},
				Description: "Grid of property types (Detached, Semi, Row, Apartment) each showing avg value, count, and YoY change",
			},
			{
				Type:        "stat-grid",
				Component:   "DistrictBenchmarks",
				DataKeys:    []string{"housing.district_benchmarks"},
				Description: "District benchmark prices by property type with YoY changes",
			},
		},
	}
}

// sortedKeys returns the record's keys in lexicographic order so that text
// generation stays deterministic across runs.
func sortedKeys(r domain.Record) []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
