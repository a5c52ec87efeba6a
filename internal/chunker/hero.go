package chunker

import (
	"fmt"
	"strings"

	"github.com/calgarypulse/pulse-qa/internal/core/domain"
)

// ChunkHero builds the overview chunk. Every community gets one: the
// sector and CREB district line is always present, the remaining clauses
// appear only when their values are.
func ChunkHero(rec domain.Record, slug, name string) *domain.Chunk {
	hero := rec.Map("hero")

	var text strings.Builder
	fmt.Fprintf(&text, "%s community overview. ", name)
	fmt.Fprintf(&text, "Located in %s sector, CREB district: %s. ",
		rec.String("sector"), rec.String("creb_district"))

	if distance := rec.Float("distance_to_downtown_km"); truthy(distance) {
		fmt.Fprintf(&text, "%.1f km from downtown. ", *distance)
	}
	if pop := hero.Float("population"); truthy(pop) {
		fmt.Fprintf(&text, "Population: %s. ", formatCount(pop))
	}
	if pct := hero.Float("safety_percentile"); pct != nil {
		fmt.Fprintf(&text, "Safety percentile: %s/100. ", formatNumber(pct))
	}
	if avg := hero.Float("avg_value"); truthy(avg) {
		fmt.Fprintf(&text, "Average assessed home value: %s. ", domain.FormatCurrency(avg))
	}
	if desc := rec.String("description"); desc != "" {
		text.WriteString(desc)
	}

	return &domain.Chunk{
		ID:        slug + "-overview",
		Community: slug,
		Section:   "overview",
		URL:       PulseBaseURL + "/" + slug,
		Text:      text.String(),
		Viz: []domain.VizDescriptor{
			{
				Type:      "stat-cards",
				Component: "HeroCards",
				DataKeys: []string{
					"hero.population", "hero.safety_percentile",
					"hero.avg_value", "housing.value_vs_city",
				},
				Description: "Three stat cards: Population, Safety Score (color-coded), Assessed Value",
			},
		},
	}
}
