package chunker

import (
	"fmt"
	"strings"

	"github.com/calgarypulse/pulse-qa/internal/core/domain"
)

// ChunkDemographics builds the census demographics chunk. The renter share
// defaults to "N/A" when only the owner share is present; the two figures
// come from different census tables and are not always both published.
func ChunkDemographics(rec domain.Record, slug, name string) *domain.Chunk {
	demo := rec.Map("demographics")
	if demo.IsEmpty() {
		return nil
	}

	var text strings.Builder
	fmt.Fprintf(&text, "%s demographics (Census 2021). ", name)
	if age := demo.Float("median_age"); truthy(age) {
		fmt.Fprintf(&text, "Median age: %s. ", formatNumber(age))
	}
	if income := demo.Float("avg_income"); truthy(income) {
		fmt.Fprintf(&text, "Average income: %s. ", domain.FormatCurrency(income))
	}
	if owner := demo.Float("owner_pct"); owner != nil {
		fmt.Fprintf(&text, "Homeowners: %s%%, Renters: %s%%. ",
			formatNumber(owner), formatNumber(demo.Float("renter_pct")))
	}
	if vm := demo.Float("visible_minority_pct"); vm != nil {
		fmt.Fprintf(&text, "Visible minority: %s%%. ", formatNumber(vm))
	}

	return &domain.Chunk{
		ID:        slug + "-demographics",
		Community: slug,
		Section:   "demographics",
		URL:       PulseBaseURL + "/" + slug + "#demographics",
		Text:      text.String(),
		Viz: []domain.VizDescriptor{
			{
				Type:      "stat-grid",
				Component: "DemographicsSection",
				DataKeys: []string{
					"demographics.owner_pct", "demographics.renter_pct",
					"demographics.median_age", "demographics.avg_income",
					"demographics.visible_minority_pct",
				},
				Description: "5-column responsive stat grid: Owner %, Renter %, Median Age, Average Income, Visible Minority %",
			},
		},
	}
}
