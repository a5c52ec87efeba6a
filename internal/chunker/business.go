package chunker

import (
	"fmt"
	"strings"

	"github.com/calgarypulse/pulse-qa/internal/core/domain"
)

// ChunkBusiness builds the business and development chunk. It draws on two
// subtrees, business_development and business_character, and is skipped
// only when both are absent.
func ChunkBusiness(rec domain.Record, slug, name string) *domain.Chunk {
	bd := rec.Map("business_development")
	bc := rec.Map("business_character")
	if bd.IsEmpty() && bc.IsEmpty() {
		return nil
	}

	var text strings.Builder
	fmt.Fprintf(&text, "%s business and development. ", name)

	if !bc.IsEmpty() {
		// The fallback applies only when the key is missing; an empty
		// character value renders as-is.
		character := "N/A"
		if _, ok := bc["character"]; ok {
			character = bc.String("character")
		}
		fmt.Fprintf(&text, "Business character: %s. ", character)
		fmt.Fprintf(&text, "Total active businesses: %s. ", formatCount(bc.Float("total_businesses")))
	}

	licenses := bd.Map("business_licenses")
	if !licenses.IsEmpty() {
		fmt.Fprintf(&text, "Active business licenses: %s ", formatCount(licenses.Float("active_total")))
		fmt.Fprintf(&text, "(city average: %s). ", formatNumber(licenses.Float("city_avg_active")))
		if top := licenses.Slice("top_types"); len(top) > 0 {
			text.WriteString("Top types: ")
			clauses := make([]string, len(top))
			for i, t := range top {
				clauses[i] = fmt.Sprintf("%s (%s)", t.String("type"), formatNumber(t.Float("count")))
			}
			text.WriteString(strings.Join(clauses, ", ") + ". ")
		}
	}

	permits := bd.Map("building_permits")
	if !permits.IsEmpty() {
		yoy := permits.Float("total_yoy_pct")
		if yoy == nil {
			zero := 0.0
			yoy = &zero
		}
		fmt.Fprintf(&text, "Building permits (12 months): %s ", formatNumber(permits.Float("total_12mo")))
		fmt.Fprintf(&text, "(%s YoY). ", domain.FormatPct(yoy))
		if units := permits.Float("units_created_12mo"); truthy(units) {
			fmt.Fprintf(&text, "Units created: %s. ", formatCount(units))
		}
		if value := permits.Float("total_value_12mo"); truthy(value) {
			fmt.Fprintf(&text, "Total permit value: %s. ", domain.FormatCurrency(value))
		}
	}

	return &domain.Chunk{
		ID:        slug + "-business",
		Community: slug,
		Section:   "business-development",
		URL:       PulseBaseURL + "/" + slug + "#business",
		Text:      text.String(),
		Viz: []domain.VizDescriptor{
			{
				Type:      "stat-cards",
				Component: "BusinessDevelopmentSection",
				DataKeys: []string{
					"business_development.business_licenses.active_total",
					"business_development.business_licenses.city_avg_active",
					"business_development.building_permits.total_12mo",
					"business_development.building_permits.units_created_12mo",
					"business_development.building_permits.total_value_12mo",
					"business_character.character",
				},
				Description: "Multi-card layout: business character label, license count vs city avg, permits count, units created, total investment value",
			},
			{
				Type:        "horizontal-bar",
				Component:   "BusinessDevelopmentSection",
				DataKeys:    []string{"business_development.business_licenses.top_types"},
				Description: "Horizontal bar chart of top business license types with counts",
			},
		},
	}
}
