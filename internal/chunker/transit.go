package chunker

import (
	"fmt"
	"strings"

	"github.com/calgarypulse/pulse-qa/internal/core/domain"
)

// ChunkTransit builds the transit chunk. Zero stops means no chunk.
func ChunkTransit(rec domain.Record, slug, name string) *domain.Chunk {
	transit := rec.Map("transit")
	if transit.IsEmpty() || !truthy(transit.Float("stop_count")) {
		return nil
	}

	var text strings.Builder
	fmt.Fprintf(&text, "%s transit. ", name)
	fmt.Fprintf(&text, "%s transit stops ", formatNumber(transit.Float("stop_count")))
	if per := transit.Float("stops_per_1000"); truthy(per) {
		fmt.Fprintf(&text, "(%s per 1,000 residents). ", formatNumber(per))
	}

	if routes := transit.Slice("routes"); len(routes) > 0 {
		text.WriteString("Key routes: ")
		clauses := make([]string, len(routes))
		for i, r := range routes {
			clauses[i] = fmt.Sprintf("Route %s (%s)", routeNumber(r), r.String("destination"))
		}
		text.WriteString(strings.Join(clauses, ", ") + ". ")
	}

	return &domain.Chunk{
		ID:        slug + "-transit",
		Community: slug,
		Section:   "transit",
		URL:       PulseBaseURL + "/" + slug + "#transit",
		Text:      text.String(),
		Viz: []domain.VizDescriptor{
			{
				Type:        "stat-with-list",
				Component:   "TransitSection",
				DataKeys:    []string{"transit.stop_count", "transit.stops_per_1000", "transit.routes"},
				Description: "Stop count metric card plus list of top 5 routes with destinations",
			},
		},
	}
}

// routeNumber renders a route identifier, which records carry either as a
// number or a string ("201" vs "MAX Orange").
func routeNumber(r domain.Record) string {
	if s := r.String("route"); s != "" {
		return s
	}
	return formatNumber(r.Float("route"))
}
