package chunker

import (
	"fmt"
	"strings"

	"github.com/calgarypulse/pulse-qa/internal/core/domain"
)

// ChunkServiceRequests builds the 311 service request chunk. A category
// with no year-over-year figure reports +0.0% rather than N/A: the upstream
// pipeline emits zero for new categories and omits the key in the same
// case, so the fallback keeps both shapes rendering identically.
func ChunkServiceRequests(rec domain.Record, slug, name string) *domain.Chunk {
	sr := rec.Map("service_requests_311")
	if sr.IsEmpty() {
		return nil
	}

	var text strings.Builder
	fmt.Fprintf(&text, "%s 311 service requests. ", name)
	fmt.Fprintf(&text, "Total requests (24 months): %s. ", formatCount(sr.Float("total")))

	if top := sr.Slice("top_categories"); len(top) > 0 {
		text.WriteString("Top categories: ")
		clauses := make([]string, len(top))
		for i, cat := range top {
			yoy := cat.Float("yoy_pct")
			if yoy == nil {
				zero := 0.0
				yoy = &zero
			}
			clauses[i] = fmt.Sprintf("%s (%s, %s YoY)",
				cat.String("category"), formatCount(cat.Float("count")), domain.FormatPct(yoy))
		}
		text.WriteString(strings.Join(clauses, ", ") + ". ")
	}

	return &domain.Chunk{
		ID:        slug + "-311",
		Community: slug,
		Section:   "311-service-requests",
		URL:       PulseBaseURL + "/" + slug + "#311",
		Text:      text.String(),
		Viz: []domain.VizDescriptor{
			{
				Type:        "horizontal-bar",
				Component:   "ServiceRequests311Section",
				DataKeys:    []string{"service_requests_311.total", "service_requests_311.top_categories"},
				Description: "Horizontal bar chart of top 5 request categories with counts and YoY change badges",
			},
			{
				Type:        "line-chart",
				Component:   "ServiceRequestsTrend",
				DataKeys:    []string{"service_requests_311.trend"},
				Series:      []domain.VizSeries{{Key: "count", Label: "Monthly Requests"}},
				XAxis:       "date",
				Description: "24-month line chart of monthly request counts with linear regression trend line",
			},
		},
	}
}
