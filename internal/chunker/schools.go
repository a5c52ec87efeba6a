package chunker

import (
	"fmt"
	"strings"

	"github.com/calgarypulse/pulse-qa/internal/core/domain"
)

// ChunkSchools builds the schools chunk. A zero school count means no
// chunk, regardless of what else the subtree carries.
func ChunkSchools(rec domain.Record, slug, name string) *domain.Chunk {
	schools := rec.Map("schools")
	if schools.IsEmpty() || !truthy(schools.Float("count")) {
		return nil
	}

	var text strings.Builder
	fmt.Fprintf(&text, "%s schools. ", name)
	fmt.Fprintf(&text, "%s schools in the community. ", formatNumber(schools.Float("count")))
	if rating := schools.Float("avg_rating"); truthy(rating) {
		fmt.Fprintf(&text, "Average Fraser Institute rating: %s/10 ", formatNumber(rating))
		rated := schools.Float("rated_count")
		if rated == nil {
			zero := 0.0
			rated = &zero
		}
		fmt.Fprintf(&text, "(%s rated). ", formatNumber(rated))
	}

	for _, school := range schools.Slice("list") {
		fmt.Fprintf(&text, "%s (%s, %s",
			school.String("name"), school.String("board"), school.String("level"))
		if rating := school.Float("rating"); truthy(rating) {
			fmt.Fprintf(&text, ", rating: %s/10", formatNumber(rating))
		}
		text.WriteString("). ")
	}

	return &domain.Chunk{
		ID:        slug + "-schools",
		Community: slug,
		Section:   "schools",
		URL:       PulseBaseURL + "/" + slug + "#schools",
		Text:      text.String(),
		Viz: []domain.VizDescriptor{
			{
				Type:        "list",
				Component:   "SchoolList",
				DataKeys:    []string{"schools.list", "schools.count", "schools.avg_rating"},
				Description: "Ordered list of schools with board, grade level, and Fraser Institute rating (0-10 scale)",
			},
		},
	}
}
