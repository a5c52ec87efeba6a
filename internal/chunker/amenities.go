package chunker

import (
	"fmt"
	"strings"

	"github.com/calgarypulse/pulse-qa/internal/core/domain"
)

// Caps on list clauses: beyond these the text names a count, not names.
const (
	maxGroceryNames  = 5
	maxParkNames     = 3
	maxLandmarkNames = 5
	maxRecNames      = 3
)

// ChunkAmenities builds the amenities and lifestyle chunk, skipped only
// when amenities, parks, and landmarks are all absent. Recreation rides
// along when present but does not gate the chunk.
func ChunkAmenities(rec domain.Record, slug, name string) *domain.Chunk {
	amenities := rec.Map("amenities")
	parks := rec.Slice("parks")
	landmarks := rec.Slice("landmarks")
	recreation := rec.Slice("recreation")

	if amenities.IsEmpty() && len(parks) == 0 && len(landmarks) == 0 {
		return nil
	}

	var text strings.Builder
	fmt.Fprintf(&text, "%s amenities and lifestyle. ", name)

	if !amenities.IsEmpty() {
		if grocery := amenities.Strings("grocery"); len(grocery) > 0 {
			shown := grocery
			if len(shown) > maxGroceryNames {
				shown = shown[:maxGroceryNames]
			}
			fmt.Fprintf(&text, "Grocery stores: %s", strings.Join(shown, ", "))
			if extra := len(grocery) - maxGroceryNames; extra > 0 {
				fmt.Fprintf(&text, " (+%d more)", extra)
			}
			text.WriteString(". ")
		}
		if count := amenities.Float("restaurant_count"); truthy(count) {
			fmt.Fprintf(&text, "Restaurants: %s. ", formatNumber(count))
		}
		if count := amenities.Float("cafe_count"); truthy(count) {
			fmt.Fprintf(&text, "Cafes: %s. ", formatNumber(count))
		}
		if n := amenities.Len("pharmacy"); n > 0 {
			fmt.Fprintf(&text, "Pharmacies: %d. ", n)
		}
		if n := amenities.Len("childcare"); n > 0 {
			fmt.Fprintf(&text, "Childcare: %d centres. ", n)
		}
	}

	if len(parks) > 0 {
		fmt.Fprintf(&text, "Parks: %s. ", names(parks, maxParkNames))
	}
	if len(landmarks) > 0 {
		fmt.Fprintf(&text, "Landmarks: %s. ", names(landmarks, maxLandmarkNames))
	}
	if len(recreation) > 0 {
		fmt.Fprintf(&text, "Recreation facilities: %s. ", names(recreation, maxRecNames))
	}

	return &domain.Chunk{
		ID:        slug + "-amenities",
		Community: slug,
		Section:   "amenities",
		URL:       PulseBaseURL + "/" + slug + "#amenities",
		Text:      text.String(),
		Viz: []domain.VizDescriptor{
			{
				Type:      "named-lists",
				Component: "AmenitiesSection",
				DataKeys: []string{
					"amenities.grocery", "amenities.pharmacy", "amenities.childcare",
					"amenities.restaurant_count", "amenities.cafe_count",
				},
				Description: "Named lists: grocery stores, pharmacies, childcare centres, plus restaurant and cafe counts",
			},
			{
				Type:        "named-lists",
				Component:   "CommunityHighlightsSection",
				DataKeys:    []string{"landmarks", "parks", "recreation", "natural_areas"},
				Description: "Named lists: landmarks (by type), parks, recreation facilities, natural areas",
			},
		},
	}
}
