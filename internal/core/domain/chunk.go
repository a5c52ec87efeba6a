package domain

// Chunk is the unit of retrieval: one semantically coherent text block
// derived from a single section of a community record, plus the metadata
// persisted alongside it in the vector store.
type Chunk struct {
	// ID is unique across the corpus: "{community slug}-{section}".
	// Each community produces at most one chunk per section.
	ID string `json:"id"`

	// Community is the stable slug of the source community.
	Community string `json:"community"`

	// Section is the fixed section label (overview, safety, housing, ...).
	Section string `json:"section"`

	// URL deep-links into the Calgary Pulse page for this section.
	URL string `json:"url"`

	// Text is the generated natural-language paragraph.
	Text string `json:"text"`

	// Viz describes how this section's data is rendered on Calgary Pulse.
	// The retrieval pipeline never interprets these; they travel with the
	// chunk as opaque metadata.
	Viz []VizDescriptor `json:"viz"`
}

// VizDescriptor is static metadata describing one visualization of a
// section. Descriptors are fixed per section; only their data key lists
// name record fields, and those are always fully enumerated regardless of
// whether the data is present.
type VizDescriptor struct {
	// Type is the chart or list kind (stat-cards, line-chart, ...).
	Type string `json:"type"`

	// Component is the named UI unit on Calgary Pulse.
	Component string `json:"component"`

	// DataKeys are dot-paths into the record the visualization consumes.
	DataKeys []string `json:"data_keys"`

	// Series names the plotted series for chart types.
	Series []VizSeries `json:"series,omitempty"`

	// XAxis is the record key used for the x axis of chart types.
	XAxis string `json:"x_axis,omitempty"`

	// Description is a human-readable summary of the rendering.
	Description string `json:"description"`
}

// VizSeries is one plotted series of a chart descriptor.
type VizSeries struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// RetrievedChunk is a chunk annotated with its similarity distance for one
// query. Produced transiently per question; never persisted.
type RetrievedChunk struct {
	Chunk

	// Distance is the vector store's dissimilarity score (lower is closer).
	Distance float64 `json:"distance"`
}
