package domain

// Answer is the result of one question through the full pipeline.
// Transient, one per query.
type Answer struct {
	// Question is the original question text.
	Question string `json:"question"`

	// Answer is the generated text, or a textual error when generation
	// failed. Generation failures never surface as Go errors.
	Answer string `json:"answer"`

	// Sources are the deduplicated chunk URLs in first-seen retrieval order.
	Sources []string `json:"sources"`

	// ChunksUsed is the number of retrieved chunks fed to the generator.
	ChunksUsed int `json:"chunks_used"`
}

// IndexSummary reports the outcome of an indexing run.
type IndexSummary struct {
	// Chunks is the number of chunks upserted.
	Chunks int

	// Communities is the number of distinct communities indexed.
	Communities int

	// Missing lists requested slugs whose record file was not found.
	Missing []string
}

// IndexStats describes the current collection contents.
type IndexStats struct {
	// Total is the overall chunk count.
	Total int

	// PerCommunity maps community slug to its chunk count.
	PerCommunity map[string]int
}
