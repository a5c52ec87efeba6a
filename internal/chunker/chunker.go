// Package chunker turns community profile records into retrievable text
// chunks. Each section of a record maps to at most one chunk; a section
// chunker returns nil when its underlying data is absent, and the community
// orchestrator collects the non-nil results in a fixed order.
package chunker

import (
	"github.com/calgarypulse/pulse-qa/internal/core/domain"
)

// PulseBaseURL is the public base URL chunk links point at.
const PulseBaseURL = "https://calgarypulse.ca/communities"

// SectionChunker reads one subtree of a record and produces a chunk, or nil
// when the section has no data worth indexing.
type SectionChunker func(rec domain.Record, slug, name string) *domain.Chunk

// sectionChunkers is the fixed pipeline. The order is a contract: it sets
// corpus locality and the preferred order for consumers when chunks tie on
// relevance.
var sectionChunkers = []SectionChunker{
	ChunkHero,
	ChunkSafety,
	ChunkHousing,
	ChunkServiceRequests,
	ChunkSchools,
	ChunkTransit,
	ChunkDemographics,
	ChunkBusiness,
	ChunkAmenities,
}

// ChunkCommunity applies every section chunker to one record, collecting
// the non-nil results in pipeline order. Chunking is deterministic: the
// same record always yields identical chunks.
func ChunkCommunity(rec domain.Record, slug, name string) []domain.Chunk {
	chunks := make([]domain.Chunk, 0, len(sectionChunkers))
	for _, chunk := range sectionChunkers {
		if c := chunk(rec, slug, name); c != nil {
			chunks = append(chunks, *c)
		}
	}
	return chunks
}
