package driven

import (
	"context"

	"github.com/calgarypulse/pulse-qa/internal/core/domain"
)

// VectorStore persists chunks with their embeddings and answers similarity
// queries over them. One store holds one collection.
type VectorStore interface {
	// Upsert inserts or replaces chunks by ID, embedding their text first.
	Upsert(ctx context.Context, chunks []domain.Chunk) error

	// DeleteCommunity removes every chunk belonging to a community. It
	// returns the number of chunks removed.
	DeleteCommunity(ctx context.Context, community string) (int, error)

	// Reset drops the whole collection.
	Reset(ctx context.Context) error

	// Query returns the k chunks nearest to the question, closest first.
	Query(ctx context.Context, question string, k int) ([]domain.RetrievedChunk, error)

	// Count returns the total number of chunks stored.
	Count(ctx context.Context) (int, error)

	// CountByCommunity returns per-community chunk counts.
	CountByCommunity(ctx context.Context) (map[string]int, error)

	// Close releases resources.
	Close() error
}
