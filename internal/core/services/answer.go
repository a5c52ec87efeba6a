package services

import (
	"context"
	"fmt"

	"github.com/calgarypulse/pulse-qa/internal/core/domain"
	"github.com/calgarypulse/pulse-qa/internal/core/ports/driven"
	"github.com/calgarypulse/pulse-qa/internal/core/ports/driving"
	"github.com/calgarypulse/pulse-qa/internal/logger"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

// DefaultTopK is the number of chunks retrieved per question.
const DefaultTopK = 8

// AnswerService runs the retrieval-augmented Q&A pipeline.
type AnswerService struct {
	store        driven.VectorStore
	generator    driven.Generator
	systemPrompt string
	topK         int
}

// NewAnswerService creates a new answer service. The system prompt may be
// empty; the assembled prompt then simply starts with the retrieved data.
func NewAnswerService(store driven.VectorStore, generator driven.Generator, systemPrompt string) *AnswerService {
	return &AnswerService{
		store:        store,
		generator:    generator,
		systemPrompt: systemPrompt,
		topK:         DefaultTopK,
	}
}

// SetTopK overrides the retrieval depth. Values below 1 are ignored.
func (s *AnswerService) SetTopK(k int) {
	if k >= 1 {
		s.topK = k
	}
}

// Ask retrieves the chunks nearest to the question, assembles the prompt,
// and runs the generator. Generation failures come back inside the Answer;
// only retrieval failures surface as errors.
func (s *AnswerService) Ask(ctx context.Context, question string) (domain.Answer, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("checking collection: %w", err)
	}
	if count == 0 {
		return domain.Answer{}, domain.ErrCollectionNotFound
	}

	chunks, err := s.store.Query(ctx, question, s.topK)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("retrieving chunks: %w", err)
	}

	logger.Debug("Retrieved %d chunks:", len(chunks))
	for _, c := range chunks {
		logger.Debug("  [%.3f] %s-%s", c.Distance, c.Community, c.Section)
	}

	prompt := BuildPrompt(s.systemPrompt, question, chunks)
	logger.Debug("Generating with %s", s.generator.Name())
	answer := s.generator.Generate(ctx, prompt)

	return domain.Answer{
		Question:   question,
		Answer:     answer,
		Sources:    sourceURLs(chunks),
		ChunksUsed: len(chunks),
	}, nil
}

// sourceURLs deduplicates chunk URLs preserving first-seen retrieval order.
func sourceURLs(chunks []domain.RetrievedChunk) []string {
	seen := make(map[string]bool, len(chunks))
	urls := make([]string, 0, len(chunks))
	for _, c := range chunks {
		if seen[c.URL] {
			continue
		}
		seen[c.URL] = true
		urls = append(urls, c.URL)
	}
	return urls
}
