package driving

import (
	"context"

	"github.com/calgarypulse/pulse-qa/internal/core/domain"
)

// AnswerService answers questions about Calgary communities using the
// indexed chunk collection.
type AnswerService interface {
	// Ask retrieves the most relevant chunks, assembles a prompt, and runs
	// it through the generator. It returns domain.ErrCollectionNotFound
	// when nothing has been indexed yet.
	Ask(ctx context.Context, question string) (domain.Answer, error)
}
