package driven

import "context"

// Generator turns an assembled prompt into an answer.
//
// Generate never fails: transport and process errors come back as the
// answer text itself, prefixed with "Error:". The pipeline treats the
// generator as a black box whose output is always shown to the user.
type Generator interface {
	// Generate runs the prompt through the backing model and returns the
	// answer text, or an "Error: ..." string describing what went wrong.
	Generate(ctx context.Context, prompt string) string

	// Name identifies the backing command for logs.
	Name() string
}
