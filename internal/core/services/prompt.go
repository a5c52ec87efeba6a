package services

import (
	"fmt"
	"strings"

	"github.com/calgarypulse/pulse-qa/internal/core/domain"
)

// closingInstruction anchors the model to the retrieved context and nudges
// it to surface the visualizations the site can show.
const closingInstruction = "Answer the question using the retrieved data above. " +
	"When relevant, mention which visualizations are available on Calgary Pulse for the user to explore."

// BuildPrompt assembles the full generation prompt: system instructions,
// the numbered retrieved chunks with their source links and available
// visualizations, and the question.
func BuildPrompt(system, question string, chunks []domain.RetrievedChunk) string {
	var context strings.Builder
	context.WriteString("RETRIEVED DATA:\n\n")
	for i, chunk := range chunks {
		fmt.Fprintf(&context, "[%d] (%s - %s) %s\n", i+1, chunk.Community, chunk.Section, chunk.URL)
		context.WriteString(chunk.Text + "\n")
		if len(chunk.Viz) > 0 {
			descs := make([]string, len(chunk.Viz))
			for j, v := range chunk.Viz {
				descs[j] = fmt.Sprintf("%s (%s)", v.Type, v.Component)
			}
			fmt.Fprintf(&context, "Visualizations available: %s\n", strings.Join(descs, ", "))
		}
		context.WriteString("\n")
	}

	return fmt.Sprintf("%s\n\n%s\n\nQUESTION: %s\n\n%s",
		system, context.String(), question, closingInstruction)
}
