package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calgarypulse/pulse-qa/internal/core/domain"
	"github.com/calgarypulse/pulse-qa/internal/logger"
)

// maxShownSources caps the source list printed alongside an answer.
const maxShownSources = 3

var (
	askBatch       string
	askOutput      string
	askInteractive bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about Calgary communities",
	Long: `Answers a question using the indexed community chunks: the most
relevant chunks are retrieved, assembled into a prompt, and run through the
generation command. Sources link back to Calgary Pulse.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askBatch, "batch", "", "input CSV with questions")
	askCmd.Flags().StringVar(&askOutput, "output", "answers.csv", "output CSV for batch mode")
	askCmd.Flags().BoolVarP(&askInteractive, "interactive", "i", false, "interactive Q&A loop")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if answerService == nil {
		return errors.New("answer service not configured")
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if askBatch == "" && !askInteractive && len(args) == 0 {
		return cmd.Help()
	}
	if err := checkHealth(ctx); err != nil {
		return err
	}

	switch {
	case askBatch != "":
		return runBatch(cmd, ctx, askBatch, askOutput)
	case askInteractive:
		return runInteractive(cmd, ctx)
	default:
		return runSingle(cmd, ctx, args[0])
	}
}

func runSingle(cmd *cobra.Command, ctx context.Context, question string) error {
	answer, err := answerService.Ask(ctx, question)
	if err != nil {
		return friendlyAskError(err)
	}

	cmd.Println(answer.Answer)
	if verbose {
		cmd.Printf("\nSources: %s\n", strings.Join(topSources(answer.Sources), ", "))
	}
	return nil
}

func runInteractive(cmd *cobra.Command, ctx context.Context) error {
	// Interactive sessions always show the retrieval listing, not just
	// under --verbose.
	wasVerbose := logger.IsVerbose()
	logger.SetVerbose(true)
	defer logger.SetVerbose(wasVerbose)

	cmd.Println("Calgary Community Q&A (type 'quit' to exit)")
	cmd.Println()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		cmd.Print("Ask: ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" || isQuit(question) {
			break
		}

		answer, err := answerService.Ask(ctx, question)
		if err != nil {
			return friendlyAskError(err)
		}

		cmd.Printf("\n%s\n\n", answer.Answer)
		cmd.Printf("Sources: %s\n\n", strings.Join(topSources(answer.Sources), ", "))
		cmd.Println(strings.Repeat("-", 60))
	}
	return scanner.Err()
}

func isQuit(s string) bool {
	switch strings.ToLower(s) {
	case "quit", "exit", "q":
		return true
	}
	return false
}

// friendlyAskError replaces the bare collection error with an actionable
// message.
func friendlyAskError(err error) error {
	if errors.Is(err, domain.ErrCollectionNotFound) {
		return errors.New("no indexed communities found, run 'pulse-qa index' first")
	}
	return fmt.Errorf("answering failed: %w", err)
}

// topSources returns at most maxShownSources URLs.
func topSources(sources []string) []string {
	if len(sources) > maxShownSources {
		return sources[:maxShownSources]
	}
	return sources
}
