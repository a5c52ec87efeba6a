// Package cli implements the pulse-qa command line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/calgarypulse/pulse-qa/internal/core/ports/driving"
	"github.com/calgarypulse/pulse-qa/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services are injected by main before Execute. Commands check for nil so a
// misconfigured binary fails with a clear message instead of a panic.
var (
	indexService  driving.IndexService
	answerService driving.AnswerService
)

var verbose bool

// healthCheck runs before commands that embed text, so an unreachable
// embedding service fails up front instead of partway through a run.
var healthCheck func(ctx context.Context) error

var rootCmd = &cobra.Command{
	Use:   "pulse-qa",
	Short: "Q&A over Calgary community profiles",
	Long: `pulse-qa chunks Calgary community profile records, indexes them for
semantic retrieval, and answers questions about communities with sources
linking back to Calgary Pulse.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"show pipeline details on stderr")
}

// SetServices wires the core services into the CLI commands.
func SetServices(index driving.IndexService, answer driving.AnswerService) {
	indexService = index
	answerService = answer
}

// SetHealthCheck registers a pre-flight check for commands that need the
// embedding service. Nil disables the check.
func SetHealthCheck(f func(ctx context.Context) error) {
	healthCheck = f
}

func checkHealth(ctx context.Context) error {
	if healthCheck == nil {
		return nil
	}
	return healthCheck(ctx)
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
