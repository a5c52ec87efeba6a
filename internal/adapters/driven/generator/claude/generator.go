// Package claude runs prompts through the Claude Code CLI in headless mode.
//
// The generator shells out to "claude -p <prompt>" and returns whatever
// comes back. Failures are folded into the returned text so the pipeline
// always has an answer string to show; a broken generator setup should read
// like a bad answer, not crash a batch run halfway through.
package claude

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/calgarypulse/pulse-qa/internal/core/ports/driven"
	"github.com/calgarypulse/pulse-qa/internal/logger"
)

// Ensure Generator implements the interface.
var _ driven.Generator = (*Generator)(nil)

// Default configuration values.
const (
	DefaultCommand = "claude"
	DefaultTimeout = 60 * time.Second
)

// defaultArgs puts the CLI in print (headless) mode.
var defaultArgs = []string{"-p"}

// Config holds configuration for the Claude CLI generator.
type Config struct {
	// Command is the executable to run (default: claude).
	Command string

	// Args are passed before the prompt (default: -p).
	Args []string

	// Timeout bounds one generation (default: 60s).
	Timeout time.Duration
}

// Generator produces answers via the Claude Code CLI.
type Generator struct {
	command string
	args    []string
	timeout time.Duration
}

// NewGenerator creates a new Claude CLI generator.
func NewGenerator(cfg Config) *Generator {
	if cfg.Command == "" {
		cfg.Command = DefaultCommand
	}
	if cfg.Args == nil {
		cfg.Args = defaultArgs
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Generator{
		command: cfg.Command,
		args:    cfg.Args,
		timeout: cfg.Timeout,
	}
}

// Name identifies the backing command.
func (g *Generator) Name() string {
	return g.command
}

// Generate runs the prompt through the CLI and returns the answer text.
// Every failure mode comes back as an "Error: ..." string.
func (g *Generator) Generate(ctx context.Context, prompt string) string {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	args := make([]string, 0, len(g.args)+1)
	args = append(args, g.args...)
	args = append(args, prompt)

	cmd := exec.CommandContext(ctx, g.command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("Running %s with %d-byte prompt", g.command, len(prompt))
	err := cmd.Run()
	if err == nil {
		return strings.TrimSpace(stdout.String())
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Sprintf("Error: Claude timed out after %d seconds.", int(g.timeout.Seconds()))
	}
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Sprintf("Error: '%s' command not found. Install Claude Code CLI.", g.command)
	}
	return "Error: " + strings.TrimSpace(stderr.String())
}
