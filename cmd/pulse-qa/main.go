// Command pulse-qa indexes Calgary community profile records and answers
// questions about them.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/calgarypulse/pulse-qa/internal/adapters/driven/config/file"
	"github.com/calgarypulse/pulse-qa/internal/adapters/driven/embedding/ollama"
	"github.com/calgarypulse/pulse-qa/internal/adapters/driven/generator/claude"
	"github.com/calgarypulse/pulse-qa/internal/adapters/driven/vectorstore/sqlite"
	recordwatcher "github.com/calgarypulse/pulse-qa/internal/adapters/driven/watcher/fsnotify"
	"github.com/calgarypulse/pulse-qa/internal/adapters/driving/cli"
	"github.com/calgarypulse/pulse-qa/internal/core/ports/driven"
	"github.com/calgarypulse/pulse-qa/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := file.LoadConfig("")
	if err != nil {
		return err
	}
	systemPrompt, err := file.SystemPrompt("")
	if err != nil {
		return err
	}

	embedder := ollama.NewEmbeddingService(ollama.Config{
		BaseURL: cfg.Embedding.BaseURL,
		Model:   cfg.Embedding.Model,
	})
	defer embedder.Close()

	store, err := sqlite.NewStore(cfg.StoreDir, embedder)
	if err != nil {
		return err
	}
	defer store.Close()

	generator := claude.NewGenerator(claude.Config{
		Command: cfg.Generator.Command,
		Timeout: cfg.Generator.Timeout(),
	})

	indexService := services.NewIndexService(store)
	indexService.SetWatcherFactory(func(dir string) (driven.RecordWatcher, error) {
		return recordwatcher.NewRecordWatcher(dir)
	})

	answerService := services.NewAnswerService(store, generator, systemPrompt)
	answerService.SetTopK(cfg.TopK)

	cli.SetServices(indexService, answerService)
	cli.SetHealthCheck(func(ctx context.Context) error {
		if err := embedder.Ping(ctx); err != nil {
			return fmt.Errorf("embedding model %s unavailable: %w", embedder.ModelName(), err)
		}
		return nil
	})
	return cli.Execute()
}
