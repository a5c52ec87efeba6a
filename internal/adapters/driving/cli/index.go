package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/calgarypulse/pulse-qa/internal/chunker"
	"github.com/calgarypulse/pulse-qa/internal/core/domain"
)

var (
	indexDataDir     string
	indexCommunities []string
	indexReindex     bool
	indexStats       bool
	indexDryRun      bool
	indexWatch       bool
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index community records for retrieval",
	Long: `Chunks community profile records and indexes them for semantic
retrieval. By default every record in the data directory is (re)indexed,
replacing each community's existing chunks.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringVar(&indexDataDir, "data-dir", "data/communities",
		"community record directory")
	indexCmd.Flags().StringSliceVar(&indexCommunities, "communities", nil,
		"specific community slugs to index")
	indexCmd.Flags().BoolVar(&indexReindex, "reindex", false,
		"wipe and rebuild the entire collection")
	indexCmd.Flags().BoolVar(&indexStats, "stats", false,
		"show collection stats and exit")
	indexCmd.Flags().BoolVar(&indexDryRun, "dry-run", false,
		"chunk records and show what would be indexed, without writing")
	indexCmd.Flags().BoolVar(&indexWatch, "watch", false,
		"keep running and re-index records as they change")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if indexStats {
		return printStats(cmd, ctx)
	}
	if indexDryRun {
		return printDryRun(cmd)
	}
	if err := checkHealth(ctx); err != nil {
		return err
	}

	var summary domain.IndexSummary
	var err error
	switch {
	case indexReindex && len(indexCommunities) > 0:
		summary, err = indexService.ReindexCommunities(ctx, indexDataDir, indexCommunities)
	case indexReindex:
		summary, err = indexService.Reindex(ctx, indexDataDir)
	case len(indexCommunities) > 0:
		summary, err = indexService.IndexCommunities(ctx, indexDataDir, indexCommunities)
	default:
		summary, err = indexService.IndexAll(ctx, indexDataDir)
	}
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	for _, slug := range summary.Missing {
		cmd.Printf("  ! %s.json not found in %s\n", slug, indexDataDir)
	}
	if summary.Chunks == 0 {
		cmd.Println("No chunks to index.")
	} else {
		cmd.Printf("\nIndexed %s chunks from %d communities\n",
			humanize.Comma(int64(summary.Chunks)), summary.Communities)
	}

	if indexWatch {
		cmd.Printf("Watching %s (Ctrl-C to stop)\n", indexDataDir)
		return indexService.Watch(ctx, indexDataDir)
	}
	return nil
}

func printStats(cmd *cobra.Command, ctx context.Context) error {
	stats, err := indexService.Stats(ctx)
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}
	if stats.Total == 0 {
		cmd.Println("No collection found. Run indexer first.")
		return nil
	}

	cmd.Printf("Total chunks: %s\n", humanize.Comma(int64(stats.Total)))
	cmd.Printf("Communities indexed: %d\n", len(stats.PerCommunity))

	slugs := make([]string, 0, len(stats.PerCommunity))
	for slug := range stats.PerCommunity {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	for _, slug := range slugs {
		cmd.Printf("  %s: %d chunks\n", slug, stats.PerCommunity[slug])
	}
	return nil
}

// printDryRun chunks the records without touching the store.
func printDryRun(cmd *cobra.Command) error {
	var chunks []domain.Chunk
	var err error
	if len(indexCommunities) > 0 {
		for _, slug := range indexCommunities {
			communityChunks, chunkErr := chunker.ChunkFile(
				fmt.Sprintf("%s/%s.json", indexDataDir, slug))
			if chunkErr != nil {
				cmd.Printf("  ! %s: %v\n", slug, chunkErr)
				continue
			}
			chunks = append(chunks, communityChunks...)
		}
	} else {
		chunks, err = chunker.ChunkDir(indexDataDir)
		if err != nil {
			return err
		}
	}

	communities := make(map[string]bool)
	for _, c := range chunks {
		cmd.Printf("  %s (%s): %d chars\n", c.ID, c.Section, len(c.Text))
		communities[c.Community] = true
	}
	if len(chunks) == 0 {
		cmd.Println("No chunks to index.")
		return nil
	}
	cmd.Printf("\nWould index %d chunks from %d communities\n", len(chunks), len(communities))
	return nil
}
