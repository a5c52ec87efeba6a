package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/calgarypulse/pulse-qa/internal/chunker"
	"github.com/calgarypulse/pulse-qa/internal/core/domain"
	"github.com/calgarypulse/pulse-qa/internal/core/ports/driven"
	"github.com/calgarypulse/pulse-qa/internal/core/ports/driving"
	"github.com/calgarypulse/pulse-qa/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// WatcherFactory creates a record watcher for a directory. Watching is
// optional; without a factory the Watch operation reports an error.
type WatcherFactory func(dir string) (driven.RecordWatcher, error)

// IndexService maintains the chunk collection from record files.
type IndexService struct {
	store      driven.VectorStore
	newWatcher WatcherFactory
}

// NewIndexService creates a new index service.
func NewIndexService(store driven.VectorStore) *IndexService {
	return &IndexService{store: store}
}

// SetWatcherFactory sets the factory used by Watch.
func (s *IndexService) SetWatcherFactory(f WatcherFactory) {
	s.newWatcher = f
}

// IndexAll chunks every eligible record in the data directory and upserts
// the results, replacing each community's existing chunks.
func (s *IndexService) IndexAll(ctx context.Context, dataDir string) (domain.IndexSummary, error) {
	chunks, err := chunker.ChunkDir(dataDir)
	if err != nil {
		return domain.IndexSummary{}, err
	}
	return s.upsertReplacing(ctx, chunks)
}

// IndexCommunities indexes only the named communities. Missing record files
// are reported in the summary rather than failing the run, so one typo does
// not abort a long list.
func (s *IndexService) IndexCommunities(ctx context.Context, dataDir string, slugs []string) (domain.IndexSummary, error) {
	var chunks []domain.Chunk
	var missing []string

	for _, slug := range slugs {
		path := filepath.Join(dataDir, slug+".json")
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, slug)
			continue
		}
		communityChunks, err := chunker.ChunkFile(path)
		if err != nil {
			return domain.IndexSummary{}, err
		}
		logger.Info("Chunked %s: %d chunks", slug, len(communityChunks))
		chunks = append(chunks, communityChunks...)
	}

	summary, err := s.upsertReplacing(ctx, chunks)
	if err != nil {
		return domain.IndexSummary{}, err
	}
	summary.Missing = missing
	return summary, nil
}

// Reindex drops the whole collection and rebuilds it from scratch.
func (s *IndexService) Reindex(ctx context.Context, dataDir string) (domain.IndexSummary, error) {
	if err := s.store.Reset(ctx); err != nil {
		return domain.IndexSummary{}, fmt.Errorf("resetting collection: %w", err)
	}
	logger.Info("Deleted existing collection")
	return s.IndexAll(ctx, dataDir)
}

// ReindexCommunities drops the whole collection, then rebuilds it from only
// the named communities. The resulting collection contains nothing else.
func (s *IndexService) ReindexCommunities(ctx context.Context, dataDir string, slugs []string) (domain.IndexSummary, error) {
	if err := s.store.Reset(ctx); err != nil {
		return domain.IndexSummary{}, fmt.Errorf("resetting collection: %w", err)
	}
	logger.Info("Deleted existing collection")
	return s.IndexCommunities(ctx, dataDir, slugs)
}

// RemoveCommunity deletes a community's chunks from the collection.
func (s *IndexService) RemoveCommunity(ctx context.Context, slug string) (int, error) {
	return s.store.DeleteCommunity(ctx, slug)
}

// Stats reports the current collection contents.
func (s *IndexService) Stats(ctx context.Context) (domain.IndexStats, error) {
	total, err := s.store.Count(ctx)
	if err != nil {
		return domain.IndexStats{}, fmt.Errorf("counting chunks: %w", err)
	}
	perCommunity, err := s.store.CountByCommunity(ctx)
	if err != nil {
		return domain.IndexStats{}, fmt.Errorf("counting per community: %w", err)
	}
	return domain.IndexStats{Total: total, PerCommunity: perCommunity}, nil
}

// Watch re-indexes communities as their record files change, until the
// context is cancelled. A malformed save is skipped with a warning instead
// of killing the loop; editors write files in multiple steps.
func (s *IndexService) Watch(ctx context.Context, dataDir string) error {
	if s.newWatcher == nil {
		return errors.New("no record watcher configured")
	}
	watcher, err := s.newWatcher(dataDir)
	if err != nil {
		return fmt.Errorf("watching %s: %w", dataDir, err)
	}
	defer watcher.Close()

	events := make(chan driven.RecordEvent, 16)
	watchErr := make(chan error, 1)
	go func() {
		watchErr <- watcher.Watch(ctx, events)
	}()

	logger.Info("Watching %s for changes", dataDir)
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-watchErr:
			return err
		case ev := <-events:
			s.handleRecordEvent(ctx, ev)
		}
	}
}

func (s *IndexService) handleRecordEvent(ctx context.Context, ev driven.RecordEvent) {
	if chunker.Internal(ev.Path) {
		return
	}

	switch ev.Op {
	case driven.RecordRemoved:
		slug := strings.TrimSuffix(filepath.Base(ev.Path), filepath.Ext(ev.Path))
		removed, err := s.store.DeleteCommunity(ctx, slug)
		if err != nil {
			logger.Warn("Removing %s: %v", slug, err)
			return
		}
		logger.Info("Removed %s (%d chunks)", slug, removed)

	case driven.RecordWritten:
		chunks, err := chunker.ChunkFile(ev.Path)
		if err != nil {
			logger.Warn("Skipping %s: %v", ev.Path, err)
			return
		}
		if _, err := s.upsertReplacing(ctx, chunks); err != nil {
			logger.Warn("Indexing %s: %v", ev.Path, err)
			return
		}
		logger.Info("Re-indexed %s (%d chunks)", chunks[0].Community, len(chunks))
	}
}

// upsertReplacing removes each affected community's existing chunks, then
// upserts the new set. Replacement is per community so a section that
// disappeared from the record does not linger as a stale chunk.
func (s *IndexService) upsertReplacing(ctx context.Context, chunks []domain.Chunk) (domain.IndexSummary, error) {
	if len(chunks) == 0 {
		return domain.IndexSummary{}, nil
	}

	communities := make(map[string]bool)
	for _, c := range chunks {
		communities[c.Community] = true
	}
	slugs := make([]string, 0, len(communities))
	for slug := range communities {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	for _, slug := range slugs {
		if _, err := s.store.DeleteCommunity(ctx, slug); err != nil {
			return domain.IndexSummary{}, fmt.Errorf("replacing %s: %w", slug, err)
		}
	}

	if err := s.store.Upsert(ctx, chunks); err != nil {
		return domain.IndexSummary{}, fmt.Errorf("upserting chunks: %w", err)
	}

	return domain.IndexSummary{Chunks: len(chunks), Communities: len(communities)}, nil
}
