package driving

import (
	"context"

	"github.com/calgarypulse/pulse-qa/internal/core/domain"
)

// IndexService maintains the chunk collection from community record files.
type IndexService interface {
	// IndexAll chunks every eligible record in the data directory and
	// upserts the results, replacing each community's existing chunks.
	IndexAll(ctx context.Context, dataDir string) (domain.IndexSummary, error)

	// IndexCommunities indexes only the named communities. Slugs with no
	// record file are reported in the summary, not treated as errors.
	IndexCommunities(ctx context.Context, dataDir string, slugs []string) (domain.IndexSummary, error)

	// Reindex drops the whole collection and rebuilds it from scratch.
	Reindex(ctx context.Context, dataDir string) (domain.IndexSummary, error)

	// ReindexCommunities drops the whole collection and rebuilds it from
	// only the named communities.
	ReindexCommunities(ctx context.Context, dataDir string, slugs []string) (domain.IndexSummary, error)

	// RemoveCommunity deletes a community's chunks from the collection.
	RemoveCommunity(ctx context.Context, slug string) (int, error)

	// Stats reports the current collection contents.
	Stats(ctx context.Context) (domain.IndexStats, error)

	// Watch re-indexes communities as their record files change, until the
	// context is cancelled.
	Watch(ctx context.Context, dataDir string) error
}
