package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calgarypulse/pulse-qa/internal/core/ports/driven"
)

func writeRecord(t *testing.T, dir, filename, content string) string {
	t.Helper()
	path := filepath.Join(dir, filename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const beltlineRecord = `{
	"name": "Beltline", "slug": "beltline",
	"sector": "Centre", "creb_district": "City Centre",
	"hero": {"population": 25000},
	"transit": {"stop_count": 48}
}`

const sunnysideRecord = `{
	"name": "Sunnyside", "slug": "sunnyside",
	"sector": "Centre", "creb_district": "City Centre",
	"hero": {"population": 4000}
}`

func TestIndexAll(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "beltline.json", beltlineRecord)
	writeRecord(t, dir, "sunnyside.json", sunnysideRecord)
	writeRecord(t, dir, "_template.json", `{"name": "Template"}`)

	store := &mockVectorStore{}
	svc := NewIndexService(store)

	summary, err := svc.IndexAll(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Chunks, "beltline overview+transit, sunnyside overview")
	assert.Equal(t, 2, summary.Communities)
	assert.Empty(t, summary.Missing)

	assert.Equal(t, []string{"beltline", "sunnyside"}, store.deleted,
		"existing chunks are replaced per community before upserting")
	assert.Len(t, store.upserted, 3)
}

func TestIndexAll_EmptyDirectory(t *testing.T) {
	store := &mockVectorStore{}
	svc := NewIndexService(store)

	summary, err := svc.IndexAll(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, summary.Chunks)
	assert.Empty(t, store.upserted)
	assert.Empty(t, store.deleted, "nothing is deleted when there is nothing to index")
}

func TestIndexAll_MalformedRecordFails(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "broken.json", `not json`)

	svc := NewIndexService(&mockVectorStore{})
	_, err := svc.IndexAll(context.Background(), dir)
	assert.Error(t, err)
}

func TestIndexCommunities_ReportsMissing(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "beltline.json", beltlineRecord)

	store := &mockVectorStore{}
	svc := NewIndexService(store)

	summary, err := svc.IndexCommunities(context.Background(), dir, []string{"beltline", "nosuch"})
	require.NoError(t, err, "a missing slug is reported, not fatal")

	assert.Equal(t, 2, summary.Chunks)
	assert.Equal(t, 1, summary.Communities)
	assert.Equal(t, []string{"nosuch"}, summary.Missing)
}

func TestIndexCommunities_AllMissing(t *testing.T) {
	store := &mockVectorStore{}
	svc := NewIndexService(store)

	summary, err := svc.IndexCommunities(context.Background(), t.TempDir(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Zero(t, summary.Chunks)
	assert.Equal(t, []string{"a", "b"}, summary.Missing)
	assert.Empty(t, store.upserted)
}

func TestReindex_ResetsBeforeIndexing(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "beltline.json", beltlineRecord)

	store := &mockVectorStore{}
	svc := NewIndexService(store)

	summary, err := svc.Reindex(context.Background(), dir)
	require.NoError(t, err)
	assert.True(t, store.resetCalled)
	assert.Equal(t, 2, summary.Chunks)
}

func TestReindexCommunities_ResetsThenIndexesSubset(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "beltline.json", beltlineRecord)
	writeRecord(t, dir, "sunnyside.json", sunnysideRecord)

	store := &mockVectorStore{}
	svc := NewIndexService(store)

	summary, err := svc.ReindexCommunities(context.Background(), dir, []string{"beltline", "nosuch"})
	require.NoError(t, err)

	assert.True(t, store.resetCalled)
	assert.Equal(t, 2, summary.Chunks)
	assert.Equal(t, 1, summary.Communities)
	assert.Equal(t, []string{"nosuch"}, summary.Missing)
	for _, c := range store.upserted {
		assert.Equal(t, "beltline", c.Community, "only the named communities are rebuilt")
	}
}

func TestRemoveCommunity(t *testing.T) {
	store := &mockVectorStore{deleteReturns: map[string]int{"beltline": 7}}
	svc := NewIndexService(store)

	removed, err := svc.RemoveCommunity(context.Background(), "beltline")
	require.NoError(t, err)
	assert.Equal(t, 7, removed)
}

func TestStats(t *testing.T) {
	store := &mockVectorStore{
		count:  12,
		byComm: map[string]int{"beltline": 9, "sunnyside": 3},
	}
	svc := NewIndexService(store)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, stats.Total)
	assert.Equal(t, map[string]int{"beltline": 9, "sunnyside": 3}, stats.PerCommunity)
}

// mockWatcher implements driven.RecordWatcher for testing.
type mockWatcher struct {
	events []driven.RecordEvent
}

func (m *mockWatcher) Watch(ctx context.Context, events chan<- driven.RecordEvent) error {
	for _, ev := range m.events {
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
	<-ctx.Done()
	return nil
}

func (m *mockWatcher) Close() error {
	return nil
}

func TestWatch_RequiresWatcher(t *testing.T) {
	svc := NewIndexService(&mockVectorStore{})

	err := svc.Watch(context.Background(), "data")
	assert.Error(t, err)
}

func TestWatch_ReindexesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeRecord(t, dir, "beltline.json", beltlineRecord)

	store := &mockVectorStore{}
	svc := NewIndexService(store)
	svc.SetWatcherFactory(func(_ string) (driven.RecordWatcher, error) {
		return &mockWatcher{events: []driven.RecordEvent{
			{Path: path, Op: driven.RecordWritten},
			{Path: filepath.Join(dir, "sunnyside.json"), Op: driven.RecordRemoved},
			{Path: filepath.Join(dir, "_template.json"), Op: driven.RecordWritten},
		}}, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go func() {
		// Give the loop time to drain the queued events.
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	err := svc.Watch(ctx, dir)
	require.NoError(t, err)

	assert.Len(t, store.upserted, 2, "beltline record produced two chunks")
	assert.Contains(t, store.deleted, "beltline", "replacement deletes before upserting")
	assert.Contains(t, store.deleted, "sunnyside", "removed record deletes its chunks")
	for _, c := range store.upserted {
		assert.NotEqual(t, "_template", c.Community, "internal files are ignored")
	}
}
