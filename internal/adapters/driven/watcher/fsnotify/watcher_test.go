package fsnotify

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

func collect(t *testing.T, dir string, mutate func(), want int) []driven.RecordEvent {
	t.Helper()

	w, err := NewRecordWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events := make(chan driven.RecordEvent, 16)
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx, events) }()

	mutate()

	var got []driven.RecordEvent
	for len(got) < want {
		select {
		case ev := <-events:
			got = append(got, ev)
		case <-ctx.Done():
			t.Fatalf("timed out with %d of %d events", len(got), want)
		}
	}

	cancel()
	require.NoError(t, <-done)
	return got
}

func TestWatch_WriteProducesWrittenEvent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "beltline.json")

	events := collect(t, dir, func() {
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
	}, 1)

	assert.Equal(t, path, events[0].Path)
	assert.Equal(t, driven.RecordWritten, events[0].Op)
}

func TestWatch_RemoveProducesRemovedEvent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "beltline.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	events := collect(t, dir, func() {
		require.NoError(t, os.Remove(path))
	}, 1)

	assert.Equal(t, driven.RecordRemoved, events[0].Op)
}

func TestWatch_IgnoresNonJSONFiles(t *testing.T) {
	dir := t.TempDir()

	events := collect(t, dir, func() {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "beltline.json"), []byte(`{}`), 0o644))
	}, 1)

	assert.Equal(t, filepath.Join(dir, "beltline.json"), events[0].Path)
}

func TestNewRecordWatcher_MissingDirectory(t *testing.T) {
	_, err := NewRecordWatcher(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
