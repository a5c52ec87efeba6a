package chunker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/calgarypulse/pulse-qa/internal/core/domain"
)

// Slug derives the community slug a record file indexes under: the record's
// own slug field, falling back to the file stem.
func Slug(path string, rec domain.Record) string {
	if slug := rec.String("slug"); slug != "" {
		return slug
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// ChunkFile parses a single community record file and chunks it. A file
// that cannot be read or parsed is a hard error: silently skipping it would
// leave an undetected gap in the corpus.
func ChunkFile(path string) ([]domain.Chunk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading record %s: %w", path, err)
	}

	var rec domain.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing record %s: %w (%w)", path, domain.ErrInvalidRecord, err)
	}

	slug := Slug(path, rec)
	name := rec.String("name")
	if name == "" {
		name = strings.ToUpper(slug)
	}

	return ChunkCommunity(rec, slug, name), nil
}

// ChunkDir chunks every eligible record file in a directory, in
// lexicographic filename order. Files whose name starts with an underscore
// are templates or internal fixtures and are skipped. Any parse failure
// aborts the whole run.
func ChunkDir(dir string) ([]domain.Chunk, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("listing records in %s: %w", dir, err)
	}
	sort.Strings(paths)

	var all []domain.Chunk
	for _, path := range paths {
		if Internal(path) {
			continue
		}
		chunks, err := ChunkFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, chunks...)
	}

	return all, nil
}

// Internal reports whether a record file is marked internal (template or
// fixture) via a leading underscore in its name.
func Internal(path string) bool {
	return strings.HasPrefix(filepath.Base(path), "_")
}
