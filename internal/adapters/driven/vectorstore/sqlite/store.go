// Package sqlite provides a SQLite-backed vector store. Embeddings are
// persisted as little-endian float32 blobs next to the chunk text and
// metadata, and similarity queries do a full cosine scan. The corpus is a
// few thousand chunks at most; a scan is well under a millisecond.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/calgarypulse/pulse-qa/internal/core/domain"
	"github.com/calgarypulse/pulse-qa/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS chunks (
	id        TEXT PRIMARY KEY,
	community TEXT NOT NULL,
	section   TEXT NOT NULL,
	url       TEXT NOT NULL,
	document  TEXT NOT NULL,
	viz       TEXT NOT NULL,
	embedding BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chunks_community ON chunks(community);
`

// Store persists chunks with their embeddings in SQLite.
type Store struct {
	db       *sql.DB
	embedder driven.EmbeddingService
	path     string
}

// NewStore creates a vector store at the specified data directory.
// If dataDir is empty, defaults to ~/.pulse-qa/data.
func NewStore(dataDir string, embedder driven.EmbeddingService) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".pulse-qa", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "chunks.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, embedder: embedder, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Upsert inserts or replaces chunks by ID, embedding their text first.
func (s *Store) Upsert(ctx context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embedding chunks: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (id, community, section, url, document, viz, embedding)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			community = excluded.community,
			section = excluded.section,
			url = excluded.url,
			document = excluded.document,
			viz = excluded.viz,
			embedding = excluded.embedding
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, chunk := range chunks {
		vizJSON, err := json.Marshal(chunk.Viz)
		if err != nil {
			return fmt.Errorf("marshalling viz metadata: %w", err)
		}
		embeddingBlob := float32SliceToBytes(embeddings[i])

		if _, err := stmt.ExecContext(ctx, chunk.ID, chunk.Community, chunk.Section,
			chunk.URL, chunk.Text, string(vizJSON), embeddingBlob); err != nil {
			return fmt.Errorf("saving chunk %s: %w", chunk.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// DeleteCommunity removes every chunk belonging to a community.
func (s *Store) DeleteCommunity(ctx context.Context, community string) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM chunks WHERE community = ?", community)
	if err != nil {
		return 0, fmt.Errorf("deleting chunks: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted chunks: %w", err)
	}
	return int(removed), nil
}

// Reset drops the whole collection.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM chunks"); err != nil {
		return fmt.Errorf("resetting collection: %w", err)
	}
	return nil
}

// Query returns the k chunks nearest to the question, closest first.
// Distance is cosine distance (1 - similarity), so lower is closer.
func (s *Store) Query(ctx context.Context, question string, k int) ([]domain.RetrievedChunk, error) {
	queryVec, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embedding question: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, community, section, url, document, viz, embedding FROM chunks")
	if err != nil {
		return nil, fmt.Errorf("querying chunks: %w", err)
	}
	defer rows.Close()

	var results []domain.RetrievedChunk
	for rows.Next() {
		var chunk domain.Chunk
		var vizJSON string
		var embeddingBlob []byte
		if err := rows.Scan(&chunk.ID, &chunk.Community, &chunk.Section,
			&chunk.URL, &chunk.Text, &vizJSON, &embeddingBlob); err != nil {
			return nil, fmt.Errorf("scanning chunk: %w", err)
		}
		if err := json.Unmarshal([]byte(vizJSON), &chunk.Viz); err != nil {
			return nil, fmt.Errorf("unmarshalling viz metadata for %s: %w", chunk.ID, err)
		}

		similarity := cosineSimilarity(queryVec, bytesToFloat32Slice(embeddingBlob))
		results = append(results, domain.RetrievedChunk{
			Chunk:    chunk,
			Distance: 1 - similarity,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chunks: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	if k < len(results) {
		results = results[:k]
	}
	return results, nil
}

// Count returns the total number of chunks stored.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting chunks: %w", err)
	}
	return count, nil
}

// CountByCommunity returns per-community chunk counts.
func (s *Store) CountByCommunity(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT community, COUNT(*) FROM chunks GROUP BY community")
	if err != nil {
		return nil, fmt.Errorf("counting per community: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var community string
		var count int
		if err := rows.Scan(&community, &count); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts[community] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating counts: %w", err)
	}
	return counts, nil
}

// ==================== Helper Functions ====================

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched or zero-length vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// float32SliceToBytes converts a []float32 to a byte slice for storage.
func float32SliceToBytes(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice converts a byte slice back to []float32.
func bytesToFloat32Slice(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}
