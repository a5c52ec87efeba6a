package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkServiceRequests_AbsentSubtree(t *testing.T) {
	rec := record(t, `{"hero": {}}`)

	assert.Nil(t, ChunkServiceRequests(rec, "x", "X"))
}

func TestChunkServiceRequests_TopCategories(t *testing.T) {
	rec := record(t, `{
		"service_requests_311": {
			"total": 8412,
			"top_categories": [
				{"category": "Snow and Ice", "count": 1200, "yoy_pct": 15.2},
				{"category": "Graffiti", "count": 640, "yoy_pct": -2.0}
			]
		}
	}`)

	chunk := ChunkServiceRequests(rec, "beltline", "Beltline")
	require.NotNil(t, chunk)

	assert.Equal(t, "beltline-311", chunk.ID)
	assert.Equal(t, "311-service-requests", chunk.Section)
	assert.Equal(t, "https://calgarypulse.ca/communities/beltline#311", chunk.URL)
	assert.Contains(t, chunk.Text, "Total requests (24 months): 8,412.")
	assert.Contains(t, chunk.Text,
		"Top categories: Snow and Ice (1,200, +15.2% YoY), Graffiti (640, -2.0% YoY). ")
}

func TestChunkServiceRequests_MissingYoYDefaultsToZero(t *testing.T) {
	rec := record(t, `{
		"service_requests_311": {
			"total": 10,
			"top_categories": [{"category": "Other", "count": 10}]
		}
	}`)

	chunk := ChunkServiceRequests(rec, "x", "X")
	require.NotNil(t, chunk)
	assert.Contains(t, chunk.Text, "Other (10, +0.0% YoY)")
}

func TestChunkServiceRequests_NoCategories(t *testing.T) {
	rec := record(t, `{"service_requests_311": {"total": 42}}`)

	chunk := ChunkServiceRequests(rec, "x", "X")
	require.NotNil(t, chunk)
	assert.Equal(t, "X 311 service requests. Total requests (24 months): 42. ", chunk.Text)
}
