package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkBusiness_BothSubtreesAbsent(t *testing.T) {
	rec := record(t, `{"hero": {"population": 1}}`)

	assert.Nil(t, ChunkBusiness(rec, "x", "X"))
}

func TestChunkBusiness_CharacterOnly(t *testing.T) {
	rec := record(t, `{"business_character": {"character": "Main street retail", "total_businesses": 312}}`)

	chunk := ChunkBusiness(rec, "inglewood", "Inglewood")
	require.NotNil(t, chunk)

	assert.Equal(t, "inglewood-business", chunk.ID)
	assert.Equal(t, "business-development", chunk.Section)
	assert.Contains(t, chunk.Text, "Business character: Main street retail.")
	assert.Contains(t, chunk.Text, "Total active businesses: 312.")
}

func TestChunkBusiness_MissingCharacterFallsBackToNA(t *testing.T) {
	rec := record(t, `{"business_character": {"total_businesses": 10}}`)

	chunk := ChunkBusiness(rec, "x", "X")
	require.NotNil(t, chunk)
	assert.Contains(t, chunk.Text, "Business character: N/A.")
}

func TestChunkBusiness_EmptyCharacterRendersEmpty(t *testing.T) {
	rec := record(t, `{"business_character": {"character": "", "total_businesses": 10}}`)

	chunk := ChunkBusiness(rec, "x", "X")
	require.NotNil(t, chunk)
	assert.Contains(t, chunk.Text, "Business character: . ")
	assert.NotContains(t, chunk.Text, "N/A")
}

func TestChunkBusiness_LicensesAndPermits(t *testing.T) {
	rec := record(t, `{
		"business_development": {
			"business_licenses": {
				"active_total": 540, "city_avg_active": 210,
				"top_types": [
					{"type": "Food Service", "count": 120},
					{"type": "Retail", "count": 95}
				]
			},
			"building_permits": {
				"total_12mo": 88, "total_yoy_pct": 12.5,
				"units_created_12mo": 450, "total_value_12mo": 95000000
			}
		}
	}`)

	chunk := ChunkBusiness(rec, "x", "X")
	require.NotNil(t, chunk)

	assert.Contains(t, chunk.Text, "Active business licenses: 540 (city average: 210).")
	assert.Contains(t, chunk.Text, "Top types: Food Service (120), Retail (95). ")
	assert.Contains(t, chunk.Text, "Building permits (12 months): 88 (+12.5% YoY).")
	assert.Contains(t, chunk.Text, "Units created: 450.")
	assert.Contains(t, chunk.Text, "Total permit value: $95,000,000.")

	require.Len(t, chunk.Viz, 2)
	assert.Equal(t, "BusinessDevelopmentSection", chunk.Viz[0].Component)
	assert.Equal(t, "BusinessDevelopmentSection", chunk.Viz[1].Component)
}

func TestChunkBusiness_PermitsWithoutYoY(t *testing.T) {
	rec := record(t, `{
		"business_development": {"building_permits": {"total_12mo": 3}}
	}`)

	chunk := ChunkBusiness(rec, "x", "X")
	require.NotNil(t, chunk)
	assert.Contains(t, chunk.Text, "Building permits (12 months): 3 (+0.0% YoY).")
	assert.NotContains(t, chunk.Text, "Units created")
	assert.NotContains(t, chunk.Text, "Total permit value")
}
