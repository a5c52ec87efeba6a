package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "data/communities", cfg.DataDir)
	assert.Equal(t, 8, cfg.TopK)
	assert.Empty(t, cfg.Embedding.Model)
	assert.Zero(t, cfg.Generator.Timeout())
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := `
data_dir = "/srv/communities"
top_k = 4

[embedding]
base_url = "http://ollama:11434"
model = "all-minilm"

[generator]
command = "claude"
timeout_seconds = 30
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/communities", cfg.DataDir)
	assert.Equal(t, 4, cfg.TopK)
	assert.Equal(t, "http://ollama:11434", cfg.Embedding.BaseURL)
	assert.Equal(t, "all-minilm", cfg.Embedding.Model)
	assert.Equal(t, "claude", cfg.Generator.Command)
	assert.Equal(t, 30*time.Second, cfg.Generator.Timeout())
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte(`[embedding]`+"\n"+`model = "all-minilm"`+"\n"), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "data/communities", cfg.DataDir)
	assert.Equal(t, 8, cfg.TopK)
	assert.Equal(t, "all-minilm", cfg.Embedding.Model)
}

func TestLoadConfig_MalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("data_dir = [unclosed"), 0o600))

	_, err := LoadConfig(dir)
	assert.Error(t, err, "a typo should not silently fall back to defaults")
}

func TestSystemPrompt(t *testing.T) {
	dir := t.TempDir()

	prompt, err := SystemPrompt(dir)
	require.NoError(t, err)
	assert.Empty(t, prompt, "missing file means no system prompt")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "prompts"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prompts", "system.md"),
		[]byte("You are a Calgary community expert.\n"), 0o600))

	prompt, err = SystemPrompt(dir)
	require.NoError(t, err)
	assert.Equal(t, "You are a Calgary community expert.\n", prompt)
}
