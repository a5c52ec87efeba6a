package file

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultDataDir = "data/communities"
	DefaultTopK    = 8
)

// Config is the application configuration, loaded from config.toml in the
// config directory. Every field has a working default; a missing file means
// a default configuration.
type Config struct {
	// DataDir is the community record directory.
	DataDir string `toml:"data_dir"`

	// StoreDir is where the chunk database lives. Empty means the store's
	// own default (~/.pulse-qa/data).
	StoreDir string `toml:"store_dir"`

	// TopK is the number of chunks retrieved per question.
	TopK int `toml:"top_k"`

	// Embedding configures the Ollama embedding service.
	Embedding EmbeddingConfig `toml:"embedding"`

	// Generator configures the answer generation command.
	Generator GeneratorConfig `toml:"generator"`
}

// EmbeddingConfig configures the embedding service.
type EmbeddingConfig struct {
	// BaseURL is the Ollama API base URL.
	BaseURL string `toml:"base_url"`

	// Model is the embedding model name.
	Model string `toml:"model"`
}

// GeneratorConfig configures the generation subprocess.
type GeneratorConfig struct {
	// Command is the executable to run.
	Command string `toml:"command"`

	// TimeoutSeconds bounds one generation.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// Timeout returns the generation timeout as a duration. Zero or negative
// values mean "use the generator's default".
func (g GeneratorConfig) Timeout() time.Duration {
	if g.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// DefaultConfigDir returns ~/.pulse-qa.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".pulse-qa"), nil
}

// LoadConfig reads config.toml from the config directory. A missing file
// yields the defaults; a malformed file is an error so a typo does not
// silently fall back to defaults.
func LoadConfig(configDir string) (Config, error) {
	cfg := Config{
		DataDir: DefaultDataDir,
		TopK:    DefaultTopK,
	}

	if configDir == "" {
		dir, err := DefaultConfigDir()
		if err != nil {
			return Config{}, err
		}
		configDir = dir
	}

	data, err := os.ReadFile(filepath.Join(configDir, "config.toml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	return cfg, nil
}
