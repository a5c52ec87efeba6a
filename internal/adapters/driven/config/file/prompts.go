package file

import (
	"fmt"
	"os"
	"path/filepath"
)

// SystemPrompt returns the contents of prompts/system.md in the config
// directory. A missing file means no system prompt; the pipeline then runs
// on the retrieved data and closing instruction alone.
func SystemPrompt(configDir string) (string, error) {
	if configDir == "" {
		dir, err := DefaultConfigDir()
		if err != nil {
			return "", err
		}
		configDir = dir
	}

	data, err := os.ReadFile(filepath.Join(configDir, "prompts", "system.md"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading system prompt: %w", err)
	}
	return string(data), nil
}
