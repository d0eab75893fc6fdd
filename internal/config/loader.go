package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "brickbreaker.yaml"

// SourceEmbedded is reported when no config file was found on disk.
const SourceEmbedded = "embedded"

// LoadBrickBreaker loads the game configuration.
// Search order: customPath -> ~/.brickbreaker/configs/brickbreaker.yaml ->
// ./configs/brickbreaker.yaml -> embedded default.
// Files only need to set the values they change; everything else keeps its
// default. Returns the config together with the path it was read from.
func LoadBrickBreaker(customPath string) (BrickBreakerConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BrickBreakerConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BrickBreakerConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory.
	// Unreadable or broken files here are skipped, not fatal.
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultBrickBreakerYAML)
	if err != nil {
		return DefaultBrickBreakerConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parse overlays YAML data on the hardcoded defaults and validates the result.
func parse(data []byte) (BrickBreakerConfig, error) {
	cfg := DefaultBrickBreakerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BrickBreakerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BrickBreakerConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg BrickBreakerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickbreaker", "configs", filename)
}
