package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "match3.yaml"

// LoadMatch3 loads the match-3 configuration.
// Search order: customPath -> ~/.match3/configs/match3.yaml ->
// ./configs/match3.yaml -> embedded default -> hardcoded default.
// Only an explicit customPath can produce an error; broken files further
// down the chain are skipped.
func LoadMatch3(customPath string) (Match3Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Match3Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Match3Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := Parse(defaultMatch3YAML); err == nil {
		return cfg, nil
	}
	return DefaultMatch3Config(), nil
}

// Parse decodes YAML on top of the hardcoded defaults, so a file only needs
// to set the values it changes, and validates the result.
func Parse(data []byte) (Match3Config, error) {
	cfg := DefaultMatch3Config()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Match3Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Match3Config{}, err
	}
	return cfg, nil
}

// Load resolves the config and applies a variant and a difficulty preset.
// Unknown variants keep the configured board size.
func Load(customPath, variantID string, preset DifficultyPreset) (Match3Config, error) {
	cfg, err := LoadMatch3(customPath)
	if err != nil {
		return cfg, err
	}
	if v, ok := LookupVariant(variantID); ok {
		ApplyVariant(&cfg, v)
	}
	ApplyDifficultyPreset(&cfg, preset)
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath(configFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", configFile))
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", "configs", filename)
}
