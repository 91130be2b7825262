package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDino loads the runner configuration.
// Search order: customPath -> ~/.dino/configs/dino.yaml -> ./configs/dino.yaml -> embedded default.
// Only an explicit path reports read/parse errors; the implicit locations are
// skipped when missing or broken. The result is always validated.
func LoadDino(customPath string) (DinoConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DinoConfig{}, err
		}
		if err := cfg.Validate(); err != nil {
			return DinoConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("dino.yaml"), filepath.Join("configs", "dino.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultDinoYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultDinoConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a partial file
// only overrides the keys it names.
func Parse(data []byte) (DinoConfig, error) {
	cfg := DefaultDinoConfig()
	// Lists replace rather than merge; clear them so a shorter list in the
	// file does not keep trailing default entries.
	base := cfg
	cfg.Obstacles.Ground = nil
	cfg.Obstacles.FlyingAltitudes = nil
	cfg.Scenery.Clouds = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DinoConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Obstacles.Ground == nil {
		cfg.Obstacles.Ground = base.Obstacles.Ground
	}
	if cfg.Obstacles.FlyingAltitudes == nil {
		cfg.Obstacles.FlyingAltitudes = base.Obstacles.FlyingAltitudes
	}
	if cfg.Scenery.Clouds == nil {
		cfg.Scenery.Clouds = base.Scenery.Clouds
	}
	return cfg, nil
}

func loadFile(path string) (DinoConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DinoConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return DinoConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dino", "configs", filename)
}
