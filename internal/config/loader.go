package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFlip loads the game tuning.
// Search order: customPath -> ~/.arcade/configs/ohflip.yaml -> ./configs/ohflip.yaml -> embedded default
// Files ending in .toml are decoded as TOML, everything else as YAML.
// Fields missing from a file keep their default values.
func LoadFlip(customPath string) (FlipConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultFlipConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return DefaultFlipConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{
		userConfigPath("ohflip.yaml"),
		userConfigPath("ohflip.toml"),
		filepath.Join("configs", "ohflip.yaml"),
		filepath.Join("configs", "ohflip.toml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode("ohflip.yaml", defaultFlipYAML)
	if err != nil {
		return DefaultFlipConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data over the defaults so partial files are valid.
func decode(path string, data []byte) (FlipConfig, error) {
	cfg := DefaultFlipConfig()
	goals := cfg.Goals
	cfg.Goals = nil

	var err error
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return DefaultFlipConfig(), err
	}
	if len(cfg.Goals) == 0 {
		cfg.Goals = goals
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyFlipPreset modifies the config based on a difficulty preset.
// Normal and fixed keep the configured landing windows.
func ApplyFlipPreset(cfg *FlipConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Bounce.FailAngle = 45
		cfg.Bounce.PerfectAngle = 10
	case DifficultyHard:
		cfg.Bounce.FailAngle = 20
		cfg.Bounce.PerfectAngle = 4
	}
}
