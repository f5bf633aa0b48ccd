package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.pong/config.yaml -> ./configs/pong.yaml ->
// built-in defaults. An explicit customPath that fails to load is an error;
// the implicit locations fall through silently.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if cfg, err := parse(data, userPath); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/pong.yaml"); err == nil {
		if cfg, err := parse(data, "configs/pong.yaml"); err == nil {
			return cfg, nil
		}
	}

	return Default(), nil
}

// parse unmarshals on top of the defaults so a partial file only overrides
// what it mentions.
func parse(data []byte, path string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the per-user config location, or "" if the home
// directory cannot be determined.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", "config.yaml")
}
