package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"legendary/internal/logger"
)

// LoadConfig returns the defaults overlaid with the YAML file at configFile.
// An empty configFile means DefaultConfigFile, which may be absent; a file
// named explicitly must exist.
func LoadConfig(configFile string) (Config, error) {
	cfg := Default()

	path := configFile
	if path == "" {
		path = DefaultConfigFile
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if configFile == "" && errors.Is(err, fs.ErrNotExist) {
			logger.Debug("[DEBUG] No config at %s, using defaults\n", path)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// Keys present in the file replace the defaults; absent keys keep them.
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	logger.Debug("[DEBUG] Loaded config from %s: %+v\n", path, cfg)
	return cfg, nil
}

// Validate reports the first required field left empty.
func (c Config) Validate() error {
	required := []struct {
		key, value string
	}{
		{"package_manager", c.PackageManager},
		{"aur_helper", c.AURHelper},
		{"snapshot_tool", c.SnapshotTool},
		{"ui_helper", c.UIHelper},
		{"about_file", c.AboutFile},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s must not be empty", r.key)
		}
	}
	return nil
}
