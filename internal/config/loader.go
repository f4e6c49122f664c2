package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.gomba/configs/gomba.{yaml,toml} ->
// ./configs/gomba.{yaml,toml} -> embedded default.
// Files are decoded over the defaults, so partial files are allowed.
func Load(customPath string) (GombaConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GombaConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return GombaConfig{}, err
		}
		if err := cfg.Validate(); err != nil {
			return GombaConfig{}, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := make([]string, 0, 4)
	if dir := userConfigDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "gomba.yaml"), filepath.Join(dir, "gomba.toml"))
	}
	candidates = append(candidates, filepath.Join("configs", "gomba.yaml"), filepath.Join("configs", "gomba.toml"))

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode("gomba.yaml", defaultGombaYAML)
	if err != nil {
		return DefaultGombaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data as TOML or YAML depending on the file extension.
func decode(path string, data []byte) (GombaConfig, error) {
	cfg := DefaultGombaConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return GombaConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return GombaConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c GombaConfig) Validate() error {
	var errs []error
	if c.Patroller.Period <= 0 {
		errs = append(errs, errors.New("patroller.period must be positive"))
	}
	if c.Axe.SwingPeriod <= 0 {
		errs = append(errs, errors.New("axe.swing_period must be positive"))
	}
	if c.Round.SpawnInterval <= 0 {
		errs = append(errs, errors.New("round.spawn_interval must be positive"))
	}
	if len(c.Round.SpawnLocations) == 0 {
		errs = append(errs, errors.New("round.spawn_locations must not be empty"))
	}
	if c.Physics.MaxX <= c.Physics.MinX {
		errs = append(errs, errors.New("physics.max_x must be greater than physics.min_x"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	return errors.Join(errs...)
}

// userConfigDir returns ~/.gomba/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gomba", "configs")
}
