// Package config loads the optional YAML settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ngmaloney/truewind/internal/database"
	"github.com/ngmaloney/truewind/internal/models"
	"gopkg.in/yaml.v3"
)

// Config holds application-wide settings
type Config struct {
	ReferenceFrame models.ReferenceFrame  `yaml:"reference_frame"`
	Orientation    models.OrientationMode `yaml:"orientation"`
	Database       string                 `yaml:"database"`  // sqlite file for saved preferences
	LogLevel       string                 `yaml:"log_level"` // DEBUG, INFO, WARN, ERROR, CRITICAL
	LogFile        string                 `yaml:"log_file"`  // terminal app only, the screen owns stdout
	PNGSize        int                    `yaml:"png_size"`  // pixels, square
}

// DefaultPath returns the settings file looked up when none is given
func DefaultPath() string {
	return "truewind.yaml"
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		ReferenceFrame: models.NorthReferenced,
		Orientation:    models.NorthUp,
		Database:       database.DBPath(),
		LogLevel:       "WARN",
		LogFile:        filepath.Join(filepath.Dir(database.DBPath()), "truewind.log"),
		PNGSize:        480,
	}
}

// Load reads a settings file on top of the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enum values and sizes
func (c Config) Validate() error {
	if _, err := models.ParseReferenceFrame(string(c.ReferenceFrame)); err != nil {
		return err
	}
	if _, err := models.ParseOrientationMode(string(c.Orientation)); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.PNGSize <= 0 {
		return fmt.Errorf("png_size must be positive, got %d", c.PNGSize)
	}
	return nil
}
