package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"treedrag.dev/treedrag/internal/errors"
	"treedrag.dev/treedrag/internal/intent"
)

// ProjectFileName is the name of the per-directory configuration file
const ProjectFileName = "treedrag.toml"

// Config represents the treedrag configuration
type Config struct {
	// GutterSize is the minimum edge-zone size used to classify drop intents,
	// in the same units as row geometry
	GutterSize float64 `toml:"gutter-size"`
	UI         UI      `toml:"ui"`
	Log        Log     `toml:"log"`
}

// UI configures the interactive drag table
type UI struct {
	// RowHeight is the number of terminal lines each row occupies
	RowHeight int `toml:"row-height"`
	// Gutter is the edge-zone size in terminal lines
	Gutter float64 `toml:"gutter"`
	// Columns lists the record fields shown after the id
	Columns []string `toml:"columns"`
}

// Log configures the rotating log file
type Log struct {
	File       string `toml:"file"`
	MaxSize    int    `toml:"max-size"`
	MaxBackups int    `toml:"max-backups"`
	MaxAge     int    `toml:"max-age"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		GutterSize: intent.DefaultGutter,
		UI: UI{
			RowHeight: 3,
			Gutter:    1,
			Columns:   []string{"name", "role"},
		},
		Log: Log{
			MaxSize:    1,
			MaxBackups: 2,
			MaxAge:     30,
		},
	}
}

// Load loads configuration from the global config file and the project file
// in dir. Missing files are skipped.
func Load(dir string) (*Config, error) {
	cfg := Default()

	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}
	for _, path := range []string{globalPath, filepath.Join(dir, ProjectFileName)} {
		if err := mergeFile(cfg, path, false); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// LoadFile loads configuration from an explicit file, which must exist
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := mergeFile(cfg, path, true); err != nil {
		return nil, err
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// Validate checks that sizes are finite and non-negative
func (c *Config) Validate() error {
	if math.IsNaN(c.GutterSize) || math.IsInf(c.GutterSize, 0) || c.GutterSize < 0 {
		return fmt.Errorf("%w: gutter-size must be a non-negative number, got %v", errors.ErrInvalidConfig, c.GutterSize)
	}
	if math.IsNaN(c.UI.Gutter) || math.IsInf(c.UI.Gutter, 0) || c.UI.Gutter < 0 {
		return fmt.Errorf("%w: ui.gutter must be a non-negative number, got %v", errors.ErrInvalidConfig, c.UI.Gutter)
	}
	if c.UI.RowHeight < 1 {
		return fmt.Errorf("%w: ui.row-height must be at least 1, got %d", errors.ErrInvalidConfig, c.UI.RowHeight)
	}
	return nil
}

func globalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "treedrag", "config.toml"), nil
}

func mergeFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var file Config
	meta, err := toml.Decode(string(data), &file)
	if err != nil {
		return fmt.Errorf("%w: parse config file %s: %v", errors.ErrInvalidConfig, path, err)
	}

	mergeDefined(cfg, &file, meta)
	return nil
}

// mergeDefined copies only the keys the file actually set
func mergeDefined(dst, src *Config, meta toml.MetaData) {
	if meta.IsDefined("gutter-size") {
		dst.GutterSize = src.GutterSize
	}
	if meta.IsDefined("ui", "row-height") {
		dst.UI.RowHeight = src.UI.RowHeight
	}
	if meta.IsDefined("ui", "gutter") {
		dst.UI.Gutter = src.UI.Gutter
	}
	if meta.IsDefined("ui", "columns") {
		dst.UI.Columns = append([]string(nil), src.UI.Columns...)
	}
	if meta.IsDefined("log", "file") {
		dst.Log.File = src.Log.File
	}
	if meta.IsDefined("log", "max-size") {
		dst.Log.MaxSize = src.Log.MaxSize
	}
	if meta.IsDefined("log", "max-backups") {
		dst.Log.MaxBackups = src.Log.MaxBackups
	}
	if meta.IsDefined("log", "max-age") {
		dst.Log.MaxAge = src.Log.MaxAge
	}
}

// applyEnv applies TREEDRAG_GUTTER_SIZE and TREEDRAG_LOG_FILE
func applyEnv(cfg *Config) error {
	if value := os.Getenv("TREEDRAG_GUTTER_SIZE"); value != "" {
		gutter, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: TREEDRAG_GUTTER_SIZE=%q is not a number", errors.ErrInvalidConfig, value)
		}
		cfg.GutterSize = gutter
	}
	if value := os.Getenv("TREEDRAG_LOG_FILE"); value != "" {
		cfg.Log.File = value
	}
	return nil
}
