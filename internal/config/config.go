package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Variant selects one of the two presentation presets.
type Variant string

const (
	// VariantClassified classifies reviews, colours flagged reviews with the
	// problem accent and routes them to the last column.
	VariantClassified Variant = "classified"

	// VariantCycling skips classification and cycles a five-colour palette
	// by position.
	VariantCycling Variant = "cycling"
)

// Theme is the wall's colour scheme.
type Theme string

const (
	ThemeDay   Theme = "day"
	ThemeNight Theme = "night"
)

// Config captures everything marquee needs at startup.
type Config struct {
	DataPath       string
	Columns        int
	Variant        Variant
	Classification bool
	FlaggedColumn  bool
	CoastOnManual  bool
	Theme          Theme
	CellHeight     int
	FrameRate      int
	ContentLimit   int
	AuthorLimit    int
	LogLevel       string
	LogFile        string
}

const (
	defaultConfigPath = "~/.config/marquee/config.toml"
	defaultDataPath   = "./reviews.csv"
	defaultLogFile    = "~/.local/share/marquee/marquee.log"
	defaultColumns    = 3
	defaultCellHeight = 16
	defaultFrameRate  = 60
	defaultLogLevel   = "info"

	classifiedContentLimit = 150
	cyclingContentLimit    = 400
	defaultAuthorLimit     = 30
)

// raw mirrors the file format. Pointers distinguish "unset" from zero values
// so variant presets can fill the gaps.
type raw struct {
	DataPath       string `toml:"data_path" yaml:"data_path"`
	Columns        int    `toml:"columns" yaml:"columns"`
	Variant        string `toml:"variant" yaml:"variant"`
	Classification *bool  `toml:"classification" yaml:"classification"`
	FlaggedColumn  *bool  `toml:"flagged_column" yaml:"flagged_column"`
	CoastOnManual  *bool  `toml:"coast_on_manual" yaml:"coast_on_manual"`
	Theme          string `toml:"theme" yaml:"theme"`
	CellHeight     int    `toml:"cell_height" yaml:"cell_height"`
	FrameRate      int    `toml:"frame_rate" yaml:"frame_rate"`
	ContentLimit   int    `toml:"content_limit" yaml:"content_limit"`
	AuthorLimit    int    `toml:"author_limit" yaml:"author_limit"`
	LogLevel       string `toml:"log_level" yaml:"log_level"`
	LogFile        string `toml:"log_file" yaml:"log_file"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	cfg, _ := build(raw{})
	return cfg
}

// Load locates and parses the config, falling back to defaults when missing.
// Files ending in .yaml or .yml are parsed as YAML, everything else as TOML.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var r raw
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &r)
	default:
		err = toml.Unmarshal(bytes, &r)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return build(r)
}

func build(r raw) (Config, error) {
	cfg := Config{
		DataPath:   strings.TrimSpace(r.DataPath),
		Columns:    r.Columns,
		Variant:    Variant(strings.ToLower(strings.TrimSpace(r.Variant))),
		Theme:      Theme(strings.ToLower(strings.TrimSpace(r.Theme))),
		CellHeight: r.CellHeight,
		FrameRate:  r.FrameRate,
		LogLevel:   strings.ToLower(strings.TrimSpace(r.LogLevel)),
		LogFile:    strings.TrimSpace(r.LogFile),
	}

	if cfg.DataPath == "" {
		cfg.DataPath = defaultDataPath
	}
	if strings.HasPrefix(cfg.DataPath, "~") {
		cfg.DataPath = mustExpand(cfg.DataPath)
	}
	if cfg.Columns == 0 {
		cfg.Columns = defaultColumns
	}
	if cfg.Variant == "" {
		cfg.Variant = VariantClassified
	}
	if cfg.Theme == "" {
		cfg.Theme = ThemeNight
	}
	if cfg.CellHeight == 0 {
		cfg.CellHeight = defaultCellHeight
	}
	if cfg.FrameRate == 0 {
		cfg.FrameRate = defaultFrameRate
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile
	}
	cfg.LogFile = mustExpand(cfg.LogFile)

	cfg.ApplyVariant()
	if r.Classification != nil {
		cfg.Classification = *r.Classification
	}
	if r.FlaggedColumn != nil {
		cfg.FlaggedColumn = *r.FlaggedColumn
	}
	cfg.CoastOnManual = true
	if r.CoastOnManual != nil {
		cfg.CoastOnManual = *r.CoastOnManual
	}
	if r.ContentLimit != 0 {
		cfg.ContentLimit = r.ContentLimit
	}
	if r.AuthorLimit != 0 {
		cfg.AuthorLimit = r.AuthorLimit
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyVariant resets the variant-dependent fields to the preset values.
func (c *Config) ApplyVariant() {
	c.AuthorLimit = defaultAuthorLimit
	switch c.Variant {
	case VariantCycling:
		c.Classification = false
		c.FlaggedColumn = false
		c.ContentLimit = cyclingContentLimit
	default:
		c.Classification = true
		c.FlaggedColumn = true
		c.ContentLimit = classifiedContentLimit
	}
}

// Validate reports every out-of-range field.
func (c Config) Validate() error {
	var errs []error
	if c.Columns < 1 || c.Columns > 4 {
		errs = append(errs, fmt.Errorf("columns must be between 1 and 4, got %d", c.Columns))
	}
	switch c.Variant {
	case VariantClassified, VariantCycling:
	default:
		errs = append(errs, fmt.Errorf("unknown variant %q", c.Variant))
	}
	switch c.Theme {
	case ThemeDay, ThemeNight:
	default:
		errs = append(errs, fmt.Errorf("unknown theme %q", c.Theme))
	}
	if c.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("cell_height must be positive, got %d", c.CellHeight))
	}
	if c.FrameRate <= 0 || c.FrameRate > 240 {
		errs = append(errs, fmt.Errorf("frame_rate must be between 1 and 240, got %d", c.FrameRate))
	}
	if c.ContentLimit <= 0 {
		errs = append(errs, fmt.Errorf("content_limit must be positive, got %d", c.ContentLimit))
	}
	if c.AuthorLimit <= 0 {
		errs = append(errs, fmt.Errorf("author_limit must be positive, got %d", c.AuthorLimit))
	}
	return errors.Join(errs...)
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
