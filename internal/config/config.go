// Package config loads the avtoolbox YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-avtoolbox/internal/dateutil"
	"github.com/alnah/go-avtoolbox/internal/fileutil"
	"github.com/alnah/go-avtoolbox/internal/logging"
	"github.com/alnah/go-avtoolbox/internal/pipeline"
	"github.com/alnah/go-avtoolbox/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// DefaultName is the config file searched when none is given.
const DefaultName = "avtoolbox"

// appDir is the directory under os.UserConfigDir.
const appDir = "avtoolbox"

// Field length limits.
const (
	MaxPathLength     = 4096
	MaxNameLength     = 64 // style and template names
	MaxTOCTitleLength = 100
	MaxDateFmtLength  = dateutil.MaxDateFormatLength
)

// Countdown tick bounds.
const (
	MinTick = 10 * time.Millisecond
	MaxTick = time.Minute
)

// Export formats.
const (
	ExportSVG = "svg"
	ExportPNG = "png"
)

// Config holds every setting the CLI reads from file.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Content   ContentConfig   `yaml:"content"`
	Assets    AssetsConfig    `yaml:"assets"`
	Blog      BlogConfig      `yaml:"blog"`
	Countdown CountdownConfig `yaml:"countdown"`
	Export    ExportConfig    `yaml:"export"`
}

// LogConfig selects log verbosity and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`  // trace, debug, info, warn, error, off
	Format string `yaml:"format"` // console or json
}

// ContentConfig locates articles.
type ContentConfig struct {
	PostsDir string `yaml:"postsDir"` // empty = embedded posts
}

// AssetsConfig locates custom styles and templates.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets
}

// BlogConfig defines article rendering.
type BlogConfig struct {
	Engine     string `yaml:"engine"`     // lite or gfm
	Style      string `yaml:"style"`      // style name or css path
	Template   string `yaml:"template"`   // template set name
	DateFormat string `yaml:"dateFormat"` // preset or pattern
	TOC        bool   `yaml:"toc"`
	TOCTitle   string `yaml:"tocTitle"`
}

// CountdownConfig defines the terminal countdown.
type CountdownConfig struct {
	Tick string `yaml:"tick"` // Go duration, e.g. "100ms"
}

// ExportConfig defines graphic exports.
type ExportConfig struct {
	Format  string `yaml:"format"`  // svg or png
	Timeout string `yaml:"timeout"` // Go duration for PNG capture
}

// TickDuration parses Countdown.Tick. Empty returns 0.
func (c CountdownConfig) TickDuration() (time.Duration, error) {
	return parseDuration("countdown.tick", c.Tick)
}

// TimeoutDuration parses Export.Timeout. Empty returns 0.
func (c ExportConfig) TimeoutDuration() (time.Duration, error) {
	return parseDuration("export.timeout", c.Timeout)
}

func parseDuration(field, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %s: %q is not a positive duration", ErrInvalidValue, field, s)
	}
	return d, nil
}

// Validate checks lengths and enumerations. Called by LoadConfig, and
// available for configs built in code.
func (c *Config) Validate() error {
	if err := (logging.Options{Level: c.Log.Level, Format: c.Log.Format}).Validate(); err != nil {
		return fmt.Errorf("%w: log: %v", ErrInvalidValue, err)
	}

	if err := validateFieldLength("content.postsDir", c.Content.PostsDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	if _, err := pipeline.ParseEngine(c.Blog.Engine); err != nil {
		return fmt.Errorf("%w: blog.engine: %v", ErrInvalidValue, err)
	}
	styleLimit := MaxNameLength
	if fileutil.IsFilePath(c.Blog.Style) {
		styleLimit = MaxPathLength
	}
	if err := validateFieldLength("blog.style", c.Blog.Style, styleLimit); err != nil {
		return err
	}
	if err := validateFieldLength("blog.template", c.Blog.Template, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("blog.dateFormat", c.Blog.DateFormat, MaxDateFmtLength); err != nil {
		return err
	}
	if _, err := dateutil.Layout(c.Blog.DateFormat); err != nil {
		return fmt.Errorf("%w: blog.dateFormat: %v", ErrInvalidValue, err)
	}
	if err := validateFieldLength("blog.tocTitle", c.Blog.TOCTitle, MaxTOCTitleLength); err != nil {
		return err
	}

	tick, err := c.Countdown.TickDuration()
	if err != nil {
		return err
	}
	if tick != 0 && (tick < MinTick || tick > MaxTick) {
		return fmt.Errorf("%w: countdown.tick: must be between %s and %s, got %s", ErrInvalidValue, MinTick, MaxTick, tick)
	}

	switch strings.ToLower(c.Export.Format) {
	case "", ExportSVG, ExportPNG:
	default:
		return fmt.Errorf("%w: export.format: %q (must be svg or png)", ErrInvalidValue, c.Export.Format)
	}
	if _, err := c.Export.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Log:       LogConfig{Level: "info", Format: logging.FormatConsole},
		Blog:      BlogConfig{Engine: string(pipeline.EngineLite), DateFormat: dateutil.DefaultPreset, TOCTitle: "Contents"},
		Countdown: CountdownConfig{Tick: "100ms"},
		Export:    ExportConfig{Format: ExportSVG, Timeout: "30s"},
	}
}

// LoadConfig loads a config from a file path or a config name. A name is
// searched as name.yaml and name.yml in the current directory, then in
// the user config directory under avtoolbox/. Keys missing from the file
// keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads the DefaultName config when one exists and returns
// DefaultConfig otherwise. Parse and validation errors are returned.
func LoadDefault() (*Config, error) {
	cfg, err := LoadConfig(DefaultName)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// isFilePath treats names with a separator or a yaml extension as paths.
func isFilePath(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return strings.ContainsAny(s, "/\\") || ext == ".yaml" || ext == ".yml"
}

// SearchPaths lists where a config name is looked up, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, appDir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
