package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/alnah/go-avtoolbox/internal/config"
)

// envPrefix is shared by every recognized variable.
const envPrefix = "AVTOOLBOX_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	// Tier 1 - Essential
	ConfigPath string `env:"AVTOOLBOX_CONFIG"`
	LogLevel   string `env:"AVTOOLBOX_LOG_LEVEL"`
	LogFormat  string `env:"AVTOOLBOX_LOG_FORMAT"`

	// Tier 2 - Content and assets
	PostsDir  string `env:"AVTOOLBOX_POSTS_DIR"`
	AssetsDir string `env:"AVTOOLBOX_ASSETS_DIR"`
	Engine    string `env:"AVTOOLBOX_ENGINE"`
	Style     string `env:"AVTOOLBOX_STYLE"`

	// Tier 3 - Timing
	Timeout time.Duration `env:"AVTOOLBOX_TIMEOUT"`
	Tick    time.Duration `env:"AVTOOLBOX_TICK"`

	// Read by doctor only
	Container bool `env:"AVTOOLBOX_CONTAINER"`
}

// knownEnvVars lists valid AVTOOLBOX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"AVTOOLBOX_CONFIG":     true,
	"AVTOOLBOX_LOG_LEVEL":  true,
	"AVTOOLBOX_LOG_FORMAT": true,
	"AVTOOLBOX_POSTS_DIR":  true,
	"AVTOOLBOX_ASSETS_DIR": true,
	"AVTOOLBOX_ENGINE":     true,
	"AVTOOLBOX_STYLE":      true,
	"AVTOOLBOX_TIMEOUT":    true,
	"AVTOOLBOX_TICK":       true,
	"AVTOOLBOX_CONTAINER":  true,
}

// loadEnvConfig reads the AVTOOLBOX_* variables from environ, a list of
// KEY=value pairs as returned by os.Environ.
func loadEnvConfig(environ []string) (*envConfig, error) {
	var cfg envConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: env.ToMap(environ)}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvConfig, err)
	}
	if cfg.Timeout < 0 || cfg.Tick < 0 {
		return nil, fmt.Errorf("%w: durations must be positive", ErrEnvConfig)
	}
	return &cfg, nil
}

// warnUnknownEnvVars logs warnings for unrecognized AVTOOLBOX_* variables.
// Helps catch typos like AVTOOLBOX_STYEL instead of AVTOOLBOX_STYLE.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	var unknown []string
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig applies environment variable values to config.
// A set variable overrides the file value. Flags are applied later by
// each command, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(e *envConfig, cfg *config.Config) {
	if e.LogLevel != "" {
		cfg.Log.Level = e.LogLevel
	}
	if e.LogFormat != "" {
		cfg.Log.Format = e.LogFormat
	}
	if e.PostsDir != "" {
		cfg.Content.PostsDir = e.PostsDir
	}
	if e.AssetsDir != "" {
		cfg.Assets.BasePath = e.AssetsDir
	}
	if e.Engine != "" {
		cfg.Blog.Engine = e.Engine
	}
	if e.Style != "" {
		cfg.Blog.Style = e.Style
	}
	if e.Timeout > 0 {
		cfg.Export.Timeout = e.Timeout.String()
	}
	if e.Tick > 0 {
		cfg.Countdown.Tick = e.Tick.String()
	}
}
