package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	avtoolbox "github.com/alnah/go-avtoolbox"
	"github.com/alnah/go-avtoolbox/internal/config"
	"github.com/alnah/go-avtoolbox/internal/countdown"
	"github.com/alnah/go-avtoolbox/internal/watch"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, configuration, and the toolbox factory.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Environ func() []string

	// Config is loaded by runMain before a command runs.
	Config *config.Config
	Logger zerolog.Logger

	NewToolbox func(opts ...avtoolbox.Option) (*avtoolbox.Toolbox, error)
	NewTicker  func(d time.Duration) countdown.Ticker
	Watch      func(ctx context.Context, target string, opt watch.Options, onChange func(string)) error
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:        time.Now,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Environ:    os.Environ,
		Config:     config.DefaultConfig(),
		Logger:     zerolog.Nop(),
		NewToolbox: avtoolbox.New,
		NewTicker:  countdown.RealTicker,
		Watch:      watch.Watch,
	}
}

// toolbox builds a Toolbox from the loaded config.
func (env *Environment) toolbox() (*avtoolbox.Toolbox, error) {
	opts := []avtoolbox.Option{
		avtoolbox.WithLogger(env.Logger),
		avtoolbox.WithPostsDir(env.Config.Content.PostsDir),
		avtoolbox.WithAssetsDir(env.Config.Assets.BasePath),
	}
	if d, err := env.Config.Export.TimeoutDuration(); err == nil && d > 0 {
		opts = append(opts, avtoolbox.WithSnapshotTimeout(d))
	}
	return env.NewToolbox(opts...)
}
