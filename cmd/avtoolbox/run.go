package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-avtoolbox/internal/config"
	"github.com/alnah/go-avtoolbox/internal/hints"
	"github.com/alnah/go-avtoolbox/internal/logging"
)

// command runs one subcommand with the arguments after its name.
type command func(ctx context.Context, args []string, env *Environment) error

// commands maps subcommand names to handlers. help, version and
// completion are handled by runMain directly.
var commands = map[string]command{
	"calc":      runCalc,
	"tools":     runTools,
	"blog":      runBlog,
	"countdown": runCountdown,
	"export":    runExport,
	"doctor":    runDoctorCmd,
}

// runMain dispatches args (including the program name) and returns the
// process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	name, rest := args[1], args[2:]
	switch name {
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "avtoolbox %s\n", Version)
		return ExitSuccess
	case "completion":
		return report(env, runCompletion(rest, env))
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(env.Stderr, "%v: %s\n\n", ErrUnknownCommand, name)
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return report(env, cmd(ctx, rest, env))
}

// report prints err and maps it to an exit code. --help is a success.
func report(env *Environment, err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v\n", err)
	return exitCodeFor(err)
}

// setup loads configuration for a command: file, then AVTOOLBOX_*
// variables, then the common flags. It also builds env.Logger.
func (env *Environment) setup(f commonFlags) error {
	var environ []string
	if env.Environ != nil {
		environ = env.Environ()
	}

	envCfg, err := loadEnvConfig(environ)
	if err != nil {
		return err
	}
	if !f.quiet {
		warnUnknownEnvVars(env.Stderr, environ)
	}

	name := f.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	cfg, err := loadConfig(name)
	if err != nil {
		return err
	}

	applyEnvConfig(envCfg, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("environment: %w", err)
	}

	level := cfg.Log.Level
	switch {
	case f.verbose:
		level = "debug"
	case f.quiet:
		level = "error"
	}

	env.Config = cfg
	env.Logger = logging.New(logging.Options{
		Level:     level,
		Format:    cfg.Log.Format,
		Component: "cli",
		Writer:    env.Stderr,
		NoColor:   env.Stderr != os.Stderr,
	})
	return nil
}

// loadConfig loads the named config, or the default one when name is
// empty. A missing named config gets a hint.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.LoadDefault()
	}
	cfg, err := config.LoadConfig(name)
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
	}
	return cfg, err
}
