package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	avtoolbox "github.com/alnah/go-avtoolbox"
	"github.com/alnah/go-avtoolbox/internal/bind"
	"github.com/alnah/go-avtoolbox/internal/fileutil"
	"github.com/alnah/go-avtoolbox/internal/hints"
)

// Graphics accepted by the export command.
const (
	graphicLowerThird = "lower-third"
	graphicSafeArea   = "safe-area"
)

// stdoutPath selects standard output for -o.
const stdoutPath = "-"

// runExport renders a lower third or safe area graphic to a file.
func runExport(ctx context.Context, args []string, env *Environment) error {
	var f exportFlags
	fs := newExportFlagSet(&f)
	if err := parseFlagSet(fs, args, env.Stderr, printExportUsage); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		printExportUsage(env.Stderr)
		return fmt.Errorf("%w: export requires %s or %s", ErrUsage, graphicLowerThird, graphicSafeArea)
	}

	kind := fs.Arg(0)
	var render func(*avtoolbox.Toolbox, context.Context, avtoolbox.Params, string) (*avtoolbox.Export, error)
	switch kind {
	case graphicLowerThird, "lower-third-builder":
		kind, render = graphicLowerThird, (*avtoolbox.Toolbox).ExportLowerThird
	case graphicSafeArea, "safe-area-overlay":
		kind, render = graphicSafeArea, (*avtoolbox.Toolbox).ExportSafeArea
	default:
		return fmt.Errorf("%w: cannot export %q (want %s or %s)", ErrUsage, kind, graphicLowerThird, graphicSafeArea)
	}

	params, err := bind.ParseAssignments(append(fs.Args()[1:], f.set...))
	if err != nil {
		return err
	}

	if err := env.setup(f.common); err != nil {
		return err
	}
	if f.timeout != "" {
		d, err := time.ParseDuration(f.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: --timeout %q is not a positive duration", ErrUsage, f.timeout)
		}
		env.Config.Export.Timeout = d.String()
	}
	format := f.format
	if format == "" {
		format = env.Config.Export.Format
	}

	tb, err := env.toolbox()
	if err != nil {
		return err
	}
	defer tb.Close()

	out, err := render(tb, ctx, params, format)
	if err != nil {
		return exportError(err)
	}

	path := f.output
	if path == "" {
		path = kind
	}
	if path != stdoutPath && filepath.Ext(path) == "" {
		path = fileutil.ReplaceExt(path, out.Ext())
	}
	if path == stdoutPath {
		if _, err := env.Stdout.Write(out.Data); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if err := fileutil.WriteFile(path, out.Data); err != nil {
		if errors.Is(err, fileutil.ErrOutputDir) {
			return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
		}
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if !f.common.quiet {
		fmt.Fprintf(env.Stderr, "wrote %s (%dx%d %s)\n", path, out.Width, out.Height, out.Format)
	}
	return nil
}

// exportError appends browser hints to capture failures.
func exportError(err error) error {
	switch {
	case errors.Is(err, avtoolbox.ErrBrowserConnect):
		return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	}
	return err
}
