package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	avtoolbox "github.com/alnah/go-avtoolbox"
	"github.com/alnah/go-avtoolbox/internal/bind"
	"github.com/alnah/go-avtoolbox/internal/catalog"
	"github.com/alnah/go-avtoolbox/internal/display"
	"github.com/alnah/go-avtoolbox/internal/hints"
	"github.com/alnah/go-avtoolbox/internal/yamlutil"
)

// runCalc runs one calculator. Parameters come from positional key=value
// pairs and --set, with --set winning.
func runCalc(ctx context.Context, args []string, env *Environment) error {
	var f calcFlags
	fs := newCalcFlagSet(&f)
	if err := parseFlagSet(fs, args, env.Stderr, printCalcUsage); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		printCalcUsage(env.Stderr)
		return fmt.Errorf("%w: calc requires a tool", ErrUsage)
	}
	if f.output.json && f.output.yaml {
		return fmt.Errorf("%w: --json and --yaml are exclusive", ErrUsage)
	}

	slug := fs.Arg(0)
	id, err := catalog.ParseToolID(slug)
	if err != nil {
		fmt.Fprintln(env.Stdout, avtoolbox.ComingSoon)
		return fmt.Errorf("%w%s", err, hints.ForUnknownTool(slug, catalog.ShortSlugs()))
	}

	params, err := bind.ParseAssignments(append(fs.Args()[1:], f.set...))
	if err != nil {
		return err
	}

	if err := env.setup(f.common); err != nil {
		return err
	}
	tb, err := env.toolbox()
	if err != nil {
		return err
	}
	defer tb.Close()

	res, err := tb.Calculate(ctx, id, params)
	if err != nil {
		return err
	}
	if f.showKey {
		res.RevealSecrets()
	}

	switch {
	case f.output.json:
		return writeJSON(env.Stdout, res)
	case f.output.yaml:
		return writeYAML(env.Stdout, res)
	}

	heading := id.String()
	if tool, err := tb.Catalog().Tool(id); err == nil {
		heading = tool.Name
	}
	if res.Mode != "" {
		heading += " (" + res.Mode + ")"
	}
	if err := display.WriteFields(env.Stdout, heading, res.Fields); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// writeYAML prints v as YAML.
func writeYAML(w io.Writer, v any) error {
	data, err := yamlutil.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
