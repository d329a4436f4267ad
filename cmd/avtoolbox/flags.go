package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags selects machine-readable output.
type outputFlags struct {
	json bool
	yaml bool
}

// calcFlags holds flags for the calc command.
type calcFlags struct {
	common  commonFlags
	output  outputFlags
	set     []string
	showKey bool
}

// toolsFlags holds flags for the tools command.
type toolsFlags struct {
	common   commonFlags
	category string
	json     bool
}

// blogListFlags holds flags for blog list.
type blogListFlags struct {
	common commonFlags
	tool   string
	json   bool
}

// blogRenderFlags holds flags for blog render.
type blogRenderFlags struct {
	common     commonFlags
	output     string
	html       bool
	fragment   bool
	outline    bool
	watch      bool
	engine     string
	style      string
	noStyle    bool
	template   string
	toc        bool
	tocTitle   string
	dateFormat string
}

// countdownFlags holds flags for the countdown command.
type countdownFlags struct {
	common     commonFlags
	hours      int
	minutes    int
	seconds    int
	tick       string
	overlayURL string
}

// exportFlags holds flags for the export command.
type exportFlags struct {
	common  commonFlags
	set     []string
	format  string
	output  string
	timeout string
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	json bool
}

// addCommonFlags registers the config, quiet and verbose flags.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// addOutputFlags registers --json and --yaml.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.json, "json", false, "print the result as JSON")
	fs.BoolVar(&f.yaml, "yaml", false, "print the result as YAML")
}

func newCalcFlagSet(f *calcFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	fs.StringArrayVar(&f.set, "set", nil, "parameter as key=value (repeatable)")
	fs.BoolVar(&f.showKey, "show-key", false, "show stream keys in clear text")
	return fs
}

func newToolsFlagSet(f *toolsFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("tools", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.category, "category", "", "only list tools in this category")
	fs.BoolVar(&f.json, "json", false, "print as JSON")
	return fs
}

func newBlogListFlagSet(f *blogListFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("blog list", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.tool, "tool", "", "only list posts about this tool")
	fs.BoolVar(&f.json, "json", false, "print as JSON")
	return fs
}

func newBlogRenderFlagSet(f *blogRenderFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("blog render", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "write HTML to this file")
	fs.BoolVar(&f.html, "html", false, "print the full HTML page")
	fs.BoolVar(&f.fragment, "fragment", false, "print the HTML body only")
	fs.BoolVar(&f.outline, "outline", false, "print the numbered heading outline")
	fs.BoolVarP(&f.watch, "watch", "w", false, "rebuild on change (requires --output)")
	fs.StringVar(&f.engine, "engine", "", "markdown engine: lite, gfm")
	fs.StringVar(&f.style, "style", "", "style name or CSS file")
	fs.BoolVar(&f.noStyle, "no-style", false, "omit CSS")
	fs.StringVar(&f.template, "template", "", "template set name")
	fs.BoolVar(&f.toc, "toc", false, "add a table of contents")
	fs.StringVar(&f.tocTitle, "toc-title", "", "table of contents heading")
	fs.StringVar(&f.dateFormat, "date-format", "", "date preset or pattern")
	return fs
}

func newCountdownFlagSet(f *countdownFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("countdown", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.IntVar(&f.hours, "hours", 0, "hours (0-24)")
	fs.IntVarP(&f.minutes, "minutes", "m", 5, "minutes (0-59)")
	fs.IntVarP(&f.seconds, "seconds", "s", 0, "seconds (0-59)")
	fs.StringVar(&f.tick, "tick", "", "refresh interval, e.g. 100ms")
	fs.StringVar(&f.overlayURL, "overlay-url", "", "print the overlay URL for this origin and exit")
	return fs
}

func newExportFlagSet(f *exportFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.StringArrayVar(&f.set, "set", nil, "parameter as key=value (repeatable)")
	fs.StringVarP(&f.format, "format", "f", "", "output format: svg, png")
	fs.StringVarP(&f.output, "output", "o", "", "output file (- for stdout)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PNG capture timeout, e.g. 30s")
	return fs
}

func newDoctorFlagSet(f *doctorFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.BoolVar(&f.json, "json", false, "print as JSON")
	return fs
}

// parseFlagSet parses args with usage routed to w. Errors other than
// --help are wrapped with ErrUsage.
func parseFlagSet(fs *flag.FlagSet, args []string, w io.Writer, usage func(io.Writer)) error {
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

