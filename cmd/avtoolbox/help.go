package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-avtoolbox/internal/catalog"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: avtoolbox <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  calc        Run a calculator")
	fmt.Fprintln(w, "  tools       List tools or show one tool")
	fmt.Fprintln(w, "  blog        List and render articles")
	fmt.Fprintln(w, "  countdown   Run a countdown in the terminal")
	fmt.Fprintln(w, "  export      Export a lower third or safe area graphic")
	fmt.Fprintln(w, "  doctor      Check system for PNG export")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'avtoolbox help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags every command accepts.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
}

// printCalcUsage prints usage for the calc command.
func printCalcUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: avtoolbox calc <tool> [key=value...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run a calculator. Missing parameters take the tool's defaults.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tools:")
	fmt.Fprintf(w, "  %s\n", strings.Join(catalog.ShortSlugs(), ", "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  avtoolbox calc stream-delay encoder=200 buffer=4")
	fmt.Fprintln(w, "  avtoolbox calc bitrate mode=ladder fps=30 codec=hevc")
	fmt.Fprintln(w, "  avtoolbox calc rtmp platform=twitch key=live_123 --show-key")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --set <key=value>     Parameter (repeatable)")
	fmt.Fprintln(w, "      --json                Print the result as JSON")
	fmt.Fprintln(w, "      --yaml                Print the result as YAML")
	fmt.Fprintln(w, "      --show-key            Show stream keys in clear text")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printToolsUsage prints usage for the tools command.
func printToolsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: avtoolbox tools [tool] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List tools, or show the guide for one tool.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --category <s>        core-streaming, production-broadcast, av-engineering")
	fmt.Fprintln(w, "      --json                Print as JSON")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printBlogUsage prints usage for the blog command.
func printBlogUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: avtoolbox blog <list|render> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Subcommands:")
	fmt.Fprintln(w, "  list                      List articles")
	fmt.Fprintln(w, "  render <slug|file.md>     Render an article")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List:")
	fmt.Fprintln(w, "      --tool <slug>         Only posts about this tool")
	fmt.Fprintln(w, "      --json                Print as JSON")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render:")
	fmt.Fprintln(w, "  -o, --output <path>       Write the HTML page to a file")
	fmt.Fprintln(w, "      --html                Print the full HTML page")
	fmt.Fprintln(w, "      --fragment            Print the HTML body only")
	fmt.Fprintln(w, "      --outline             Print the numbered heading outline")
	fmt.Fprintln(w, "  -w, --watch               Rebuild on change (requires --output)")
	fmt.Fprintln(w, "      --engine <s>          Markdown engine: lite, gfm")
	fmt.Fprintln(w, "      --style <s>           Style name or CSS file")
	fmt.Fprintln(w, "      --no-style            Omit CSS")
	fmt.Fprintln(w, "      --template <s>        Template set name")
	fmt.Fprintln(w, "      --toc                 Add a table of contents")
	fmt.Fprintln(w, "      --toc-title <s>       Table of contents heading")
	fmt.Fprintln(w, "      --date-format <s>     Presets: iso, european, us, long")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printCountdownUsage prints usage for the countdown command.
func printCountdownUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: avtoolbox countdown [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Count down in the terminal. Ctrl+C stops.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --hours <n>           Hours (0-24)")
	fmt.Fprintln(w, "  -m, --minutes <n>         Minutes (0-59, default 5)")
	fmt.Fprintln(w, "  -s, --seconds <n>         Seconds (0-59)")
	fmt.Fprintln(w, "      --tick <d>            Refresh interval, e.g. 100ms")
	fmt.Fprintln(w, "      --overlay-url <url>   Print the overlay URL for this origin and exit")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: avtoolbox export <lower-third|safe-area> [key=value...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export a graphic. Parameters match the calculator of the same name.")
	fmt.Fprintln(w, "An output path without an extension gets the format's extension.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --set <key=value>     Parameter (repeatable)")
	fmt.Fprintln(w, "  -f, --format <s>          svg or png")
	fmt.Fprintln(w, "  -o, --output <path>       Output file, - for stdout (default <graphic>.<format>)")
	fmt.Fprintln(w, "  -t, --timeout <d>         PNG capture timeout, e.g. 30s")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: avtoolbox doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check Chrome, environment and system resources for PNG export.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "calc":
		printCalcUsage(env.Stdout)
	case "tools":
		printToolsUsage(env.Stdout)
	case "blog":
		printBlogUsage(env.Stdout)
	case "countdown":
		printCountdownUsage(env.Stdout)
	case "export":
		printExportUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: avtoolbox version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: avtoolbox help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
