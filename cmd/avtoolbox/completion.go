package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-avtoolbox/internal/assets"
	"github.com/alnah/go-avtoolbox/internal/catalog"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags, comma separated
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Args        []string // positional suggestions
	FilePattern string   // glob for file arguments (e.g., "*.md")
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
func flagCompletionMeta() map[string]completionMeta {
	categories := make([]string, len(catalog.Categories))
	for i, c := range catalog.Categories {
		categories[i] = c.String()
	}
	return map[string]completionMeta{
		// Enum flags
		"engine":      {Values: []string{"lite", "gfm"}},
		"format":      {Values: []string{"svg", "png"}},
		"date-format": {Values: []string{"iso", "european", "us", "long"}},
		"category":    {Values: categories},
		"tool":        {Values: catalog.ShortSlugs()},
		"style":       {Values: assets.StyleNames()},

		// File flags with glob patterns
		"config": {FileGlob: "*.yaml,*.yml"},
		"output": {FileGlob: "*"},
	}
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	meta := flagCompletionMeta()
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int64", "uint", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if m, ok := meta[f.Name]; ok {
			switch {
			case len(m.Values) > 0:
				fd.Type = flagEnum
				fd.Values = m.Values
			case m.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = m.FileGlob
			case m.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// mergeFlags concatenates flag lists, keeping the first of each name.
func mergeFlags(lists ...[]flagDef) []flagDef {
	var out []flagDef
	seen := map[string]bool{}
	for _, list := range lists {
		for _, f := range list {
			if !seen[f.Long] {
				seen[f.Long] = true
				out = append(out, f)
			}
		}
	}
	return out
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets.
func getCommands() []commandDef {
	var posts []string
	if cat, err := catalog.Default(); err == nil {
		posts = postSlugs(cat)
	}

	return []commandDef{
		{
			Name:  "calc",
			Desc:  "Run a calculator",
			Flags: extractFlagsFromFlagSet(newCalcFlagSet(&calcFlags{})),
			Args:  catalog.ShortSlugs(),
		},
		{
			Name:  "tools",
			Desc:  "List tools or show one tool",
			Flags: extractFlagsFromFlagSet(newToolsFlagSet(&toolsFlags{})),
			Args:  catalog.ShortSlugs(),
		},
		{
			Name: "blog",
			Desc: "List and render articles",
			Flags: mergeFlags(
				extractFlagsFromFlagSet(newBlogRenderFlagSet(&blogRenderFlags{})),
				extractFlagsFromFlagSet(newBlogListFlagSet(&blogListFlags{})),
			),
			Args:        append([]string{"list", "render"}, posts...),
			FilePattern: "*.md,*.markdown",
		},
		{
			Name:  "countdown",
			Desc:  "Run a countdown in the terminal",
			Flags: extractFlagsFromFlagSet(newCountdownFlagSet(&countdownFlags{})),
		},
		{
			Name:  "export",
			Desc:  "Export a lower third or safe area graphic",
			Flags: extractFlagsFromFlagSet(newExportFlagSet(&exportFlags{})),
			Args:  []string{graphicLowerThird, graphicSafeArea},
		},
		{
			Name:  "doctor",
			Desc:  "Check system for PNG export",
			Flags: extractFlagsFromFlagSet(newDoctorFlagSet(&doctorFlags{})),
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)},
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
			Args: []string{"calc", "tools", "blog", "countdown", "export", "doctor", "completion", "version"},
		},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	cmds := getCommands()
	var script string
	switch shell {
	case ShellBash:
		script = generateBash(cmds)
	case ShellZsh:
		script = generateZsh(cmds)
	case ShellFish:
		script = generateFish(cmds)
	case ShellPowerShell:
		script = generatePowerShell(cmds)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
	if _, err := io.WriteString(w, script); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// flagWords lists --long and -s forms.
func flagWords(flags []flagDef) []string {
	var out []string
	for _, f := range flags {
		out = append(out, "--"+f.Long)
		if f.Short != "" {
			out = append(out, "-"+f.Short)
		}
	}
	return out
}

func commandNames(cmds []commandDef) []string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.Name
	}
	return out
}

func generateBash(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# bash completion for avtoolbox\n")
	b.WriteString("_avtoolbox_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", strings.Join(commandNames(cmds), " "))
	b.WriteString("        return\n    fi\n\n")
	b.WriteString("    case \"${cmd}\" in\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		writeBashValueCases(&b, c.Flags)
		b.WriteString("        if [[ ${cur} == -* ]]; then\n")
		fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", strings.Join(flagWords(c.Flags), " "))
		b.WriteString("        else\n")
		switch {
		case c.FilePattern != "":
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %q -- \"${cur}\") $(compgen -f -- \"${cur}\"))\n", strings.Join(c.Args, " "))
		default:
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", strings.Join(c.Args, " "))
		}
		b.WriteString("        fi\n        ;;\n")
	}
	b.WriteString("    esac\n}\n\n")
	b.WriteString("complete -F _avtoolbox_completions avtoolbox\n")
	return b.String()
}

// writeBashValueCases completes the value after a flag that takes one.
func writeBashValueCases(b *strings.Builder, flags []flagDef) {
	var cases []string
	for _, f := range flags {
		pattern := "--" + f.Long
		if f.Short != "" {
			pattern += "|-" + f.Short
		}
		switch f.Type {
		case flagEnum:
			cases = append(cases, fmt.Sprintf("        %s) COMPREPLY=($(compgen -W %q -- \"${cur}\")); return ;;", pattern, strings.Join(f.Values, " ")))
		case flagFile:
			cases = append(cases, fmt.Sprintf("        %s) COMPREPLY=($(compgen -f -- \"${cur}\")); return ;;", pattern))
		case flagDir:
			cases = append(cases, fmt.Sprintf("        %s) COMPREPLY=($(compgen -d -- \"${cur}\")); return ;;", pattern))
		case flagString, flagInt:
			cases = append(cases, fmt.Sprintf("        %s) return ;;", pattern))
		}
	}
	if len(cases) == 0 {
		return
	}
	b.WriteString("        case \"${prev}\" in\n")
	for _, c := range cases {
		b.WriteString(c + "\n")
	}
	b.WriteString("        esac\n")
}

// zshEscape escapes text for use inside a single-quoted _arguments spec.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)
	return r.Replace(s)
}

// zshGlob turns "*.yaml,*.yml" into "*.(yaml|yml)".
func zshGlob(globs string) string {
	parts := strings.Split(globs, ",")
	if len(parts) == 1 {
		return parts[0]
	}
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		exts = append(exts, strings.TrimPrefix(p, "*."))
	}
	return "*.(" + strings.Join(exts, "|") + ")"
}

func zshAction(f flagDef) string {
	switch f.Type {
	case flagEnum:
		return ":value:(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		if f.FileGlob == "*" {
			return ":file:_files"
		}
		return ":file:_files -g \"" + zshGlob(f.FileGlob) + "\""
	case flagDir:
		return ":directory:_files -/"
	case flagString, flagInt:
		return ":value: "
	}
	return ""
}

func generateZsh(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("#compdef avtoolbox\n\n")
	b.WriteString("_avtoolbox() {\n")
	b.WriteString("    local -a commands\n    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n    fi\n\n")
	b.WriteString("    local cmd=\"${words[2]}\"\n")
	b.WriteString("    shift words\n    (( CURRENT-- ))\n\n")
	b.WriteString("    case \"${cmd}\" in\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "    %s)\n        _arguments", c.Name)
		for _, f := range c.Flags {
			desc := "[" + zshEscape(f.Desc) + "]" + zshAction(f)
			if f.Short != "" {
				fmt.Fprintf(&b, " \\\n            '(-%s --%s)'{-%s,--%s}'%s'", f.Short, f.Long, f.Short, f.Long, desc)
			} else {
				fmt.Fprintf(&b, " \\\n            '--%s%s'", f.Long, desc)
			}
		}
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, " \\\n            '*:arg:(%s)'", strings.Join(c.Args, " "))
		}
		b.WriteString("\n        ;;\n")
	}
	b.WriteString("    esac\n}\n\n")
	b.WriteString("compdef _avtoolbox avtoolbox\n")
	return b.String()
}

// fishEscape escapes text for a single-quoted fish string.
func fishEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}

func generateFish(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# fish completion for avtoolbox\n\n")
	b.WriteString("function __fish_avtoolbox_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_avtoolbox_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c avtoolbox -f\n\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c avtoolbox -n __fish_avtoolbox_needs_command -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}
	b.WriteString("\n")

	for _, c := range cmds {
		cond := "'__fish_avtoolbox_using_command " + c.Name + "'"
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c avtoolbox -n %s -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagEnum:
				line += " -x -a '" + fishEscape(strings.Join(f.Values, " ")) + "'"
			case flagFile:
				line += " -r -F"
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			case flagString, flagInt:
				line += " -x"
			}
			line += " -d '" + fishEscape(f.Desc) + "'"
			b.WriteString(line + "\n")
		}
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "complete -c avtoolbox -n %s -a '%s'\n", cond, fishEscape(strings.Join(c.Args, " ")))
		}
		if c.FilePattern != "" {
			fmt.Fprintf(&b, "complete -c avtoolbox -n %s -F\n", cond)
		}
	}
	return b.String()
}

func generatePowerShell(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# powershell completion for avtoolbox\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName avtoolbox -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $words = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	b.WriteString("    $commands = @{\n")
	for _, c := range cmds {
		words := append(flagWords(c.Flags), c.Args...)
		slices.Sort(words)
		quoted := make([]string, len(words))
		for i, w := range words {
			quoted[i] = "'" + strings.ReplaceAll(w, "'", "''") + "'"
		}
		fmt.Fprintf(&b, "        '%s' = @(%s)\n", c.Name, strings.Join(quoted, ", "))
	}
	b.WriteString("    }\n\n")
	b.WriteString("    if ($words.Count -le 1 -or ($words.Count -eq 2 -and $wordToComplete)) {\n")
	b.WriteString("        $candidates = $commands.Keys\n")
	b.WriteString("    } else {\n")
	b.WriteString("        $candidates = $commands[$words[1]]\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $candidates | Where-Object { $_ -like \"$wordToComplete*\" } | Sort-Object | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
	return b.String()
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: avtoolbox completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(avtoolbox completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(avtoolbox completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    avtoolbox completion fish > ~/.config/fish/completions/avtoolbox.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    avtoolbox completion powershell | Out-String | Invoke-Expression")
}
