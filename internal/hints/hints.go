// Package hints turns common failures into actionable advice. Hints are
// formatted as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-avtoolbox/internal/fileutil"
)

// IsInContainer detects Docker through the /.dockerenv marker file.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect suggests the rod environment variables, adding
// ROD_NO_SANDBOX when running in CI or a container.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use a local Chrome")
	}
	hints = append(hints, "or export with --format svg")

	return formatHints(hints)
}

// ForTimeout returns a hint about raising the capture timeout.
func ForTimeout() string {
	return format("raise --timeout or export.timeout on slow machines")
}

// ForConfigNotFound suggests --config and the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	sep := string(os.PathSeparator)
	for _, p := range searchedPaths {
		if strings.Contains(p, sep+"avtoolbox"+sep) {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the available styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForUnknownTool suggests the closest tool slugs to input, or points at
// the tools command when nothing is close.
func ForUnknownTool(input string, slugs []string) string {
	if match := Closest(input, slugs); match != "" {
		return format("did you mean " + match + "?")
	}
	return format("run 'avtoolbox tools' to list tools")
}

// ForPostNotFound suggests the closest post slug or the list command.
func ForPostNotFound(input string, slugs []string) string {
	if match := Closest(input, slugs); match != "" {
		return format("did you mean " + match + "?")
	}
	return format("run 'avtoolbox blog list' to list posts")
}

// Closest returns the candidate nearest to input by edit distance, or ""
// when none is within a third of the input length. A candidate that
// starts with input wins outright.
func Closest(input string, candidates []string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}

	best, bestDist := "", len(input)/3+1
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if strings.HasPrefix(lc, input) {
			return c
		}
		if d := levenshtein(input, lc); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// levenshtein counts single-rune edits between a and b.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
