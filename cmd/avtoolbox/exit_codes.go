package main

import (
	"errors"
	"os"

	avtoolbox "github.com/alnah/go-avtoolbox"
	"github.com/alnah/go-avtoolbox/internal/catalog"
	"github.com/alnah/go-avtoolbox/internal/config"
	"github.com/alnah/go-avtoolbox/internal/countdown"
	"github.com/alnah/go-avtoolbox/internal/dateutil"
	"github.com/alnah/go-avtoolbox/internal/fileutil"
	"github.com/alnah/go-avtoolbox/internal/watch"
	"github.com/alnah/go-avtoolbox/internal/yamlutil"
)

// Exit codes for the avtoolbox CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or parameters
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// CLI errors.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrUnknownCommand = errors.New("unknown command")
	ErrReadInput      = errors.New("failed to read input")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrEnvConfig      = errors.New("invalid environment variable")
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, avtoolbox.ErrBrowserConnect) ||
		errors.Is(err, avtoolbox.ErrPageLoad) ||
		errors.Is(err, avtoolbox.ErrSnapshot) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, fileutil.ErrOutputDir) ||
		errors.Is(err, watch.ErrWatch) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrEnvConfig) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, avtoolbox.ErrInvalidInput) ||
		errors.Is(err, avtoolbox.ErrUnknownTool) ||
		errors.Is(err, avtoolbox.ErrPostNotFound) ||
		errors.Is(err, avtoolbox.ErrPostsDir) ||
		errors.Is(err, yamlutil.ErrUnclosedFrontMatter) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, catalog.ErrUnknownCategory) ||
		errors.Is(err, avtoolbox.ErrUnknownEngine) ||
		errors.Is(err, avtoolbox.ErrEmptyContent) ||
		errors.Is(err, avtoolbox.ErrStyleNotFound) ||
		errors.Is(err, avtoolbox.ErrTemplateSetNotFound) ||
		errors.Is(err, avtoolbox.ErrInvalidAssetPath) ||
		errors.Is(err, avtoolbox.ErrExportFormat) ||
		errors.Is(err, countdown.ErrZeroDuration) {
		return ExitUsage
	}

	return ExitGeneral
}
