package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// Resource thresholds below which PNG export may struggle.
const (
	minAvailableMemory = 512 << 20 // bytes
	minFreeTempDisk    = 100 << 20 // bytes
)

// chromeVersionTimeout bounds the chrome --version probe.
const chromeVersionTimeout = 10 * time.Second

// ErrDoctor reports that doctor found blocking problems.
var ErrDoctor = errors.New("system not ready")

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Chrome   chromeInfo `json:"chrome"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// chromeInfo holds Chrome/Chromium detection results.
type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable    bool   `json:"temp_writable"`
	CPUs            int    `json:"cpus,omitempty"`
	MemoryTotal     uint64 `json:"memory_total,omitempty"`
	MemoryAvailable uint64 `json:"memory_available,omitempty"`
	TempFree        uint64 `json:"temp_free,omitempty"`
}

// runDoctorCmd executes the doctor command. Warnings alone succeed;
// errors return ErrDoctor.
func runDoctorCmd(ctx context.Context, args []string, e *Environment) error {
	var f doctorFlags
	fs := newDoctorFlagSet(&f)
	if err := parseFlagSet(fs, args, e.Stderr, printDoctorUsage); err != nil {
		return err
	}

	var environ []string
	if e.Environ != nil {
		environ = e.Environ()
	}
	result := runDoctor(ctx, env.ToMap(environ))

	if f.json {
		if err := writeJSON(e.Stdout, result); err != nil {
			return err
		}
	} else {
		printDoctorResult(e.Stdout, result)
	}

	if result.Status == statusErrors {
		return fmt.Errorf("%w: %s", ErrDoctor, strings.Join(result.Errors, "; "))
	}
	return nil
}

// runDoctor performs all diagnostic checks against the given variables.
func runDoctor(ctx context.Context, vars map[string]string) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  vars["ROD_NO_SANDBOX"],
			BrowserBin: vars["ROD_BROWSER_BIN"],
		},
	}

	checkChrome(ctx, result)
	checkEnvironment(result, vars)
	checkSystem(ctx, result)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}

	return result
}

// checkChrome detects Chrome/Chromium. A missing browser only disables
// PNG export, so it is a warning.
func checkChrome(ctx context.Context, result *doctorResult) {
	chromePath := result.Env.BrowserBin

	if chromePath == "" {
		var found bool
		chromePath, found = launcher.LookPath()
		if !found {
			result.Warnings = append(result.Warnings,
				"Chrome/Chromium not found. PNG export needs Chrome or ROD_BROWSER_BIN")
			return
		}
	}

	if _, err := os.Stat(chromePath); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Chrome not found at %s", chromePath))
		return
	}

	result.Chrome.Found = true
	result.Chrome.Path = chromePath

	vctx, cancel := context.WithTimeout(ctx, chromeVersionTimeout)
	defer cancel()
	out, err := exec.CommandContext(vctx, chromePath, "--version").Output() // #nosec G204 -- browser path from env or rod lookup
	if err == nil {
		result.Chrome.Version = strings.TrimSpace(string(out))
	} else {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not get Chrome version: %v", err))
	}

	result.Chrome.Sandbox = result.Env.NoSandbox != "1"
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult, vars map[string]string) {
	result.Env.Container, result.Env.ContainerHint = isContainer(vars)

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if vars[v] != "" {
			result.Env.CI = true
			break
		}
	}

	if (result.Env.Container || result.Env.CI) && result.Env.NoSandbox != "1" {
		result.Warnings = append(result.Warnings,
			"Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer(vars map[string]string) (bool, string) {
	if vars["AVTOOLBOX_CONTAINER"] == "1" {
		return true, "AVTOOLBOX_CONTAINER=1"
	}
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	// Podman / systemd-nspawn
	if v := vars["container"]; v != "" {
		return true, "container=" + v
	}
	if vars["KUBERNETES_SERVICE_HOST"] != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the temp directory and reports resources. Resource
// probes that fail are skipped.
func checkSystem(ctx context.Context, result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "avtoolbox-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}

	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		result.System.CPUs = n
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		result.System.MemoryTotal = vm.Total
		result.System.MemoryAvailable = vm.Available
		if vm.Available < minAvailableMemory {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Low memory: %s available, Chrome may fail to start", formatBytes(vm.Available)))
		}
	}

	if du, err := disk.UsageWithContext(ctx, tmpDir); err == nil {
		result.System.TempFree = du.Free
		if du.Free < minFreeTempDisk {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Low disk space in %s: %s free", tmpDir, formatBytes(du.Free)))
		}
	}
}

// formatBytes renders n in binary units, e.g. 1.5 GiB.
func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "avtoolbox doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Chrome/Chromium")
	if r.Chrome.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Chrome.Path)
		if r.Chrome.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			fmt.Fprintln(w, "  [OK] Sandbox: enabled")
		} else {
			fmt.Fprintln(w, "  [OK] Sandbox: disabled (ROD_NO_SANDBOX=1)")
		}
	} else {
		fmt.Fprintln(w, "  [WARN] Not found (SVG export only)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	if r.System.CPUs > 0 {
		fmt.Fprintf(w, "  [OK] CPUs: %d\n", r.System.CPUs)
	}
	if r.System.MemoryTotal > 0 {
		fmt.Fprintf(w, "  [OK] Memory: %s available of %s\n",
			formatBytes(r.System.MemoryAvailable), formatBytes(r.System.MemoryTotal))
	}
	if r.System.TempFree > 0 {
		fmt.Fprintf(w, "  [OK] Temp disk: %s free\n", formatBytes(r.System.TempFree))
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to export")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
