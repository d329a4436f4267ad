package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

// ---------------------------------------------------------------------------
// TestRunCalc - Calculator output
// ---------------------------------------------------------------------------

func TestRunCalc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wants   []string
		rejects []string
	}{
		{
			name:  "defaults",
			args:  []string{"calc", "stream-delay"},
			wants: []string{"Stream Delay Calculator", "Total Delay", "5.2 s", "Buffering"},
		},
		{
			name:  "full slug",
			args:  []string{"calc", "bitrate-calculator"},
			wants: []string{"Bitrate Calculator (single)", "6.1 Mbps", "128 kbps"},
		},
		{
			name:  "set overrides positional",
			args:  []string{"calc", "bitrate", "resolution=1080p", "--set", "resolution=720p"},
			wants: []string{"3.0 Mbps"},
		},
		{
			name:  "mode selects variant",
			args:  []string{"calc", "bitrate", "mode=ladder", "resolution=720p"},
			wants: []string{"Bitrate Calculator (ladder)", "720p", "1080p", "4K"},
		},
		{
			name:    "stream key masked by default",
			args:    []string{"calc", "rtmp", "platform=twitch", "key=live_abcdef1234"},
			wants:   []string{"rtmps://live.twitch.tv/app", "1234"},
			rejects: []string{"live_abcdef1234"},
		},
		{
			name:  "show key reveals stream key",
			args:  []string{"calc", "rtmp", "platform=twitch", "key=live_abcdef1234", "--show-key"},
			wants: []string{"rtmps://live.twitch.tv/app/live_abcdef1234"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t)
			if code := env.run(tt.args...); code != ExitSuccess {
				t.Fatalf("exit = %d, want 0\nstderr: %s", code, env.stderr.String())
			}
			out := env.stdout.String()
			assertContains(t, "stdout", out, tt.wants...)
			for _, r := range tt.rejects {
				if strings.Contains(out, r) {
					t.Errorf("stdout should not contain %q, got:\n%s", r, out)
				}
			}
		})
	}
}

func TestRunCalc_JSON(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	if code := env.run("calc", "aspect", "width=1920", "height=1080", "--json"); code != ExitSuccess {
		t.Fatalf("exit = %d, want 0\nstderr: %s", code, env.stderr.String())
	}

	var got struct {
		Tool      string `json:"tool"`
		Available bool   `json:"available"`
		Fields    []struct {
			Label string `json:"label"`
			Value string `json:"value"`
		} `json:"fields"`
	}
	if err := json.Unmarshal(env.stdout.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, env.stdout.String())
	}
	if got.Tool != "aspect-ratio-calculator" {
		t.Errorf("tool = %q, want aspect-ratio-calculator", got.Tool)
	}
	if !got.Available {
		t.Error("available = false, want true")
	}
	if len(got.Fields) == 0 || got.Fields[0].Label != "Aspect Ratio" || got.Fields[0].Value != "16:9" {
		t.Errorf("first field = %+v, want Aspect Ratio 16:9", got.Fields)
	}
}

func TestRunCalc_YAML(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	if code := env.run("calc", "countdown", "minutes=2", "--yaml"); code != ExitSuccess {
		t.Fatalf("exit = %d, want 0\nstderr: %s", code, env.stderr.String())
	}

	var got map[string]any
	if err := yaml.Unmarshal(env.stdout.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, env.stdout.String())
	}
	if got["tool"] != "countdown-generator" {
		t.Errorf("tool = %v, want countdown-generator", got["tool"])
	}
}

func TestRunCalc_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantStderr string
	}{
		{
			name:       "unknown tool prints coming soon",
			args:       []string{"calc", "teleprompter"},
			wantStdout: "coming soon",
			wantStderr: "unknown tool",
		},
		{
			name:       "typo suggests a tool",
			args:       []string{"calc", "bitrat"},
			wantStderr: "bitrate",
		},
		{
			name:       "exclusive output formats",
			args:       []string{"calc", "bitrate", "--json", "--yaml"},
			wantStderr: "exclusive",
		},
		{
			name:       "out of range value",
			args:       []string{"calc", "stream-delay", "buffer=45"},
			wantStderr: "buffer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t)
			if code := env.run(tt.args...); code != ExitUsage {
				t.Errorf("exit = %d, want %d", code, ExitUsage)
			}
			if tt.wantStdout != "" {
				assertContains(t, "stdout", env.stdout.String(), tt.wantStdout)
			}
			assertContains(t, "stderr", env.stderr.String(), tt.wantStderr)
		})
	}
}
