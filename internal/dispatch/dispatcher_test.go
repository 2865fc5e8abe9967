package dispatch

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legendary/internal/config"
	"legendary/internal/runner"
)

type call struct {
	Program string
	Args    []string
}

// fakeRunner returns scripted outcomes per program and records every call.
// Programs without a script succeed.
type fakeRunner struct {
	outcomes map[string]runner.Outcome
	calls    []call
}

func (f *fakeRunner) Run(program string, args []string) (runner.Outcome, error) {
	f.calls = append(f.calls, call{Program: program, Args: args})
	o, ok := f.outcomes[program]
	if !ok {
		return runner.Succeeded, nil
	}
	if o == runner.LaunchFailed {
		return o, errors.New("exec: \"" + program + "\": executable file not found in $PATH")
	}
	return o, nil
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		PackageManager: "pacman",
		AURHelper:      "yay",
		SnapshotTool:   "snapper",
		UIHelper:       "legendary-ui",
		AboutFile:      filepath.Join(t.TempDir(), "missing-ascii"),
	}
}

type harness struct {
	d      *Dispatcher
	runner *fakeRunner
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newHarness(t *testing.T, cfg config.Config, outcomes map[string]runner.Outcome) *harness {
	t.Helper()
	h := &harness{
		runner: &fakeRunner{outcomes: outcomes},
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	h.d = New(cfg, h.runner, h.stdout, h.stderr, false)
	return h
}

func TestInstallPrimarySucceeds(t *testing.T) {
	h := newHarness(t, testConfig(t), nil)

	ok, err := h.d.Dispatch("install", []string{"foo"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []call{{"pacman", []string{"-S", "foo", "--noconfirm"}}}, h.runner.calls)
	assert.Contains(t, h.stdout.String(), "Installing package: foo")
	assert.Contains(t, h.stdout.String(), "Executing: pacman -S foo --noconfirm")
	assert.Contains(t, h.stdout.String(), "Package foo installed successfully with pacman!")
	assert.Empty(t, h.stderr.String())
}

func TestInstallFallsBackOnce(t *testing.T) {
	h := newHarness(t, testConfig(t), map[string]runner.Outcome{"pacman": runner.Failed})

	ok, err := h.d.Dispatch("install", []string{"foo"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []call{
		{"pacman", []string{"-S", "foo", "--noconfirm"}},
		{"yay", []string{"-S", "foo", "--noconfirm"}},
	}, h.runner.calls)
	assert.Contains(t, h.stdout.String(), "Package foo not found in pacman repos, trying yay...")
	assert.Contains(t, h.stdout.String(), "Package foo installed successfully with yay!")
	assert.Contains(t, h.stderr.String(), "Command pacman failed.")
}

func TestInstallBothFail(t *testing.T) {
	h := newHarness(t, testConfig(t), map[string]runner.Outcome{
		"pacman": runner.Failed,
		"yay":    runner.Failed,
	})

	ok, err := h.d.Dispatch("install", []string{"foo"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, h.runner.calls, 2)
	assert.Contains(t, h.stderr.String(), "Failed to install package foo with yay.")
}

func TestInstallLaunchFailureStillFallsBack(t *testing.T) {
	h := newHarness(t, testConfig(t), map[string]runner.Outcome{"pacman": runner.LaunchFailed})

	ok, err := h.d.Dispatch("install", []string{"foo"})
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, h.runner.calls, 2)
	assert.Equal(t, "yay", h.runner.calls[1].Program)
	assert.Contains(t, h.stderr.String(), "Error running pacman: ")
	assert.NotContains(t, h.stderr.String(), "Command pacman failed.")
}

func TestInstallThirdProvider(t *testing.T) {
	cfg := testConfig(t)
	cfg.Flatpak = "flatpak"
	h := newHarness(t, cfg, map[string]runner.Outcome{
		"pacman": runner.Failed,
		"yay":    runner.LaunchFailed,
	})

	ok, err := h.d.Dispatch("install", []string{"foo"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []call{
		{"pacman", []string{"-S", "foo", "--noconfirm"}},
		{"yay", []string{"-S", "foo", "--noconfirm"}},
		{"flatpak", []string{"install", "foo", "-y"}},
	}, h.runner.calls)
	assert.Contains(t, h.stdout.String(), "Package foo not found in yay repos, trying flatpak...")
}

func TestSearchFallbackRule(t *testing.T) {
	t.Run("primary succeeds", func(t *testing.T) {
		h := newHarness(t, testConfig(t), nil)

		ok, err := h.d.Dispatch("search", []string{"foo"})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []call{{"pacman", []string{"-Ss", "foo"}}}, h.runner.calls)
		assert.Contains(t, h.stdout.String(), "Search completed in pacman repositories!")
	})

	t.Run("primary fails", func(t *testing.T) {
		h := newHarness(t, testConfig(t), map[string]runner.Outcome{
			"pacman": runner.Failed,
			"yay":    runner.Failed,
		})

		ok, err := h.d.Dispatch("search", []string{"foo"})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, []call{
			{"pacman", []string{"-Ss", "foo"}},
			{"yay", []string{"-Ss", "foo"}},
		}, h.runner.calls)
		assert.Contains(t, h.stdout.String(), "No results in pacman repos, trying yay...")
		assert.Contains(t, h.stderr.String(), "Failed to search for packages.")
	})
}

func TestSingleProviderCommands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		program string
		argv    []string
		failure string
	}{
		{"remove", []string{"foo"}, "pacman", []string{"-R", "foo", "--noconfirm"}, "Failed to remove package foo."},
		{"update", nil, "pacman", []string{"-Sy", "--noconfirm"}, "Failed to update package lists."},
		{"upgrade", nil, "pacman", []string{"-Syu", "--noconfirm"}, "Failed to upgrade system."},
		{"clean", nil, "pacman", []string{"-Sc", "--noconfirm"}, "Failed to clean package cache."},
		{"rollback", nil, "snapper", []string{"undochange", "0..1"}, "Failed to rollback snapshot."},
		{"list", nil, "pacman", []string{"-Q"}, "Failed to list installed packages."},
		{"ui", nil, "legendary-ui", []string{}, "Failed to launch graphical UI. Is legendary-ui installed?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, outcome := range []runner.Outcome{runner.Succeeded, runner.Failed, runner.LaunchFailed} {
				h := newHarness(t, testConfig(t), map[string]runner.Outcome{tt.program: outcome})

				ok, err := h.d.Dispatch(tt.name, tt.args)
				require.NoError(t, err)
				assert.Equal(t, outcome.OK(), ok, outcome.String())
				assert.Equal(t, []call{{tt.program, tt.argv}}, h.runner.calls, outcome.String())
				if outcome.OK() {
					assert.Empty(t, h.stderr.String())
				} else {
					assert.Contains(t, h.stderr.String(), tt.failure)
				}
			}
		})
	}
}

func TestStatusRunsBothChecks(t *testing.T) {
	h := newHarness(t, testConfig(t), map[string]runner.Outcome{"pacman": runner.Failed})

	ok, err := h.d.Dispatch("status", nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []call{
		{"pacman", []string{"-Qdtq"}},
		{"snapper", []string{"list"}},
	}, h.runner.calls)
	out := h.stdout.String()
	assert.Contains(t, out, "LegendaryOS System Status")
	assert.Contains(t, out, "Orphaned packages detected.")
	assert.Contains(t, out, "Snapshots listed successfully!")
}

func TestStatusResultFollowsSnapshotList(t *testing.T) {
	h := newHarness(t, testConfig(t), map[string]runner.Outcome{"snapper": runner.Failed})

	ok, err := h.d.Dispatch("status", nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, h.runner.calls, 2)
	assert.Contains(t, h.stdout.String(), "No orphaned packages found.")
	assert.Contains(t, h.stderr.String(), "Failed to list snapshots.")
}

func TestAboutMissingFile(t *testing.T) {
	cfg := testConfig(t)
	h := newHarness(t, cfg, nil)

	ok, err := h.d.Dispatch("about", nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, h.runner.calls)
	assert.Contains(t, h.stderr.String(), "Failed to read "+cfg.AboutFile)
	out := h.stdout.String()
	assert.Contains(t, out, "LegendaryOS System Information")
	assert.Contains(t, out, "System: LegendaryOS")
	assert.Contains(t, out, "Tool: legendary v1.0.0")
	assert.Contains(t, out, "Description: A vibrant CLI tool for managing packages and snapshots")
	assert.Contains(t, out, "Developed by: LegendaryOS Team")
}

func TestAboutPrintsFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.AboutFile = filepath.Join(t.TempDir(), "ascii")
	require.NoError(t, os.WriteFile(cfg.AboutFile, []byte("  /\\  LEGENDARY\n"), 0644))
	h := newHarness(t, cfg, nil)

	ok, err := h.d.Dispatch("about", nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, h.stderr.String())
	assert.Contains(t, h.stdout.String(), "  /\\  LEGENDARY")
}

func TestHelpListing(t *testing.T) {
	h := newHarness(t, testConfig(t), nil)

	ok, err := h.d.Dispatch("help", nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, h.runner.calls)

	out := h.stdout.String()
	assert.Contains(t, out, "Legendary CLI Tool - Available Commands\n")
	assert.Contains(t, out, "help           - Show this help message\n")
	assert.Contains(t, out, "install <pkg>  - Install a package (falls back to yay)\n")
	assert.Contains(t, out, "search <query> - Search for packages in repositories\n")
	assert.Contains(t, out, "status         - Show system and snapshot status\n")
}

func TestEmptyNameIsHelp(t *testing.T) {
	help := newHarness(t, testConfig(t), nil)
	_, err := help.d.Dispatch("help", nil)
	require.NoError(t, err)

	empty := newHarness(t, testConfig(t), nil)
	_, err = empty.d.Dispatch("", nil)
	require.NoError(t, err)

	assert.Equal(t, help.stdout.String(), empty.stdout.String())
}

func TestArgumentCountRejectedBeforeSpawn(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"install", nil},
		{"remove", nil},
		{"search", nil},
		{"install", []string{"a", "b"}},
		{"update", []string{"extra"}},
	}

	for _, tt := range tests {
		h := newHarness(t, testConfig(t), nil)

		ok, err := h.d.Dispatch(tt.name, tt.args)
		assert.Error(t, err, tt.name)
		assert.False(t, ok)
		assert.Empty(t, h.runner.calls, tt.name)
	}
}

func TestUnknownCommand(t *testing.T) {
	h := newHarness(t, testConfig(t), nil)

	_, err := h.d.Dispatch("frobnicate", nil)
	assert.ErrorContains(t, err, `unknown command "frobnicate"`)
	assert.Empty(t, h.runner.calls)
}

func TestTableCoversEveryCommand(t *testing.T) {
	var names []string
	for _, c := range Table(config.Default()) {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"help", "install", "update", "upgrade", "remove", "rollback",
		"about", "ui", "search", "list", "clean", "status",
	}, names)
}

func TestTitleRules(t *testing.T) {
	tests := []struct {
		name  string
		title string
		rule  int
	}{
		{"about", "LegendaryOS System Information", 29},
		{"status", "LegendaryOS System Status", 24},
		{"help", "Legendary CLI Tool - Available Commands", 39},
	}

	for _, tt := range tests {
		h := newHarness(t, testConfig(t), nil)
		_, err := h.d.Dispatch(tt.name, nil)
		require.NoError(t, err)

		lines := strings.Split(h.stdout.String(), "\n")
		require.GreaterOrEqual(t, len(lines), 2, tt.name)
		assert.Equal(t, tt.title, lines[0], tt.name)
		assert.Equal(t, strings.Repeat("-", tt.rule), lines[1], tt.name)
	}
}

func TestColorizedOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	d := New(testConfig(t), &fakeRunner{}, &stdout, &stderr, true)

	_, err := d.Dispatch("update", nil)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "\x1b[")
	assert.Contains(t, stdout.String(), "Package lists updated successfully!")
}
