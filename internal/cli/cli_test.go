package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/plotkit/pkg/cache"
	"github.com/matzehuels/plotkit/pkg/errors"
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/observability"
)

const testBlueprint = `
[ranges.time]

[[plots]]
name = "requests"
title = "Requests"
x_range = "time"
tools = ["pan"]

[[plots]]
name = "errors"
x_range = "time"

[layout]
kind = "row"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// run executes the root command with args, discarding stdout, and returns
// the debug log.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWithCache(t, t.TempDir(), args...)
}

// runWithCache is run with XDG_CACHE_HOME set to cacheHome.
func runWithCache(t *testing.T, cacheHome string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(observability.Reset)
	t.Cleanup(func() { model.SetTheme(nil) })
	t.Setenv("XDG_CACHE_HOME", cacheHome)

	stdout := os.Stdout
	devnull, err := os.Open(os.DevNull)
	require.NoError(t, err)
	os.Stdout = devnull
	defer func() {
		os.Stdout = stdout
		devnull.Close()
	}()

	var logs bytes.Buffer
	root := New(&logs, LogDebug).RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err = root.Execute()
	return logs.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	for _, name := range []string{"schema", "build", "graph", "cache", "completion"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		format, output string
		want           string
		wantErr        bool
	}{
		{"", "", formatDOT, false},
		{"", "out.SVG", formatSVG, false},
		{"", "graph.png", formatPNG, false},
		{"", "doc.json", formatJSON, false},
		{"pdf", "graph.svg", formatPDF, false},
		{"", "graph.jpg", "", true},
		{"gif", "", "", true},
	}
	for _, tt := range tests {
		got, err := resolveFormat(tt.format, tt.output)
		if tt.wantErr {
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "resolveFormat(%q, %q) err = %v", tt.format, tt.output, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "resolveFormat(%q, %q)", tt.format, tt.output)
	}
}

func TestClassTable(t *testing.T) {
	out := classTable()
	for _, want := range []string{"Plot", "LayoutDOM", "LinearAxis", "DataRange1d"} {
		assert.Contains(t, out, want)
	}
}

func TestPropertyTable(t *testing.T) {
	out, err := propertyTable("Plot", false)
	require.NoError(t, err)
	for _, want := range []string{"outline_line_color", `"#e5e5e5"`, "Enum(above|below|left|right)", "sizing_mode"} {
		assert.Contains(t, out, want)
	}

	own, err := propertyTable("Plot", true)
	require.NoError(t, err)
	assert.NotContains(t, own, "css_classes", "--own should hide inherited properties")
	assert.Contains(t, own, "plot_width")

	_, err = propertyTable("Widget", false)
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownClass), "err = %v", err)
}

func TestBuildCommand(t *testing.T) {
	bp := writeFile(t, "bp.toml", testBlueprint)
	logs, err := run(t, "build", bp)
	require.NoError(t, err)
	assert.Contains(t, logs, "Built 2 plots")
	assert.Contains(t, logs, "Linked", "debug log should report backlinks")
}

func TestBuildCommandTheme(t *testing.T) {
	bp := writeFile(t, "bp.toml", testBlueprint)
	th := writeFile(t, "dark.yaml", "attrs:\n  Plot:\n    plot_width: 320\n")

	logs, err := run(t, "build", bp, "--theme", th)
	require.NoError(t, err)
	assert.Contains(t, logs, "Applied theme")

	bad := writeFile(t, "bad.yaml", "attrs:\n  Plot:\n    colour: red\n")
	_, err = run(t, "build", bp, "--theme", bad)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidTheme), "err = %v", err)
}

func TestBuildCommandThemeFromEnv(t *testing.T) {
	bp := writeFile(t, "bp.toml", testBlueprint)
	t.Setenv("PLOTKIT_THEME", writeFile(t, "env.toml", "[attrs.Plot]\nplot_height = 200\n"))

	logs, err := run(t, "build", bp)
	require.NoError(t, err)
	assert.Contains(t, logs, "env.toml")
}

func TestBuildCommandErrors(t *testing.T) {
	_, err := run(t, "build", filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound), "err = %v", err)

	bp := writeFile(t, "bp.toml", "[[plots]]\nname = \"a\"\nx_range = \"nope\"\n")
	_, err = run(t, "build", bp)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidBlueprint), "err = %v", err)
}

func TestGraphCommandWritesDOT(t *testing.T) {
	bp := writeFile(t, "bp.toml", testBlueprint)
	out := filepath.Join(t.TempDir(), "graph.dot")

	_, err := run(t, "graph", bp, "-o", out)
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	for _, want := range []string{"digraph G", "Row", "DataRange1d", "style=dashed"} {
		assert.Contains(t, string(data), want)
	}

	_, err = run(t, "graph", bp, "-o", out, "--no-backrefs")
	require.NoError(t, err)
	data, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "style=dashed")
}

func TestGraphCommandWritesJSON(t *testing.T) {
	bp := writeFile(t, "bp.toml", testBlueprint)
	out := filepath.Join(t.TempDir(), "doc.json")

	_, err := run(t, "graph", bp, "-o", out)
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	for _, want := range []string{`"roots"`, `"type": "Row"`, `"type": "DataRange1d"`} {
		assert.Contains(t, string(data), want)
	}
}

func TestGraphCommandRejectsFormat(t *testing.T) {
	bp := writeFile(t, "bp.toml", testBlueprint)
	_, err := run(t, "graph", bp, "-o", "graph.gif")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "err = %v", err)
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err := cacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", appName), dir)
}

func TestRenderCachedHit(t *testing.T) {
	ctx := context.Background()
	store, err := cache.Open(t.TempDir())
	require.NoError(t, err)

	dot := "digraph G { a -> b }"
	require.NoError(t, store.Save(ctx, cache.NewKey(dot, formatSVG, 1), []byte("<svg>cached</svg>"), 0))

	c := New(io.Discard, LogInfo)
	data, err := c.renderCached(ctx, store, dot, formatSVG, 3)
	require.NoError(t, err)
	assert.Equal(t, "<svg>cached</svg>", string(data), "SVG artifacts do not depend on scale")

	data, err = c.renderCached(ctx, cache.Disabled(), dot, formatDOT, 1)
	require.NoError(t, err)
	assert.Equal(t, dot, string(data))
}

func TestOpenStore(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c := New(io.Discard, LogInfo)

	_, isDir := c.openStore(true).(*cache.Dir)
	assert.False(t, isDir, "--no-cache should disable the store")
	_, isDir = c.openStore(false).(*cache.Dir)
	assert.True(t, isDir)
}

func TestCacheCommands(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()
	dir, err := cache.Open(filepath.Join(home, appName))
	require.NoError(t, err)

	dot := "digraph G { a -> b }"
	require.NoError(t, dir.Save(ctx, cache.NewKey(dot, formatSVG, 0), []byte("<svg/>"), 0))
	require.NoError(t, dir.Save(ctx, cache.NewKey(dot, formatPNG, 2), []byte("png"), time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	_, err = runWithCache(t, home, "cache")
	require.NoError(t, err)
	_, err = runWithCache(t, home, "cache", "path")
	require.NoError(t, err)

	logs, err := runWithCache(t, home, "cache", "prune")
	require.NoError(t, err)
	assert.Contains(t, logs, "Pruned artifact cache")
	st, err := dir.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Entries)
	assert.Equal(t, 1, st.ByFormat[formatSVG])

	_, err = runWithCache(t, home, "cache", "clear")
	require.NoError(t, err)
	st, err = dir.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, st.Entries)

	_, err = runWithCache(t, home, "cache", "extra")
	assert.Error(t, err)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.5 KiB", formatBytes(1536))
	assert.Equal(t, "2.0 MiB", formatBytes(2<<20))
}

func TestCompletionScripts(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		_, err := run(t, "completion", shell)
		assert.NoError(t, err, shell)
	}
	_, err := run(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestCompleteClasses(t *testing.T) {
	got, directive := completeClasses(nil, nil, "Data")
	assert.Contains(t, got, "DataRange1d")
	assert.NotContains(t, got, "Plot")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	got, _ = completeClasses(nil, []string{"Plot"}, "")
	assert.Empty(t, got)

	exts, directive := completeBlueprint(nil, nil, "")
	assert.Equal(t, []string{"toml"}, exts)
	assert.Equal(t, cobra.ShellCompDirectiveFilterFileExt, directive)
}
