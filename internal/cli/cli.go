// Package cli implements the plotkit command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plotkit/pkg/buildinfo"
	"github.com/matzehuels/plotkit/pkg/model"
	"github.com/matzehuels/plotkit/pkg/observability"
	"github.com/matzehuels/plotkit/pkg/theme"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "plotkit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Plotkit builds linked plot documents",
		Long:         `Plotkit builds plots, shared ranges and grid layouts from TOML blueprints, applies themes, and inspects the resulting entity graph.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			hooks := newLogHooks(c.Logger)
			observability.SetModelHooks(hooks)
			observability.SetLayoutHooks(hooks)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.schemaCommand())
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Theme Helpers
// =============================================================================

// applyTheme installs the theme at path, or the one named by the PLOTKIT_THEME
// environment variable when path is empty. It returns the path used.
func (c *CLI) applyTheme(path string) (string, error) {
	if path == "" {
		path = theme.EnvPath()
	}
	if path == "" {
		model.SetTheme(nil)
		return "", nil
	}
	th, err := theme.Load(path)
	if err != nil {
		return "", err
	}
	model.SetTheme(th)
	c.Logger.Debug("Theme loaded", "path", path, "classes", len(th))
	return path, nil
}
