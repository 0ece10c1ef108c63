// Package cli implements the qsquaremap command-line interface.
//
// The main commands are:
//   - view: scan a directory and explore it interactively as a square map
//   - render: scan a directory and write the map to an SVG or PNG file
//
// All commands support --verbose (-v) for debug-level logging and --config
// for a TOML configuration file overriding the built-in layout defaults.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "qsquaremap"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "qsquaremap shows disk usage as a navigable square map",
		Long:         `qsquaremap scans a directory tree and lays it out as nested rectangles sized by disk usage, either interactively in the terminal or rendered to an image file.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML config file")

	root.AddCommand(c.viewCommand())
	root.AddCommand(c.renderCommand())

	return root
}
