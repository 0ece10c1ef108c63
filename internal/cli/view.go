package cli

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/termim/qsquaremap/internal/core"
	"github.com/termim/qsquaremap/internal/stats"
	"github.com/termim/qsquaremap/internal/ui"
	"github.com/termim/qsquaremap/pkg/squaremap"
)

// tuiOptions are the layout defaults for terminal cells, where the
// pixel-sized defaults would eat most of the screen.
func tuiOptions() squaremap.Options {
	return squaremap.Options{
		Padding:     1,
		Margin:      0,
		Labels:      true,
		Highlight:   true,
		SquareStyle: true,
	}
}

func (c *CLI) viewCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "view [path]",
		Short: "Explore a directory interactively as a square map",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}

			path, err := resolvePath(args)
			if err != nil {
				return err
			}

			opts := cfg.options(tuiOptions())
			session := core.NewSession(path, cfg.workers(), cfg.cacheEnabled() && !noCache)

			app, err := ui.NewApp(session, opts)
			if err != nil {
				return err
			}

			c.Logger.Debugf("starting TUI for %s", path)
			program := tea.NewProgram(app,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "ignore and do not write the scan cache")
	return cmd
}

// resolvePath picks the directory to scan: the argument, the most recently
// scanned root, or the current directory.
func resolvePath(args []string) (string, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	} else {
		history := stats.NewHistory()
		if err := history.Load(); err == nil {
			path = history.LastRoot()
		}
	}
	if path == "" {
		path = "."
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}
