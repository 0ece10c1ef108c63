package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/termim/qsquaremap/internal/core"
	"github.com/termim/qsquaremap/internal/model"
	"github.com/termim/qsquaremap/internal/render"
	"github.com/termim/qsquaremap/pkg/squaremap"
)

func (c *CLI) renderCommand() *cobra.Command {
	var (
		output string
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "render [path]",
		Short: "Scan a directory and write its square map to an image file",
		Long:  `Render scans a directory tree and writes its square map to a file. The output format is picked from the file extension: .svg or .png.`,
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

			root, err := c.scan(cmd, cfg, path)
			if err != nil {
				return err
			}

			opts := cfg.options(squaremap.DefaultOptions())
			widget, err := squaremap.New[*model.FSNode](root, model.MapAdapter{}, opts)
			if err != nil {
				return err
			}

			switch filepath.Ext(output) {
			case ".svg":
				err = render.SaveSVG(output, width, height, widget)
			case ".png":
				err = render.SavePNG(output, width, height, widget)
			default:
				return fmt.Errorf("unsupported output format %q, want .svg or .png", filepath.Ext(output))
			}
			if err != nil {
				return err
			}

			c.Logger.Infof("wrote %s (%dx%d)", output, width, height)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "map.svg", "output file (.svg or .png)")
	cmd.Flags().IntVar(&width, "width", 1024, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 768, "image height in pixels")
	return cmd
}

// scan runs a full scan synchronously, logging progress.
func (c *CLI) scan(cmd *cobra.Command, cfg Config, path string) (*model.FSNode, error) {
	session := core.NewSession(path, cfg.workers(), false)
	defer session.Stop()

	start := time.Now()
	c.Logger.Infof("scanning %s", path)

	var root *model.FSNode
	for ev := range session.StartScan(cmd.Context()) {
		switch ev := ev.(type) {
		case core.ScanProgressEvent:
			c.Logger.Debugf("scanned %d files, %d bytes", ev.FilesScanned, ev.BytesFound)
		case core.ScanCompletedEvent:
			if ev.Err != nil {
				return nil, ev.Err
			}
			root = ev.Root
		}
	}
	if root == nil {
		return nil, fmt.Errorf("scan of %s produced no tree", path)
	}

	c.Logger.Infof("scanned %d files (%s)",
		session.ScanState().FilesScanned, time.Since(start).Round(time.Millisecond))
	return root, nil
}
