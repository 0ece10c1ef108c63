// Package logging provides an env-gated debug logger for the TUI, where
// stderr is not available for diagnostics.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var (
	Debug   *log.Logger
	Enabled bool
)

func init() {
	// Logging stays off unless QSQUAREMAP_DEBUG is set; a TUI cannot
	// share its terminal with log output.
	if os.Getenv("QSQUAREMAP_DEBUG") == "" {
		Debug = log.New(io.Discard)
		return
	}
	Enabled = true

	f, err := os.OpenFile("qsquaremap-debug.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		Debug = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "debug",
		})
		return
	}
	Debug = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.StampMicro,
	})
}
