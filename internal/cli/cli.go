// Package cli implements the reportfig command-line interface.
//
// Two commands are provided: render, which turns a JSON template document
// into a PDF, and blank, which draws the empty labelled layout for
// previewing. Both accept a TOML config file supplying site-wide defaults
// such as the letterhead path and drafting mode, and --verbose (-v) for
// debug-level logging via charmbracelet/log.
package cli

import (
	"context"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
)

// SetVersion sets the version information displayed by --version. Typically
// called by the main package with values injected via ldflags.
func SetVersion(v, c string) {
	version = v
	commit = c
}

func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return l
	}
	return charmlog.Default()
}

// Execute runs the reportfig CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "reportfig",
		Short:        "reportfig renders report figure pages from JSON templates",
		Long:         "reportfig lays out report-style figure pages, a bordered frame with a grid-based title block, and renders them to PDF from JSON template documents.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate("reportfig " + version + " (" + commit + ")\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newBlankCmd())

	return root.ExecuteContext(context.Background())
}
