package helpers

import (
	"github.com/spf13/cobra"

	"gq.dev/gq/internal/runtime"
	"gq.dev/gq/internal/tui"
)

// NewSplog builds the logger for a command, honouring the persistent
// --quiet flag. A log file that cannot be opened falls back to console only.
func NewSplog(cmd *cobra.Command) *tui.Splog {
	opts := tui.DefaultSplogOptions()
	opts.Out = cmd.OutOrStdout()
	splog, err := tui.NewSplog(opts)
	if err != nil {
		splog = tui.NewConsoleSplog(opts.Out)
		splog.Debug("log file disabled: %v", err)
	}
	if quiet, err := cmd.Flags().GetBool("quiet"); err == nil && quiet {
		splog.SetQuiet(true)
	}
	return splog
}

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	splog := NewSplog(cmd)
	defer func() { _ = splog.Close() }()

	ctx, err := runtime.GetContext(cmd.Context(), splog)
	if err != nil {
		return err
	}
	return fn(ctx)
}
