package main

import (
	"errors"
	"fmt"
	"os"

	"gq.dev/gq/internal/cli"
	gqerrors "gq.dev/gq/internal/errors"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Check for passthrough commands before processing with cobra
	if cli.HandlePassthrough(os.Args) {
		return
	}

	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, gqerrors.ErrAmbiguousSelection) {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return
		}
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}
