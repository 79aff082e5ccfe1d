package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"emoji-generator/internal/fetch"
)

// Build info, set via -ldflags at build time.
var (
	Version   = "dev"
	CommitID  = "unknown"
	BuildDate = "unknown"
)

func init() {
	fetch.UserAgent = "emoji-generator/" + Version
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "emoji-generator %s (commit %s, built %s)\n", Version, CommitID, BuildDate)
		},
	}
}
