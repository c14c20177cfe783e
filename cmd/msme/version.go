package main

import (
	"github.com/spf13/cobra"
)

// Version information, set at build time via ldflags.
var (
	version   = "dev"
	gitCommit = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("msme %s (%s)\n", version, gitCommit)
	},
}
