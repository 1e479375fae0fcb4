package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and platform information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "squeezeit %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
			fmt.Fprintf(cmd.OutOrStdout(), "platform: %s/%s\ngo: %s\n", runtime.GOOS, runtime.GOARCH, runtime.Version())
		},
	}
}
