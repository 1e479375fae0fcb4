package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creativeyann17/squeezeit/internal/logger"
	"github.com/creativeyann17/squeezeit/pkg/squeeze"
)

func infoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>...",
		Short: "Show size and type of candidate files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			missing := 0

			for _, path := range args {
				fi := squeeze.Describe(path)
				fmt.Fprintf(out, "%s\n", fi.Name)
				fmt.Fprintf(out, "  Path:      %s\n", fi.Path)
				fmt.Fprintf(out, "  Size:      %s\n", squeeze.FormatSize(fi.Size))
				if fi.Err != nil {
					missing++
					logger.WithFile(a.log, path).WithError(fi.Err).Warn("cannot stat file")
					continue
				}
				fmt.Fprintf(out, "  Modified:  %s\n", fi.ModTime.Format("2006-01-02 15:04:05"))
				fmt.Fprintf(out, "  Extension: %s\n", fi.Extension)
				fmt.Fprintf(out, "  Text file: %t\n", fi.IsText)
			}

			if missing > 0 {
				return fmt.Errorf("%d of %d files could not be read", missing, len(args))
			}
			return nil
		},
	}
}
