package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"

	"github.com/creativeyann17/squeezeit/internal/logger"
	"github.com/creativeyann17/squeezeit/pkg/decompress"
)

func extractCmd(a *app) *cobra.Command {
	var outputPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:     "extract <archive>...",
		Aliases: []string{"decompress"},
		Short:   "Restore the original files from archives",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &decompress.Options{
				Archives:   args,
				OutputPath: outputPath,
				Verbose:    a.verbose,
				Quiet:      a.quiet,
				Overwrite:  overwrite,
			}

			if err := opts.Validate(); err != nil {
				return err
			}

			a.printf(cmd, "Starting extraction...\n")
			a.printf(cmd, "  Archives:    %d\n", len(opts.Archives))
			a.printf(cmd, "  Output:      %s\n", opts.OutputPath)
			if overwrite {
				a.printf(cmd, "  Mode:        OVERWRITE (replacing existing files)\n")
			}
			a.printf(cmd, "\n")

			var progressCb decompress.ProgressCallback
			var progress *mpb.Progress
			if !a.quiet && !a.verbose {
				progressCb, progress = decompress.ProgressBarCallback()
			}

			result, err := decompress.Decompress(opts, progressCb)

			if progress != nil {
				progress.Wait()
			}

			if err != nil {
				return err
			}

			log := logger.WithOperation(a.log, "extract")
			for _, e := range result.Errors {
				log.WithError(e).Error("extraction failed")
			}
			for _, p := range result.Restored {
				logger.WithFile(log, p).Debug("restored")
			}

			a.printf(cmd, "\n%s", decompress.FormatSummary(result))

			if len(result.Errors) > 0 {
				return fmt.Errorf("finished with %d errors", len(result.Errors))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", ".", "Output directory")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing files")

	return cmd
}
