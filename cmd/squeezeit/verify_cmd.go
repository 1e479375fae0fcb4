package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creativeyann17/squeezeit/internal/logger"
	"github.com/creativeyann17/squeezeit/pkg/verify"
)

func verifyCmd(a *app) *cobra.Command {
	var verifyData bool
	var sourceDir string

	cmd := &cobra.Command{
		Use:   "verify <archive>...",
		Short: "Verify archive integrity",
		Long: `Verify that each archive holds exactly one file named after the archive.

By default, performs structural validation only.
Use --data to also decompress every entry and compute its BLAKE3 digest,
or --source to compare each entry with the original file in a directory.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &verify.Options{
				Archives:   args,
				VerifyData: verifyData,
				SourceDir:  sourceDir,
				Verbose:    a.verbose,
				Quiet:      a.quiet,
			}

			if err := opts.Validate(); err != nil {
				return err
			}

			if opts.VerifyData {
				a.printf(cmd, "Mode: Full data integrity check\n\n")
			} else {
				a.printf(cmd, "Mode: Structural validation only\n\n")
			}

			log := logger.WithOperation(a.log, "verify")

			var progressCb verify.ProgressCallback
			if a.verbose {
				progressCb = func(event verify.ProgressEvent) {
					switch event.Type {
					case verify.EventStart:
						log.Debug(event.Message)
					case verify.EventFileVerify:
						log.WithField("archive", event.FilePath).Debugf("[%d/%d] ok", event.Current, event.Total)
					case verify.EventError:
						log.WithField("archive", event.FilePath).Debugf("[%d/%d] invalid", event.Current, event.Total)
					}
				}
			}

			result, err := verify.Verify(opts, progressCb)
			if err != nil {
				return err
			}

			if !a.quiet || !result.IsValid() {
				fmt.Fprint(cmd.OutOrStdout(), result.Summary())
			}

			if !result.IsValid() {
				for _, e := range result.Errors() {
					log.WithError(e).Debug("verification error")
				}
				return fmt.Errorf("%d of %d archives failed verification",
					len(result.Archives)-result.ValidCount(), len(result.Archives))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&verifyData, "data", false, "Verify data integrity by decompressing all content")
	cmd.Flags().StringVar(&sourceDir, "source", "", "Directory with the original files to compare against")

	return cmd
}
