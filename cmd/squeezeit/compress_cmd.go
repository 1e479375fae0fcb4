package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"

	"github.com/creativeyann17/squeezeit/internal/logger"
	"github.com/creativeyann17/squeezeit/pkg/compress"
	"github.com/creativeyann17/squeezeit/pkg/squeeze"
)

func compressCmd(a *app) *cobra.Command {
	var reportPath string
	var showStats bool

	cmd := &cobra.Command{
		Use:   "compress <file>...",
		Short: "Compress each file into its own ZIP archive",
		Long: `Compress every given file into <destination>/<name>.zip.

Files that do not exist or cannot be read are reported and skipped; a failing
file never stops the rest of the batch. Two inputs with the same base name
share an archive name and the later one wins.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			log := logger.WithOperation(a.log, "compress")

			filter, err := compress.NewFilter(cfg.FilterOptions())
			if err != nil {
				return err
			}
			paths, skipped := filter.Apply(args)
			for _, p := range skipped {
				logger.WithFile(log, p).Info("excluded by filter")
			}

			a.printf(cmd, "Starting compression...\n")
			a.printf(cmd, "  Files:       %d (%d excluded)\n", len(paths), len(skipped))
			var inputSize int64
			for _, p := range paths {
				if n := squeeze.FileSize(p); n > 0 {
					inputSize += n
				}
			}
			a.printf(cmd, "  Input size:  %s\n", squeeze.FormatSize(inputSize))
			a.printf(cmd, "  Destination: %s\n", cfg.Destination)
			a.printf(cmd, "  Level:       %d\n", cfg.Level)
			a.printf(cmd, "  Max threads: %d\n\n", cfg.Threads)

			var progressCb compress.ProgressCallback
			var progress *mpb.Progress
			if !a.quiet && !a.verbose {
				progressCb, progress = compress.ProgressBarCallback()
			}

			c, err := compress.New(&compress.Options{
				Destination: cfg.Destination,
				Level:       cfg.Level,
				MaxThreads:  cfg.Threads,
				Logger:      log,
				Progress:    progressCb,
			})
			if err != nil {
				if progress != nil {
					progress.Wait()
				}
				return err
			}

			result := c.CompressMany(paths)

			if progress != nil {
				progress.Wait()
			}

			out := cmd.OutOrStdout()
			for _, msg := range result.Messages {
				fmt.Fprintln(out, msg)
			}
			a.printf(cmd, "\n%s", compress.FormatSummary(result))
			if showStats {
				fmt.Fprintf(out, "\n%s", c.Stats())
			}

			if cfg.HistoryFile != "" {
				if err := c.Log().AppendToFile(cfg.HistoryFile); err != nil {
					log.WithError(err).Error("could not save history")
				}
			}

			if reportPath != "" {
				if err := writeReport(reportPath, out, compress.BuildReport(result, time.Now())); err != nil {
					return err
				}
			}

			if result.FailureCount > 0 {
				log.WithFields(logrus.Fields{
					"failed": result.FailureCount,
					"total":  result.Total(),
				}).Debug("batch had failures")
				return fmt.Errorf("finished with %d errors", result.FailureCount)
			}

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "archives", "Destination directory for archives")
	cmd.Flags().IntP("level", "l", compress.DefaultLevel, "Deflate level (1=fastest, 9=smallest)")
	cmd.Flags().IntP("threads", "t", 1, "Concurrent compression workers (0 = one per CPU)")
	cmd.Flags().StringSlice("exclude", nil, "Gitignore-style patterns of files to skip")
	cmd.Flags().String("ignore-file", "", "File with one exclude pattern per line")
	cmd.Flags().Bool("text-only", false, "Only compress files with a known text extension")
	cmd.Flags().String("history", "", "Append the operation log to this file")
	cmd.Flags().StringVar(&reportPath, "report", "", "Write a YAML space-savings report (- for stdout)")
	cmd.Flags().BoolVar(&showStats, "stats", false, "Print compressor statistics after the batch")

	bindFlags(a, cmd, map[string]string{
		"destination":  "output",
		"level":        "level",
		"threads":      "threads",
		"exclude":      "exclude",
		"ignore_file":  "ignore-file",
		"text_only":    "text-only",
		"history_file": "history",
	})

	return cmd
}

// bindFlags makes explicitly set flags override config file and environment
func bindFlags(a *app, cmd *cobra.Command, keys map[string]string) {
	for key, flag := range keys {
		_ = a.v.BindPFlag(key, cmd.Flags().Lookup(flag))
	}
}

func writeReport(path string, stdout io.Writer, report *compress.Report) error {
	if path == "-" {
		return report.WriteYAML(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := report.WriteYAML(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
