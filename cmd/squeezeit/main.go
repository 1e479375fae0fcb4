package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/creativeyann17/squeezeit/internal/config"
	"github.com/creativeyann17/squeezeit/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries state shared by every subcommand of one invocation
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
	quiet   bool

	cfg *config.Config
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:     "squeezeit",
		Short:   "squeezeit - archive files one ZIP at a time",
		Long:    "squeezeit compresses each input file into its own ZIP archive and reports what happened to every file.",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./squeezeit.yaml)")
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Show detailed output")
	rootCmd.PersistentFlags().BoolVar(&a.quiet, "quiet", false, "Minimal output (overrides verbose)")

	rootCmd.AddCommand(
		compressCmd(a),
		verifyCmd(a),
		extractCmd(a),
		infoCmd(a),
		versionCmd(),
	)

	return rootCmd
}

// setup loads configuration and builds the application logger
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadWith(a.v, a.cfgFile)
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(cfg.Logging, logger.Options{
		Verbose: a.verbose,
		Quiet:   a.quiet,
		Console: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	if used := a.v.ConfigFileUsed(); used != "" {
		log.WithField("config", used).Debug("using config file")
	}

	a.cfg = cfg
	a.log = log
	return nil
}

// printf writes to the command output unless --quiet is set
func (a *app) printf(cmd *cobra.Command, format string, args ...any) {
	if !a.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), format, args...)
	}
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}
