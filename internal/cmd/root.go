// Package cmd implements the command line interface.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hostcond-org/hostcond/internal/build"
	"github.com/hostcond-org/hostcond/internal/config"
	"github.com/hostcond-org/hostcond/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:          build.Slug,
	Short:        "Evaluate declarative conditions against the running system.",
	SilenceUsage: true,
}

// Execute runs the root command. It is called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress all output")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text or json)")

	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(versionCmd())
}

// loggerContext builds the logging context for one command invocation
// from the loaded configuration, overridden by command line flags.
func loggerContext(cmd *cobra.Command) context.Context {
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{}
	}

	debug, _ := cmd.Flags().GetBool("debug")
	quiet, _ := cmd.Flags().GetBool("quiet")
	format, _ := cmd.Flags().GetString("log-format")
	if format == "" {
		format = cfg.LogFormat
	}

	var opts []logger.Option
	if cfg.Debug || debug {
		opts = append(opts, logger.WithDebug())
	}
	if cfg.Quiet || quiet {
		opts = append(opts, logger.WithQuiet())
	}
	if format != "" {
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.WithLogger(cmd.Context(), logger.NewLogger(opts...))
}
