package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/san-kum/stockout/internal/config"
	"github.com/san-kum/stockout/internal/logging"
)

var (
	logLevel  string
	logFormat string
	logger    = slog.Default()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "stockout",
		Short:        "inventory depletion simulator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if env := os.Getenv(config.EnvLogLevel); env != "" && !cmd.Flags().Changed("log-level") {
				logLevel = env
			}
			l, err := logging.Setup(logLevel, logFormat)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logging.FormatText, "log format (text, json)")

	rootCmd.AddCommand(
		newRunCmd(),
		newCompareCmd(),
		newSweepCmd(),
		newAnalyzeCmd(),
		newLiveCmd(),
		newPresetsCmd(),
		newInitConfigCmd(),
		newServeCmd(),
	)
	return rootCmd
}
