package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "v0.1.0"

// Global flag values.
var (
	flagConfigDir string
	flagEnvFile   string
	flagVerbose   bool
)

// cfg holds the configuration loaded by PersistentPreRunE.
var cfg *viper.Viper

var rootCmd = &cobra.Command{
	Use:           "qmodes",
	Short:         "qmodes is a named-mode tensor algebra engine",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadEnvFile(flagEnvFile); err != nil {
			return err
		}
		v, err := loadConfig(flagConfigDir)
		if err != nil {
			return err
		}
		cfg = v
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", ".", "directory searched for qmodes.yaml")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "dotenv file loaded before QMODES_* variables are read")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log every scenario at debug level")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
}

// newLogger returns a text logger on stderr, at debug level when verbose.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
