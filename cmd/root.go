package cmd

import (
	"fmt"
	"os"

	"pantrypal/core/logger"
	"pantrypal/core/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is where the .env file is looked up.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pantrypal",
	Short: "PantryPal API Service",
	Long: `PantryPal is the backend for smart pantry management and meal planning.
It serves the HTTP API consumed by the web and mobile clients.`,
	Version:       server.DefaultInfo.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug level gives ISO8601 timestamps, which reads better in a terminal
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory containing the .env file")
}
