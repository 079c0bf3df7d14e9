package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"pantrypal/core/config"
	"pantrypal/core/health"
	"pantrypal/core/logger"
	"pantrypal/core/storage"
	"pantrypal/feature/system"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// ErrNotReady is returned by the check command when a dependency is down.
var ErrNotReady = errors.New("dependencies are not ready")

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check connectivity to the configured dependencies",
	Long:  `Runs the readiness checks (database, storage) and prints a JSON report. With --fix, a missing storage bucket is created first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() { _ = logg.Sync() }()

		deps, err := connectDependencies(cfg, logg)
		if err != nil {
			return err
		}
		defer func() {
			if err := deps.close(); err != nil {
				logg.Warn("Failed to close database", zap.Error(err))
			}
		}()

		if fixFlag && deps.store != nil {
			created, err := storage.EnsureBucket(ctx, deps.store, cfg.Storage.Bucket, cfg.Storage.Region)
			if err != nil {
				return err
			}
			if created {
				logg.Info("Created missing bucket", zap.String("bucket", cfg.Storage.Bucket))
			}
		}

		report := health.Run(ctx, system.CheckTimeout, deps.checkers...)

		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		if !report.Ready() {
			return ErrNotReady
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&fixFlag, "fix", false, "create the storage bucket if it is missing")
	RootCmd.AddCommand(checkCmd)
}
