package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pantrypal/core/config"
	"pantrypal/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title PantryPal API
// @version 0.1.0
// @description Smart pantry management and meal planning API
// @host localhost:8000
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the PantryPal API server",
	Long:  `Starts the HTTP server and runs until SIGINT or SIGTERM, then shuts down gracefully.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() { _ = logg.Sync() }()
		zap.ReplaceGlobals(logg)

		deps, err := connectDependencies(cfg, logg)
		if err != nil {
			return err
		}

		srv, err := newServer(cfg, logg, deps)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		serveErr := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
			serveErr <- srv.Start()
		}()

		var runErr error
		select {
		case <-ctx.Done():
		case runErr = <-serveErr:
			if runErr != nil {
				runErr = fmt.Errorf("server failed: %w", runErr)
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			logg.Error("Shutdown finished with errors", zap.Error(err))
			if runErr == nil {
				runErr = err
			}
		}
		return runErr
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
