package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tech4life-beyond/kivai/internal/gateway"
	"github.com/tech4life-beyond/kivai/internal/infrastructure/logging"
	"github.com/tech4life-beyond/kivai/internal/schema"
)

var (
	serveHostFlag string
	servePortFlag int
)

func init() {
	serveCmd.Flags().StringVar(&serveHostFlag, "host", "", "bind host (overrides config)")
	serveCmd.Flags().IntVar(&servePortFlag, "port", 0, "bind port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Kivai HTTP gateway",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// Cancel on interrupt signals for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return serve(ctx)
}

// serve is the gateway lifecycle, separated from the command handler
// so the wiring reads top to bottom.
func serve(ctx context.Context) error {
	log := logging.Default()
	log.Info("starting kivai gateway",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if serveHostFlag != "" {
		cfg.Gateway.Host = serveHostFlag
	}
	if servePortFlag != 0 {
		cfg.Gateway.Port = servePortFlag
	}

	log = logging.New(cfg.Logging, version)
	log.Info("configuration loaded",
		"strict", cfg.Execution.Strict,
		"audit_backends", cfg.Audit.Backends,
	)

	exec, cleanup, err := buildExecutor(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	validator, err := schema.NewValidator()
	if err != nil {
		return fmt.Errorf("building schema validator: %w", err)
	}

	srv, err := gateway.New(gateway.Deps{
		Config:    cfg.Gateway,
		Execution: cfg.Execution,
		Logger:    log.With("component", "gateway"),
		Executor:  exec,
		Validator: validator,
		Version:   version,
	})
	if err != nil {
		return fmt.Errorf("creating gateway: %w", err)
	}

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("starting gateway: %w", err)
	}
	defer func() {
		log.Info("stopping gateway")
		if closeErr := srv.Close(); closeErr != nil {
			log.Error("error closing gateway", "error", closeErr)
		}
	}()

	log.Info("initialisation complete, waiting for shutdown signal")
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	return nil
}
