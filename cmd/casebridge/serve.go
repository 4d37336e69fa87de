package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/casebridge/config"
	"github.com/c360studio/casebridge/graph"
	"github.com/c360studio/casebridge/server"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		natsURL    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the translation HTTP service",
		Long: `Starts the casebridge HTTP service with translation endpoints,
the field-mapping reference table, health, and Prometheus metrics.

When a NATS URL is configured, every translated document is also
published to the configured subject for downstream graph ingestion.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath, addr, natsURL)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	cmd.Flags().StringVar(&natsURL, "nats", "", "NATS server URL (overrides config)")

	return cmd
}

func runServe(configPath, addr, natsURL string) error {
	logger := slog.Default()

	cfg, err := loadConfig(configPath, logger)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if natsURL != "" {
		cfg.NATS.URL = natsURL
	}

	var publisher *graph.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = graph.NewPublisher(cfg.NATS.URL, cfg.NATS.Subject, logger)
		if err != nil {
			return fmt.Errorf("set up NATS publisher: %w", err)
		}
		defer publisher.Close()
	} else {
		logger.Info("NATS publishing disabled (no URL configured)")
	}

	srv := server.New(cfg, publisher, Version, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigCh:
		logger.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

// loadConfig loads either the explicit config file or the layered
// default/user/project configuration.
func loadConfig(configPath string, logger *slog.Logger) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}
	return config.NewLoader(logger).Load()
}
