package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mapcolor/internal/httpapi"
	"github.com/katalvlaran/mapcolor/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `serve exposes POST /api/resolver_coloreo and GET /api/test, plus
/openapi.yaml and /metrics. It stops gracefully on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Addr = addr
			}
			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("config: %w", err)
			}

			api, err := httpapi.New(a.cfg, a.log, metrics.New())
			if err != nil {
				return err
			}
			srv := &http.Server{
				Addr:              a.cfg.Addr,
				Handler:           api.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			serverErrors := make(chan error, 1)
			go func() {
				a.log.Info("starting HTTP server", "addr", srv.Addr)
				serverErrors <- srv.ListenAndServe()
			}()

			select {
			case err := <-serverErrors:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server: %w", err)
			case <-ctx.Done():
				a.log.Info("shutting down HTTP server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					a.log.Error("graceful shutdown did not complete", "error", err, "timeout", shutdownTimeout)
					if cerr := srv.Close(); cerr != nil {
						a.log.Error("server close failed", "error", cerr)
					}
					return err
				}
				a.log.Info("HTTP server stopped")
				return nil
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :8000)")

	return cmd
}
