package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"luni/internal/api"
	"luni/internal/config"
)

const (
	defaultGracefulTimeout = 10 * time.Second
	serverReadTimeout      = 10 * time.Second
	serverWriteTimeout     = 15 * time.Second
	serverIdleTimeout      = 60 * time.Second
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve character lookups over HTTP",
		Long: `Load the description database once and answer searches over HTTP.

Endpoints:
  GET /search?pattern=<regex>   matching characters in database order
  GET /healthz                  status and record count
  GET /metrics                  Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, v, nil)
		},
	}

	serveCmd.Flags().String(config.KeyAddress, config.DefaultAddress, "Address to listen on")
	serveCmd.Flags().Int(config.KeyCacheSize, config.DefaultCacheSize, "Number of compiled search patterns to cache")

	mustBindPFlag(v, config.KeyAddress, serveCmd.Flags())
	mustBindPFlag(v, config.KeyCacheSize, serveCmd.Flags())

	return serveCmd
}

// runServe serves until ctx is cancelled. When ready is non-nil it receives
// the bound listener address once the server accepts connections.
func runServe(ctx context.Context, cmd *cobra.Command, v *viper.Viper, ready chan<- string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	store, err := loadStore(cmd.InOrStdin(), cfg.Database, logger)
	if err != nil {
		return err
	}

	server, err := api.NewServer(store, cfg.CacheSize, logger)
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:      api.HandlerFromMux(server, chi.NewMux()),
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	logger.WithFields(logrus.Fields{
		"address": listener.Addr().String(),
		"records": store.Len(),
	}).Info("Starting server")
	if ready != nil {
		ready <- listener.Addr().String()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultGracefulTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
