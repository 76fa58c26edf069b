package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kalyug-papa-bolo/vahan"
	vahanhttp "github.com/kalyug-papa-bolo/vahan/http"
	vahanzap "github.com/kalyug-papa-bolo/vahan/zap"
	"go.uber.org/zap"
)

// Run executes the serve command. It blocks until the process
// receives SIGINT or SIGTERM, then shuts down gracefully.
func (c *ServeCmd) Run(deps *Dependencies) error {
	cfg := deps.Config
	if c.Host != "" {
		cfg.Server.Host = c.Host
	}
	if c.Port != 0 {
		cfg.Server.Port = c.Port
	}

	logger, err := newLogger(c.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Access.AdminKey == "" && cfg.Access.TempKey == "" {
		logger.Warn("no access keys configured; /api/info will reject every request")
	}

	gate := vahan.NewGate(cfg.Access.GateConfig())
	fetcher := vahanzap.NewLoggingFetcher(deps.Fetcher, logger)
	cache := vahan.NewCache(cfg.Fetch.CacheTTL())

	srv := vahanhttp.NewServer(cfg, gate, fetcher, deps.Parser, cache, logger)

	errc := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		return err
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case <-deps.Ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(ctx)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
