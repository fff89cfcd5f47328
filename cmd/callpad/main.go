package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/callpad-io/callpad/cmd/callpad/config"
	"github.com/callpad-io/callpad/internal/chains"
	"github.com/callpad-io/callpad/internal/history"
	callpadhttp "github.com/callpad-io/callpad/internal/http"
	"github.com/callpad-io/callpad/internal/provider"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func newLogger() *zap.Logger {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return zap.Must(zap.NewDevelopment())
	}
	return zap.Must(zap.NewProduction())
}

func main() {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)
	log := logger.Sugar()

	log.Infow("callpad",
		"version", Version,
		"commit", Commit,
		"build_date", BuildDate,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to parse config", "error", err)
	}

	registry := chains.NewRegistry()
	registry.Merge(cfg.Networks)

	detector := provider.NewDetector(cfg.Wallet.Endpoints, cfg.Wallet.ProbeTimeout())
	defer detector.Reset()

	srv := callpadhttp.NewServer(ctx, registry, detector, history.NewStore(),
		cfg.Wallet.PollInterval(), log)

	if cfg.Wallet.AutoConnect {
		// Best effort: a wallet that is not running yet is not an error,
		// the user connects manually from the UI.
		_ = srv.TryAutoConnect(ctx)
	}

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: srv,
	}

	go func() {
		log.Infow("listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("HTTP server error", "error", err)
		}
	}()

	<-ctx.Done()
	log.Infow("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	srv.Shutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown failed", "error", err)
	} else {
		log.Infow("HTTP server gracefully stopped")
	}
}
