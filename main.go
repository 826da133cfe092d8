package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seo-optimizer/discoverability/analyzer"
	"github.com/seo-optimizer/discoverability/api"
	"github.com/seo-optimizer/discoverability/config"
	"github.com/seo-optimizer/discoverability/logging"
	"github.com/seo-optimizer/discoverability/metrics"
	"github.com/seo-optimizer/discoverability/middleware"
)

// shutdownTimeout leaves room for an in-flight fetch to finish
const shutdownTimeout = analyzer.FetchTimeout + 5*time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, envFile, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if envFile != "" {
		logger.Info("Loaded environment file", zap.String("file", envFile))
	} else {
		logger.Info("No .env file found, using environment variables")
	}

	gin.SetMode(cfg.GinMode)

	server := api.NewServer(api.Deps{
		Analyzer: analyzer.New(
			analyzer.WithUserAgent(cfg.UserAgent),
			analyzer.WithLogger(logger.Named("analyzer")),
		),
		Stats:       logging.NewStatistics(cfg.DevMode),
		Metrics:     metrics.New("discoverability"),
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Logger:      logger,
		ChartTitle:  cfg.ChartTitle,
	})

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      shutdownTimeout + 10*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("addr", "http://localhost:"+cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-sigCh:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}
