package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fileshare/internal/config"
	"fileshare/internal/server"
)

func main() {
	cfg := config.Load()

	logger := server.NewLogger(
		os.Stdout,
		server.ParseLogLevel(cfg.LogLevel),
		cfg.LogFormat == "json" || cfg.IsProduction(),
	)

	// Object store client. Construction is offline; a broken bucket or bad
	// credentials show up on the first upload/download, not here.
	mc, err := server.NewMinioClient(cfg)
	if err != nil {
		logger.Error("object store client init failed", nil, err)
		os.Exit(1)
	}
	store := server.NewMinioStore(mc, cfg.Bucket, cfg.Region)

	// Database pool for the probe endpoint.
	db, err := server.OpenDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("db open failed", nil, err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	// /up must stay green while the database is down, so an unreachable
	// database is reported and tolerated.
	if err := server.PingDB(db); err != nil {
		logger.Warn("database unreachable at startup", map[string]any{"err": err.Error()})
	}

	srv := server.New(server.Config{
		Addr:   cfg.Addr,
		Store:  store,
		DB:     db,
		Logger: logger,
	})

	// Start the HTTP server in a background goroutine so we can listen for
	// OS signals while it runs.
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting", map[string]any{
			"addr":   cfg.Addr,
			"bucket": cfg.Bucket,
			"region": cfg.Region,
		})
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	// Block until either a shutdown signal is received or the server errors.
	select {
	case sig := <-sigCh:
		logger.Info("shutting down", map[string]any{"signal": sig.String()})
		// Give the server 5 seconds to finish in-flight requests.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown error", nil, err)
			os.Exit(1)
		}
		logger.Info("shutdown complete", nil)
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", nil, err)
			os.Exit(1)
		}
	}
}
