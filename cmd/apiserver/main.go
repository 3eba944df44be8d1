package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nearbysos/internal/adapters/driven/memrepo"
	"nearbysos/internal/adapters/driving/httpadapter"
	"nearbysos/internal/assets"
	"nearbysos/internal/config"
	"nearbysos/internal/core/service/directory"
	"nearbysos/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	fmt.Println(assets.BannerString)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "nearbysos-api")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting api server",
		zap.String("addr", cfg.ServerAddr),
		zap.String("prefix", cfg.APIPrefix))

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel, log)

	if err := run(appCtx, cfg, log); err != nil {
		log.Fatal("application run failed", zap.Error(err))
	}

	log.Info("server exited gracefully")
}

// setupSignalHandler configures a listener for OS signals to trigger a
// graceful shutdown.
func setupSignalHandler(cancelFunc context.CancelFunc, log *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM) // listen to OS interrupt signal

	go func() {
		<-quit
		log.Info("shutdown signal received")
		cancelFunc()
	}()
}

func run(appCtx context.Context, cfg *config.Config, log *zap.Logger) error {
	// one seeded store and service per resource type; state resets to the
	// seed data on every restart
	ambulances := directory.NewService(memrepo.NewSeeded(memrepo.SeedAmbulances()))
	doctors := directory.NewService(memrepo.NewSeeded(memrepo.SeedDoctors()))

	apiHandler := httpadapter.NewHandler(log,
		httpadapter.Options{
			APIPrefix:       cfg.APIPrefix,
			AllowedOrigin:   cfg.FrontendURL,
			RateLimitMax:    cfg.RateLimitMax,
			RateLimitWindow: cfg.RateLimitWindow,
		},
		httpadapter.Resource{Name: "ambulances", Service: ambulances},
		httpadapter.Resource{Name: "doctors", Service: doctors},
	)

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      apiHandler.SetupRoutes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", cfg.ServerAddr))

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server listen error", zap.Error(err))
		}
	}()

	<-appCtx.Done()
	log.Info("context cancelled, initiating server shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	return nil
}
