package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nearbysos/internal/adapters/driving/webui"
	"nearbysos/internal/config"
	"nearbysos/internal/pkg/apiclient"
	"nearbysos/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "nearbysos-webui")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting web ui",
		zap.String("addr", cfg.WebAddr),
		zap.String("api", cfg.APIURL))

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel, log)

	if err := run(appCtx, cfg, log); err != nil {
		log.Fatal("application run failed", zap.Error(err))
	}

	log.Info("server exited gracefully")
}

func setupSignalHandler(cancelFunc context.CancelFunc, log *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("shutdown signal received")
		cancelFunc()
	}()
}

func run(appCtx context.Context, cfg *config.Config, log *zap.Logger) error {
	api := apiclient.New(cfg.APIURL, cfg.APIPrefix, 10*time.Second)

	uiHandler, err := webui.NewHandler(log,
		webui.Section{Name: "ambulances", Config: webui.AmbulanceTable(), API: api.Resource("ambulances")},
		webui.Section{Name: "doctors", Config: webui.DoctorTable(), API: api.Resource("doctors")},
	)
	if err != nil {
		return fmt.Errorf("could not build web ui: %w", err)
	}

	server := &http.Server{
		Addr:         cfg.WebAddr,
		Handler:      uiHandler.SetupRoutes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", cfg.WebAddr))

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
