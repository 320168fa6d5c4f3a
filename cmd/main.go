// @title Mingle Backend API
// @version 1.0
// @description Profiles, saved contacts, QR share codes and AI-assisted outreach for event networking

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

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

	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	_ "mingle-backend/docs" // This is required for swagger
	"mingle-backend/internal/config"
	"mingle-backend/internal/handlers"
	"mingle-backend/internal/logger"
	"mingle-backend/internal/middleware"
	"mingle-backend/internal/observability"
	"mingle-backend/internal/outreach"
	"mingle-backend/internal/qr"
	"mingle-backend/internal/repository"
	"mingle-backend/internal/routes"
	"mingle-backend/internal/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Mode:     cfg.Log.Mode,
		Level:    cfg.Log.Level,
		Redact:   cfg.Log.Redact,
		HashSalt: cfg.Log.HashSalt,
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the store and ping it at boot
	bootCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnTimeout+10*time.Second)
	repo, err := repository.Open(bootCtx, cfg)
	if err == nil {
		err = repo.Ping(bootCtx)
	}
	cancel()
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Database.Driver, err)
	}
	defer repo.Close()
	if cfg.Database.Driver == config.DriverPostgres {
		log.Info("store ready", "driver", cfg.Database.Driver, "db_dsn", cfg.GetDSN())
	} else {
		log.Info("store ready", "driver", cfg.Database.Driver, "path", cfg.Database.SQLitePath)
	}

	// --- HTTP Handlers ---
	metrics := observability.NewCollector("mingle")
	proxy := outreach.NewProxy(cfg.Outreach.AIServerURL, cfg.Outreach.Timeout, outreach.WithObserver(metrics))
	profiles := services.NewProfileService(repo, services.WithStrictValidation(cfg.Profile.StrictValidation))
	network := services.NewNetworkService(repo, repo)

	mux := http.NewServeMux()
	routes.SetupRoutes(mux, routes.Handlers{
		Health:   handlers.NewHealthHandler(repo, cfg.Database.Driver),
		Profile:  handlers.NewProfileHandler(profiles),
		Network:  handlers.NewNetworkHandler(network),
		QR:       handlers.NewQRHandler(qr.NewGenerator(cfg.QR.FrontendURL, cfg.QR.Size, cfg.QR.Margin)),
		Outreach: handlers.NewOutreachHandler(proxy),
		Metrics:  metrics.Handler(),
	})

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	handler := c.Handler(middleware.Chain(mux,
		middleware.Recover(log),
		middleware.RequestID(),
		middleware.AccessLog(log, metrics),
	))

	// --- HTTP Server + Graceful Shutdown ---
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("HTTP server listening", "addr", srv.Addr, "ai_server", cfg.Outreach.AIServerURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		return err
	}
	log.Info("Server stopped.")
	return nil
}
