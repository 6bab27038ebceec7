package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clindoc/clindoc/internal/clinical"
	"github.com/clindoc/clindoc/internal/config"
	"github.com/clindoc/clindoc/internal/exportlog"
	"github.com/clindoc/clindoc/internal/fhirclient"
	"github.com/clindoc/clindoc/internal/platform/auth"
	"github.com/clindoc/clindoc/internal/platform/db"
	"github.com/clindoc/clindoc/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clindoc-server",
		Short: "Clinical documentation FHIR export server",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the export API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()

	// Database is optional: without it the export audit log is disabled.
	var exports exportlog.Repository
	if cfg.HasDatabase() {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		if err := db.EnsureSchema(ctx, pool, exportlog.Schema); err != nil {
			logger.Fatal().Err(err).Msg("failed to apply export log schema")
		}
		exports = exportlog.NewRepoPG(pool)
		logger.Info().Msg("export audit log enabled")
	} else {
		logger.Info().Msg("no DATABASE_URL configured, export audit log disabled")
	}

	// Downstream FHIR service client
	client := fhirclient.New(cfg.FHIRServiceURL, cfg.UploadTimeoutDuration(), logger)

	svc := clinical.NewService(client, exports, logger)
	handler := clinical.NewHandler(svc)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID", "x-portal"},
	}))

	// Health check reports the downstream FHIR service reachability without
	// failing the probe itself.
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":       "ok",
			"version":      "0.1.0",
			"fhir_service": client.Health(c.Request().Context(), auth.FromRequest(c.Request())),
		})
	})

	apiV1 := e.Group("/api/v1")
	handler.RegisterRoutes(apiV1)

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
