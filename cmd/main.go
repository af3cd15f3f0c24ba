package main

//
//  @title           stockpulse API
//  @version         1.0
//  @description     Stock market history & analytics service.
//  @termsOfService  https://github.com/guttosm/stockpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/stockpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        market
//  @tag.description Historical data, analytics, quotes and company profiles
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/stockpulse/config"
	_ "github.com/guttosm/stockpulse/docs" // swagger docs
	"github.com/guttosm/stockpulse/internal/app"
	"github.com/guttosm/stockpulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - addr (string): host:port where the server will listen.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, addr string) *http.Server {
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("addr", addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up
// resources when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the stockpulse application.
//
// Flags:
//   - --host: Bind interface. Defaults to value from config (SERVER_HOST).
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init(config.AppConfig.Log.Level, config.AppConfig.Log.Pretty)

	// Parse CLI flags (override config defaults if provided)
	host := flag.String("host", config.AppConfig.Server.Host, "Bind interface")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for the API server")
	flag.Parse()

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}

	server := startServer(router, *host+":"+*port)
	gracefulShutdown(ctx, server, cleanup)
}
