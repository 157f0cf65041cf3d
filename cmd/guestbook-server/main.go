// Package main provides the guestbook server executable with its HTTP API.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coregx/guestbook"
	"github.com/coregx/guestbook/cmd/guestbook-server/internal/api"
	"github.com/coregx/guestbook/internal/config"
	"github.com/coregx/guestbook/internal/logging"
	"github.com/coregx/guestbook/internal/storage"
)

func main() {
	log.Println("Starting guestbook server v0.1.0...")

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Configuration loaded:")
	log.Printf("   Server: %s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("   Storage: %s", cfg.Storage.Backend)
	log.Printf("   Default page size: %d", cfg.Guestbook.DefaultPageSize)

	logger := logging.New(os.Getenv("LOG_DEBUG") != "")

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	repo, err := storage.Open(startupCtx, cfg, logger)
	startupCancel()
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			log.Printf("Failed to close storage: %v", closeErr)
		}
	}()

	gb, err := guestbook.New(
		guestbook.WithRepository(repo),
		guestbook.WithLogger(logger),
		guestbook.WithDefaultPageSize(cfg.Guestbook.DefaultPageSize),
	)
	if err != nil {
		log.Fatalf("Failed to create guestbook: %v", err)
	}

	handler := api.NewHandler(gb, logger)

	// Setup HTTP routes
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/messages", handler.HandleMessages)
	mux.HandleFunc("/api/v1/health", handler.HandleHealth)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      loggingMiddleware(mux, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("HTTP server listening on %s", addr)
		log.Println("API Endpoints:")
		log.Println("   GET    /api/v1/messages?max_results=&page_token=")
		log.Println("   POST   /api/v1/messages")
		log.Println("   GET    /api/v1/health")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server stopped")
}

// loggingMiddleware logs HTTP requests.
func loggingMiddleware(next http.Handler, logger guestbook.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger.Infof("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
		logger.Debugf("%s %s - %v", r.Method, r.URL.Path, time.Since(start))
	})
}
