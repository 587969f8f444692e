// Command motifscan-server provides a REST API for motif scanning.
//
// Usage:
//
//	motifscan-server [options]
//
// Options:
//
//	-port     Port to listen on (default: 8080)
//	-host     Host to bind to (default: localhost)
//	-rate     Requests per second allowed, 0 disables limiting (default: 20)
//	-burst    Burst size of the rate limiter (default: 40)
//	-timeout  Per-request timeout (default: 60s)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aria-lang/motifscan-go/api/handlers"
	"github.com/aria-lang/motifscan-go/api/middleware"
	"github.com/aria-lang/motifscan-go/pkg/motifscan"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func newRouter(rps float64, burst int, timeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Get("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(motifscan.Info()))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(rps, burst))

		r.Post("/search", handlers.SearchHandler)

		r.Route("/matrix", func(r chi.Router) {
			r.Post("/log-odds", handlers.LogOddsHandler)
		})

		r.Route("/background", func(r chi.Router) {
			r.Post("/from-sequence", handlers.BackgroundHandler)
		})

		r.Route("/sequence", func(r chi.Router) {
			r.Post("/validate", handlers.ValidateHandler)
			r.Post("/stats", handlers.SequenceStatsHandler)
			r.Post("/reverse-complement", handlers.ReverseComplementHandler)
		})
	})

	return r
}

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	rps := flag.Float64("rate", 20, "Requests per second allowed on /api, 0 disables limiting")
	burst := flag.Int("burst", 40, "Burst size of the rate limiter")
	timeout := flag.Duration("timeout", 60*time.Second, "Per-request timeout")
	flag.Parse()

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      newRouter(*rps, *burst, *timeout),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: *timeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("motifscan API server starting on http://%s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}
