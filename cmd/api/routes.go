package main

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"bookshelf/internal/browse"
	"bookshelf/internal/config"
	"bookshelf/internal/httpx"
)

const maxRequestBytes = 1 << 20

type pinger interface {
	Ping(ctx context.Context) error
}

func newRouter(index *browse.HTTPHandler, store pinger, assets fs.FS) *http.ServeMux {
	router := http.NewServeMux()

	router.Handle("/{$}", httpx.MethodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(index.Index),
		http.MethodHead: http.HandlerFunc(index.Index),
	}))
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.HTMLError(w, r, http.StatusNotFound, "Page not found")
	})

	router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(assets)))

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("readiness check failed")
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	return router
}

// withMiddleware wraps the router in the request pipeline. The rate
// limiter's janitor stops when ctx is done.
func withMiddleware(ctx context.Context, cfg config.Config, h http.Handler) http.Handler {
	limiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)
	return httpx.Chain(h,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.RequestSizeLimitMiddleware(maxRequestBytes),
		limiter.Middleware,
	)
}
