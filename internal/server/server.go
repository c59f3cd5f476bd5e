// Package server exposes the KPI engine over HTTP: two uploaded tables in,
// one JSON report out.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/campaign-kpi/internal/config"
)

// Server holds the HTTP surface configuration.
type Server struct {
	cfg             config.ServerConfig
	defaultCampaign string
	limiter         *rate.Limiter
}

// New builds a Server. defaultCampaign names exports when a request does not
// carry a campaign field.
func New(cfg config.ServerConfig, defaultCampaign string) *Server {
	return &Server{
		cfg:             cfg,
		defaultCampaign: defaultCampaign,
		limiter:         rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst),
	}
}

// Router assembles the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(requestLogger)

	r.Get("/health", handleHealth)
	r.With(s.throttle).Post("/api/analyze", s.handleAnalyze)

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// throttle applies a token-bucket limit to the analyze endpoint; parsing two
// uploaded tables is the expensive path.
func (s *Server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded, retry shortly")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		zap.L().Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
