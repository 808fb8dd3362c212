// Package api serves description database lookups over HTTP.
package api

import (
	"encoding/json"
	"net/http"
	"regexp"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"luni/internal/unicodedb"
)

// SearchResponse is the body of a successful search.
type SearchResponse struct {
	ID      string   `json:"id"`
	Pattern string   `json:"pattern"`
	Chars   []string `json:"chars"`
	Codes   []string `json:"codes"`
}

// HealthResponse is the body of the health check.
type HealthResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

// ErrorResponse is returned with every 4xx/5xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server answers searches against a loaded store. Compiled patterns are kept
// in an LRU cache.
type Server struct {
	store    *unicodedb.Store
	patterns *lru.Cache[string, *regexp.Regexp]
	logger   logrus.FieldLogger
	metrics  *metrics
}

// NewServer creates a server over store caching up to cacheSize patterns.
func NewServer(store *unicodedb.Store, cacheSize int, logger logrus.FieldLogger) (*Server, error) {
	patterns, err := lru.New[string, *regexp.Regexp](cacheSize)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Server{
		store:    store,
		patterns: patterns,
		logger:   logger,
		metrics:  newMetrics(),
	}, nil
}

// HandlerFromMux registers the server routes on r and returns it.
func HandlerFromMux(s *Server, r chi.Router) http.Handler {
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/search", s.Search)
	r.Get("/healthz", s.Health)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	return r
}

// Search handles GET /search?pattern=...
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var pattern string
	if err := runtime.BindQueryParameter("form", true, true, "pattern", r.URL.Query(), &pattern); err != nil {
		s.metrics.searches.WithLabelValues(resultBadRequest).Inc()
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	re, err := s.compile(pattern)
	if err != nil {
		s.metrics.searches.WithLabelValues(resultInvalidPattern).Inc()
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	chars := s.store.SearchRegexp(re)

	resp := SearchResponse{
		ID:      uuid.New().String(),
		Pattern: pattern,
		Chars:   make([]string, len(chars)),
		Codes:   make([]string, len(chars)),
	}
	for i, c := range chars {
		resp.Chars[i] = string(c)
		resp.Codes[i] = unicodedb.CodePoint(c)
	}

	s.metrics.searches.WithLabelValues(resultOK).Inc()
	s.metrics.matches.Observe(float64(len(chars)))
	s.logger.WithFields(logrus.Fields{
		"search_id": resp.ID,
		"pattern":   pattern,
		"matches":   len(chars),
	}).Debug("Search completed")

	writeJSON(w, http.StatusOK, resp)
}

// Health handles GET /healthz
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Records: s.store.Len()})
}

func (s *Server) compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := s.patterns.Get(pattern); ok {
		s.metrics.cacheHits.Inc()
		return re, nil
	}

	re, err := unicodedb.CompilePattern(pattern)
	if err != nil {
		return nil, err
	}
	s.patterns.Add(pattern, re)
	return re, nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   ww.Status(),
			"duration": time.Since(start),
		}).Info("Request handled")
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
