// Package server exposes the translation service over HTTP: JSON and
// file-upload translation endpoints, the field-mapping reference table,
// health, and Prometheus metrics.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/c360studio/casebridge/config"
	"github.com/c360studio/casebridge/graph"
	"github.com/c360studio/casebridge/translate"
)

// Server is the casebridge HTTP service.
type Server struct {
	logger         *slog.Logger
	publisher      *graph.Publisher
	version        string
	baseIRI        string
	maxUploadBytes int64

	httpServer *http.Server
}

// New builds a server from configuration. The publisher may be nil,
// which disables NATS publication.
func New(cfg *config.Config, publisher *graph.Publisher, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		logger:         logger,
		publisher:      publisher,
		version:        version,
		baseIRI:        cfg.Translate.BaseIRI,
		maxUploadBytes: cfg.Server.MaxUploadBytes,
	}

	mux := http.NewServeMux()
	s.registerHandlers(mux)

	s.httpServer = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      withLogging(logger, mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

// registerHandlers wires all routes onto the mux.
func (s *Server) registerHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/", s.handleInfo)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/translate/case-to-ieee", s.handleTranslate(translate.VocabIEEESCD))
	mux.HandleFunc("/translate/case-to-asn", s.handleTranslate(translate.VocabASNCTDL))
	mux.HandleFunc("/translate/upload-file", s.handleUpload)
	mux.HandleFunc("/field-mapping", s.handleFieldMapping)
	mux.Handle("/metrics", promhttp.Handler())
}

// ListenAndServe runs the HTTP server until it fails or is shut down.
func (s *Server) ListenAndServe() error {
	s.logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
