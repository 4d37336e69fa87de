package server

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/c360studio/casebridge/casedoc"
	"github.com/c360studio/casebridge/fieldmap"
	"github.com/c360studio/casebridge/ingest"
	"github.com/c360studio/casebridge/translate"
)

// InfoResponse is the JSON response for GET /
type InfoResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse is the JSON response for GET /health
type HealthResponse struct {
	Status string `json:"status"`
}

// handleInfo handles GET / - returns service metadata
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, InfoResponse{
		Service: "casebridge",
		Version: s.version,
		Endpoints: map[string]string{
			"POST /translate/case-to-ieee": "Translate a CASE 1.1 JSON document to IEEE SCD JSON-LD",
			"POST /translate/case-to-asn":  "Translate a CASE 1.1 JSON document to ASN-CTDL JSON-LD",
			"POST /translate/upload-file":  "Translate an uploaded JSON, CSV, or Excel file",
			"GET /field-mapping":           "Field mapping reference table (JSON, ?format=csv for CSV)",
			"GET /health":                  "Health check",
			"GET /metrics":                 "Prometheus metrics",
		},
	})
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

// handleTranslate handles the two JSON translation endpoints. The
// request body is a CASE 1.1 document; the response is the translated
// JSON-LD document.
func (s *Server) handleTranslate(vocab translate.Vocabulary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, s.maxUploadBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("read request body: %v", err))
			return
		}

		doc, err := casedoc.Parse(body)
		if err != nil {
			translationsTotal.WithLabelValues(string(vocab), "error").Inc()
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		s.respondTranslated(w, r, doc, vocab)
	}
}

// handleUpload handles POST /translate/upload-file. The multipart form
// carries the file plus target_format and an optional input_format
// override; without the override the format is detected from the
// filename extension.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("parse multipart form: %v", err))
		return
	}

	vocab := translate.Vocabulary(r.FormValue("target_format"))
	if !vocab.Valid() {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("invalid target_format %q (expected %q or %q)",
				vocab, translate.VocabIEEESCD, translate.VocabASNCTDL))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("read uploaded file: %v", err))
		return
	}

	format := ingest.Format(r.FormValue("input_format"))
	doc, err := ingest.Parse(content, header.Filename, format)
	if err != nil {
		uploadsTotal.WithLabelValues(string(format), "error").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	uploadsTotal.WithLabelValues(string(format), "ok").Inc()

	s.respondTranslated(w, r, doc, vocab)
}

// respondTranslated runs the translation, records metrics, optionally
// publishes to NATS, and writes the JSON-LD response.
func (s *Server) respondTranslated(w http.ResponseWriter, r *http.Request, doc *casedoc.Document, vocab translate.Vocabulary) {
	start := time.Now()

	var opts []translate.Option
	if s.baseIRI != "" {
		opts = append(opts, translate.WithBaseIRI(s.baseIRI))
	}

	out, err := translate.Translate(doc, vocab, opts...)
	if err != nil {
		translationsTotal.WithLabelValues(string(vocab), "error").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	translationsTotal.WithLabelValues(string(vocab), "ok").Inc()
	translationDuration.WithLabelValues(string(vocab)).Observe(time.Since(start).Seconds())
	graphNodes.WithLabelValues(string(vocab)).Observe(float64(len(out.Graph)))

	if err := s.publisher.Publish(r.Context(), vocab, out); err != nil {
		// Publishing is best-effort; the translation already succeeded.
		s.logger.Warn("Failed to publish translated document", "error", err)
	}

	writeJSON(w, http.StatusOK, out)
}

// handleFieldMapping handles GET /field-mapping. The default response
// is the JSON reference table; ?format=csv downloads it as CSV.
func (s *Server) handleFieldMapping(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "json":
		writeJSON(w, http.StatusOK, fieldmap.Reference())
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="field_mapping.csv"`)
		if err := fieldmap.WriteCSV(w); err != nil {
			s.logger.Error("Failed to write field mapping CSV", "error", err)
		}
	default:
		writeError(w, http.StatusBadRequest, "unknown format (expected json or csv)")
	}
}
