// Package server exposes report extraction over HTTP.
package server

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/olzhass/smena/pkg/config"
	"github.com/olzhass/smena/pkg/export"
	"github.com/olzhass/smena/pkg/report"
	"github.com/olzhass/smena/pkg/service"
)

// Server handles HTTP requests for shift report extraction.
type Server struct {
	config  *config.Config
	logger  *log.Logger
	mux     *http.ServeMux
	tmpl    *template.Template
	parser  *report.Parser
	reports sync.Map
}

// New creates a new HTTP server.
func New(cfg *config.Config, logger *log.Logger) *Server {
	return &Server{
		config: cfg,
		logger: logger,
		mux:    http.NewServeMux(),
		tmpl:   template.Must(template.New("index").Parse(indexHTML)),
		parser: report.New(logger),
	}
}

// Start starts the HTTP server.
func (s *Server) Start(addr string) error {
	s.setupRoutes()
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) setupRoutes() {
	// homepage
	s.mux.HandleFunc("/", s.withLogging(s.handleHome))

	s.mux.HandleFunc("/api/extract", s.withLogging(s.handleExtract))
	s.mux.HandleFunc("/api/files/", s.withLogging(s.handleFiles))
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if err := s.tmpl.Execute(w, nil); err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to render page", err)
	}
}

// handleExtract takes an uploaded report file, runs the block extraction
// and returns the full structured report plus reconciliation warnings.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	file, header, err := r.FormFile("report")
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "report file required", err)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to read file", err)
		return
	}

	rep, err := s.parser.Extract(data)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to extract report", err)
		return
	}

	base := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	filename := base + "-smena." + s.downloadExt()
	s.reports.Store(filename, rep)

	warnings := rep.Warnings()
	s.logger.Info("extraction complete", "file", header.Filename, "warnings", len(warnings), "empty", rep.Empty())

	if err := s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"file":     filename,
		"report":   rep,
		"warnings": warnings,
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// handleFiles serves the rendered output for a previously extracted report.
func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	filename := strings.TrimPrefix(r.URL.Path, "/api/files/")
	if filename == "" {
		s.respondError(w, r, http.StatusBadRequest, "filename required", nil)
		return
	}

	value, ok := s.reports.Load(filename)
	if !ok {
		s.respondError(w, r, http.StatusNotFound, "file not found", nil)
		return
	}
	rep, ok := value.(*report.Report)
	if !ok {
		s.respondError(w, r, http.StatusInternalServerError, "internal type assertion error", nil)
		return
	}

	output, err := service.Render(rep, s.downloadExt(), export.Meta{})
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to render report", err)
		return
	}

	w.Header().Set("Content-Type", contentType(s.downloadExt()))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(output); err != nil {
		s.logger.Warn("failed to write file response", "err", err)
	}
}

// downloadExt is the render format for /api/files/ downloads; JSON is
// already in the extract response, so default to csv.
func (s *Server) downloadExt() string {
	if s.config.Format == "" || s.config.Format == "json" {
		return "csv"
	}
	return s.config.Format
}

func contentType(format string) string {
	switch format {
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv"
	}
}

// --- helpers ---

// writeJSON encodes v as JSON with the given status and writes headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// respondError logs the error and returns a minimal JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	_ = s.writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// withLogging wraps a handler to log request start/end and recover panics.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
			}
		}()
		next(w, r)
	}
}

const indexHTML = `<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="utf-8">
<title>smena</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; }
pre { background: #f4f4f4; padding: 1rem; overflow: auto; }
.warning { color: #b45309; }
</style>
</head>
<body>
<h1>Отчёты смен</h1>
<form id="upload">
  <input type="file" name="report" required>
  <button type="submit">Обработать</button>
</form>
<div id="warnings"></div>
<p id="download"></p>
<pre id="result"></pre>
<script>
document.getElementById('upload').addEventListener('submit', async (e) => {
  e.preventDefault();
  const body = new FormData(e.target);
  const resp = await fetch('/api/extract', { method: 'POST', body });
  const data = await resp.json();
  if (data.status !== 'success') {
    document.getElementById('result').textContent = data.error;
    return;
  }
  document.getElementById('warnings').innerHTML =
    (data.warnings || []).map(w => '<p class="warning">' + w + '</p>').join('');
  document.getElementById('download').innerHTML =
    '<a href="/api/files/' + data.file + '">' + data.file + '</a>';
  document.getElementById('result').textContent = JSON.stringify(data.report, null, 2);
});
</script>
</body>
</html>
`
