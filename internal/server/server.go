// Package server exposes the generation pipeline over HTTP: an embedded
// upload form and a single multipart generate endpoint.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/07AMIT10/PresentationGen/internal/deck"
	"github.com/07AMIT10/PresentationGen/internal/extract"
	"github.com/07AMIT10/PresentationGen/internal/pipeline"
)

//go:embed web
var embeddedWeb embed.FS

// PPTX download MIME type.
const pptxMIME = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

const (
	maxUploadBytes = 64 << 20
	maxSlides      = 50
	requestTimeout = 120 * time.Second
)

// DeckRunner is the pipeline as the server sees it (consumer-side
// interface, so tests can stub the whole pipeline).
type DeckRunner interface {
	Run(ctx context.Context, req pipeline.Request) (*pipeline.Result, error)
}

// Server handles the web form and the generation API.
type Server struct {
	runner       DeckRunner
	logger       *zap.Logger
	templatePath string
	mux          *http.ServeMux
}

// New builds the server. templatePath names the bundled default template
// on disk; when the file is absent the pipeline generates an empty
// default instead.
func New(runner DeckRunner, templatePath string, logger *zap.Logger) (*Server, error) {
	if runner == nil {
		return nil, errors.New("deck runner required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{runner: runner, logger: logger, templatePath: templatePath, mux: http.NewServeMux()}

	sub, err := fs.Sub(embeddedWeb, "web")
	if err != nil {
		return nil, err
	}
	s.mux.HandleFunc("POST /api/generate", s.handleGenerate)
	s.mux.Handle("GET /", http.FileServer(http.FS(sub)))
	return s, nil
}

// Routes returns the handler with the middleware chain applied. Each
// entry wraps the previous one, so the last listed runs outermost:
// recovery, then request ID, then logging, then the mux.
func (s *Server) Routes() http.Handler {
	var h http.Handler = s.mux
	for _, mw := range []Middleware{
		LoggingMiddleware(s.logger),
		RequestIDMiddleware,
		RecoveryMiddleware(s.logger),
	} {
		h = mw(h)
	}
	return h
}

// ListenAndServe runs the server until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("listening", zap.String("addr", addr))
	return srv.ListenAndServe()
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, fmt.Sprintf("invalid upload: %v", err), http.StatusBadRequest)
		return
	}

	topic := r.FormValue("topic")
	if topic == "" {
		http.Error(w, "topic is required", http.StatusBadRequest)
		return
	}
	slides := 10
	if v := r.FormValue("slides"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxSlides {
			http.Error(w, fmt.Sprintf("slide count must be between 1 and %d", maxSlides), http.StatusBadRequest)
			return
		}
		slides = n
	}

	files := r.MultipartForm.File["pdfs"]
	if len(files) == 0 {
		http.Error(w, "at least one PDF upload is required", http.StatusBadRequest)
		return
	}
	var docs []pipeline.Upload
	var warnings []string
	for _, fh := range files {
		data, err := readUpload(fh)
		if err != nil {
			http.Error(w, fmt.Sprintf("read upload %s: %v", fh.Filename, err), http.StatusBadRequest)
			return
		}
		pages := extract.PageCount(data)
		if pages == 0 {
			s.logger.Warn("skipping unreadable upload", zap.String("file", fh.Filename))
			warnings = append(warnings, fmt.Sprintf("skipped %s: not a readable PDF", fh.Filename))
			continue
		}
		s.logger.Debug("received document",
			zap.String("file", fh.Filename),
			zap.Int("bytes", len(data)),
			zap.Int("pages", pages))
		docs = append(docs, pipeline.Upload{Name: fh.Filename, Data: data})
	}
	if len(docs) == 0 {
		http.Error(w, "no readable PDF uploads", http.StatusBadRequest)
		return
	}

	tmpl, err := s.resolveTemplate(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	res, err := s.runner.Run(ctx, pipeline.Request{
		Documents:  docs,
		Template:   tmpl,
		Topic:      topic,
		SlideCount: slides,
	})
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, deck.ErrInvalidTemplate) {
			status = http.StatusBadRequest
		}
		s.logger.Error("generation failed", zap.Error(err))
		http.Error(w, err.Error(), status)
		return
	}

	for _, warning := range append(warnings, res.Warnings...) {
		w.Header().Add("X-Generation-Warning", warning)
	}
	w.Header().Set("Content-Type", pptxMIME)
	w.Header().Set("Content-Disposition", `attachment; filename="generated_presentation.pptx"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Deck)))
	_, _ = w.Write(res.Deck)
}

// resolveTemplate picks the uploaded template if present (validated
// before use), otherwise the bundled template file if it exists on disk,
// otherwise nil so the pipeline generates the empty default.
func (s *Server) resolveTemplate(r *http.Request) ([]byte, error) {
	if fhs := r.MultipartForm.File["template"]; len(fhs) > 0 {
		data, err := readUpload(fhs[0])
		if err != nil {
			return nil, fmt.Errorf("read template upload: %w", err)
		}
		if err := deck.Validate(data); err != nil {
			return nil, fmt.Errorf("uploaded template rejected: %w", err)
		}
		return data, nil
	}
	if s.templatePath != "" {
		if data, err := os.ReadFile(s.templatePath); err == nil {
			if err := deck.Validate(data); err == nil {
				return data, nil
			}
			s.logger.Warn("bundled template invalid, using generated default",
				zap.String("path", s.templatePath))
		}
	}
	return nil, nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxUploadBytes))
}
