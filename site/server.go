package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/pages"
	"github.com/HeyGarrison/cakeelizabethdotcom/router"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// RequestIDHeader carries the id assigned to every request.
const RequestIDHeader = "X-Request-Id"

// wasmBinary is the client bundle looked up in the assets.
const wasmBinary = "app.wasm"

// Options configure a Server.
type Options struct {
	Deps   pages.Deps
	Logger *log.Logger

	// Assets are served under /resources/. Nil serves nothing there.
	Assets fs.FS
}

// Server renders pages on request.
type Server struct {
	deps     pages.Deps
	table    *router.Table
	logger   *log.Logger
	assets   fs.FS
	wasm     bool
	tmpl     *template.Template
	requests atomic.Int64
}

// New creates a server. The page is hydrated by the WebAssembly bundle when
// the assets contain one.
func New(opts Options) (*Server, error) {
	tmpl, err := template.New("page").Parse(tmplBase)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		deps:   opts.Deps,
		table:  pages.Routes(opts.Deps),
		logger: logger,
		assets: opts.Assets,
		tmpl:   tmpl,
	}
	if s.assets != nil {
		if _, err := fs.Stat(s.assets, wasmBinary); err == nil {
			s.wasm = true
		}
	}
	return s, nil
}

// Handler returns the HTTP handler of the site.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	if s.assets != nil {
		mux.Handle("/resources/", http.StripPrefix("/resources/", http.FileServerFS(s.assets)))
	}
	mux.HandleFunc("/", s.handlePage)
	return s.logRequests(mux)
}

// Requests returns how many requests the server has handled.
func (s *Server) Requests() int64 {
	return s.requests.Load()
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var buf bytes.Buffer
	status, err := s.renderPage(&buf, location.FromURL(r.URL))
	if err != nil {
		s.logger.Error("Render failed", "path", r.URL.Path, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodGet {
		_, _ = buf.WriteTo(w)
	}
}

// renderPage writes the full HTML document for loc and returns its status.
func (s *Server) renderPage(buf *bytes.Buffer, loc location.Location) (int, error) {
	page, err := Render(s.deps, s.table, loc)
	if err != nil {
		return 0, err
	}
	data := map[string]any{"Page": page, "WASM": s.wasm}
	if err := s.tmpl.ExecuteTemplate(buf, "base", data); err != nil {
		return 0, fmt.Errorf("execute template: %w", err)
	}
	return page.Status, nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests tags each request with an id and logs it once served.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		n := s.requests.Inc()

		s.logger.Info("Request",
			"id", id,
			"n", n,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
