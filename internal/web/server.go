// Package web provides the live preview server: it renders one script
// source as Markdown over HTTP and pushes a reload to connected browsers
// whenever the source file changes on disk.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mirelia/scriptmd/core/convert"
	"github.com/mirelia/scriptmd/core/markdown"
	"github.com/mirelia/scriptmd/internal/logging"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Config holds server configuration.
type Config struct {
	// Port is the TCP port to listen on.
	Port int

	// Path is the script source file being previewed.
	Path string
}

// Server serves the rendered preview and the reload socket.
type Server struct {
	cfg       Config
	hub       *Hub
	templates *template.Template
}

// NewServer builds a preview server for the given configuration.
func NewServer(cfg Config) (*Server, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Server{
		cfg:       cfg,
		hub:       NewHub(),
		templates: templates,
	}, nil
}

// previewData is the template payload for one render of the source.
type previewData struct {
	Title    string
	Author   string
	Summary  string
	Words    string
	Markdown string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	sc, err := convert.Load(s.cfg.Path)
	if err != nil {
		logging.ErrorContext(r.Context(), "preview render failed", "path", s.cfg.Path, "error", err)
		http.Error(w, fmt.Sprintf("failed to render %s: %v", s.cfg.Path, err), http.StatusInternalServerError)
		return
	}

	data := previewData{
		Title:    sc.Title,
		Author:   sc.Author,
		Summary:  sc.Summary,
		Words:    sc.WordCount().String(),
		Markdown: markdown.Script(sc),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "preview.html", data); err != nil {
		logging.ErrorContext(r.Context(), "template execution failed", "error", err)
	}
}

// Handler returns the full HTTP handler, middleware included.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.hub.ServeWS)
	return logging.CombinedMiddleware(mux)
}

// watch broadcasts a reload whenever the previewed file changes. The watch
// is on the parent directory: editors that write via rename would otherwise
// silently detach a watch on the file itself.
func (s *Server) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(s.cfg.Path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", s.cfg.Path, err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logging.FileWatchEvent(event.Op.String(), event.Name)
			s.hub.BroadcastReload(s.cfg.Path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Error("file watcher error", "error", err)
		}
	}
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go s.hub.Run()
	go func() {
		if err := s.watch(ctx); err != nil {
			logging.Error("file watch unavailable, live reload disabled", "error", err)
		}
	}()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Port),
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	logging.ServerStartup("preview", "http", s.cfg.Port, "path", s.cfg.Path)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
