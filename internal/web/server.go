// Package web serves a read-only preview of profile documents: rendered HTML
// for humans and the raw documents as JSON. All reads go through the same
// store as the editors, so the preview always reflects the last completed
// write.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oliCHECK24/terminal-portfolio/internal/config"
	"github.com/oliCHECK24/terminal-portfolio/internal/model"
	"github.com/oliCHECK24/terminal-portfolio/internal/store"
)

//go:embed templates/*.html
var assetsFS embed.FS

type ServerConfig struct {
	Addr  string
	Store store.Store

	// Logger is optional; NewServer falls back to a production logger.
	Logger *zap.Logger
}

type Server struct {
	cfg  ServerConfig
	tmpl *template.Template
	log  *zap.Logger
	pres config.Presentation
}

func NewServer(cfg ServerConfig) (*Server, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, errors.New("web: missing addr")
	}
	tmpl, err := template.ParseFS(assetsFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log, err = zap.NewProduction()
		if err != nil {
			return nil, err
		}
	}
	return &Server{cfg: cfg, tmpl: tmpl, log: log, pres: config.FromEnv()}, nil
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogging)

	r.Get("/", s.handleProfilePage)
	r.Get("/p/{username}", s.handleProfilePage)
	r.Get("/api/default", s.handleProfileJSON)
	r.Get("/api/profiles/{username}", s.handleProfileJSON)

	return r
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)),
		)
	})
}

func (s *Server) loadDoc(r *http.Request) (string, *model.Document, error) {
	username := strings.TrimSpace(chi.URLParam(r, "username"))
	doc, err := s.cfg.Store.Load(username)
	return username, doc, err
}

type profileVM struct {
	Username string
	Prompt   string
	Theme    string
	Options  []model.Option
}

func (s *Server) handleProfilePage(w http.ResponseWriter, r *http.Request) {
	username, doc, err := s.loadDoc(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	vm := profileVM{
		Username: username,
		Prompt:   s.pres.Prompt(),
		Theme:    s.pres.Theme,
		Options:  doc.Options,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "profile.html", vm); err != nil {
		s.log.Error("render profile", zap.String("username", username), zap.Error(err))
	}
}

func (s *Server) handleProfileJSON(w http.ResponseWriter, r *http.Request) {
	username, doc, err := s.loadDoc(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		s.log.Error("encode profile", zap.String("username", username), zap.Error(err))
	}
}
