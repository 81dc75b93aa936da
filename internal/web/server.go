package web

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/akolenda/galleria/internal/domain"
	"github.com/akolenda/galleria/internal/favorites"
	"github.com/akolenda/galleria/internal/images"
	"github.com/akolenda/galleria/internal/metrics"
)

// catalogAPI is the subset of catalog.Client that the web layer requires.
type catalogAPI interface {
	Artists(ctx context.Context) ([]domain.Artist, error)
	Galleries(ctx context.Context) ([]domain.Gallery, error)
	Genres(ctx context.Context) ([]domain.Genre, error)
	Paintings(ctx context.Context) ([]domain.Painting, error)
	PaintingsByGallery(ctx context.Context, galleryID int) ([]domain.Painting, error)
	PaintingIDsByGenre(ctx context.Context, genreID int) ([]int, error)
}

type Server struct {
	catalog   catalogAPI
	favorites *favorites.Favorites
	resolver  *images.Resolver
	templates embed.FS
	mux       *http.ServeMux
	tmplFuncs template.FuncMap
	logger    *slog.Logger
}

func NewServer(cat catalogAPI, favs *favorites.Favorites, resolver *images.Resolver, tmpl embed.FS, logger *slog.Logger) *Server {
	s := &Server{
		catalog:   cat,
		favorites: favs,
		resolver:  resolver,
		templates: tmpl,
		mux:       http.NewServeMux(),
		logger:    logger,
		tmplFuncs: template.FuncMap{
			"squareImage": func(fileName int) string { return images.URL(fileName, images.Square) },
			"fullImage":   func(fileName int) string { return images.URL(fileName, images.Full) },
			"inc":         func(i int) int { return i + 1 },
		},
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handleLoginPage)
	s.mux.HandleFunc("POST /login", s.handleLogin)
	s.mux.HandleFunc("POST /logout", s.handleLogout)

	s.mux.HandleFunc("GET /galleries", s.handleListGalleries)
	s.mux.HandleFunc("GET /galleries/{id}", s.handleGalleryDetail)
	s.mux.HandleFunc("GET /paintings", s.handleListPaintings)
	s.mux.HandleFunc("GET /paintings/{id}", s.handlePaintingDetail)
	s.mux.HandleFunc("GET /artists", s.handleArtists)
	s.mux.HandleFunc("GET /genres", s.handleGenres)

	s.mux.HandleFunc("GET /favorites", s.handleFavorites)
	s.mux.HandleFunc("POST /favorites/toggle", s.handleToggleFavorite)
	s.mux.HandleFunc("POST /favorites/remove", s.handleRemoveFavorites)

	s.mux.HandleFunc("GET /art-images/paintings/{variant}/{file}", s.handleImage)
	s.mux.Handle("GET /metrics", metrics.Handler())
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy",
			"default-src 'self'; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' data:; "+
				"connect-src 'self'")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		route := r.URL.Path
		if i := strings.IndexByte(route[1:], '/'); i >= 0 {
			route = route[:i+1]
		}
		metrics.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}

// renderPage parses and executes a full-page template set.
func (s *Server) renderPage(w http.ResponseWriter, data any, files ...string) error {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(s.templates, files...)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, "base", data)
}

// parseID extracts the {id} path variable as an int.
func parseID(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("id"))
}
