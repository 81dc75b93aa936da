package web

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/akolenda/galleria/internal/metrics"
)

func (s *Server) handleFavorites(w http.ResponseWriter, r *http.Request) {
	if err := s.renderPage(w,
		map[string]any{
			"Galleries": s.favorites.Galleries.Items(),
			"Artists":   s.favorites.Artists.Items(),
			"Paintings": s.favorites.Paintings.Items(),
			"ActiveNav": "favorites",
		},
		"base.html", "pages/favorites.html",
	); err != nil {
		log.Printf("render page error: %v", err)
	}
}

// handleToggleFavorite flips one entity's favorite state. The form carries
// only kind and id, so the full snapshot is resolved from the catalog
// before an add; a remove needs no snapshot.
func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	kind := r.FormValue("kind")
	id, err := strconv.Atoi(r.FormValue("id"))
	if err != nil || id == 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	switch kind {
	case "gallery":
		galleries, err := s.catalog.Galleries(r.Context())
		if err != nil {
			http.Error(w, "failed to fetch galleries", http.StatusInternalServerError)
			log.Printf("toggle gallery favorite error: %v", err)
			return
		}
		for _, g := range galleries {
			if g.GalleryID == id {
				s.favorites.Galleries.Toggle(r.Context(), g)
				break
			}
		}
	case "artist":
		artists, err := s.catalog.Artists(r.Context())
		if err != nil {
			http.Error(w, "failed to fetch artists", http.StatusInternalServerError)
			log.Printf("toggle artist favorite error: %v", err)
			return
		}
		for _, a := range artists {
			if a.ArtistID == id {
				s.favorites.Artists.Toggle(r.Context(), a)
				break
			}
		}
	case "painting":
		paintings, err := s.catalog.Paintings(r.Context())
		if err != nil {
			http.Error(w, "failed to fetch paintings", http.StatusInternalServerError)
			log.Printf("toggle painting favorite error: %v", err)
			return
		}
		for _, p := range paintings {
			if p.PaintingID == id {
				s.favorites.Paintings.Toggle(r.Context(), p)
				break
			}
		}
	default:
		http.Error(w, "invalid kind", http.StatusBadRequest)
		return
	}

	metrics.FavoriteToggles.WithLabelValues(kind).Inc()
	redirectBack(w, r)
}

// handleRemoveFavorites removes the selected entries from the review
// screen. Each removal is an independent toggle and persist; there is no
// multi-kind transaction.
func (s *Server) handleRemoveFavorites(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	for _, g := range s.favorites.Galleries.Items() {
		if formHasID(r, "galleries", g.GalleryID) {
			s.favorites.Galleries.Toggle(r.Context(), g)
		}
	}
	for _, a := range s.favorites.Artists.Items() {
		if formHasID(r, "artists", a.ArtistID) {
			s.favorites.Artists.Toggle(r.Context(), a)
		}
	}
	for _, p := range s.favorites.Paintings.Items() {
		if formHasID(r, "paintings", p.PaintingID) {
			s.favorites.Paintings.Toggle(r.Context(), p)
		}
	}

	http.Redirect(w, r, "/favorites", http.StatusSeeOther)
}

func formHasID(r *http.Request, field string, id int) bool {
	for _, v := range r.Form[field] {
		if n, err := strconv.Atoi(v); err == nil && n == id {
			return true
		}
	}
	return false
}

func redirectBack(w http.ResponseWriter, r *http.Request) {
	target := r.FormValue("back")
	// Only same-site paths; "//host" would be protocol-relative.
	if target == "" || target[0] != '/' || strings.HasPrefix(target, "//") {
		target = "/favorites"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
