package web

import (
	"log"
	"net/http"
	"strconv"

	"github.com/akolenda/galleria/internal/domain"
	"github.com/akolenda/galleria/internal/filter"
)

func (s *Server) handleArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.catalog.Artists(r.Context())
	if err != nil {
		log.Printf("list artists error: %v", err)
	}

	paintings, err := s.catalog.Paintings(r.Context())
	if err != nil {
		log.Printf("list paintings error: %v", err)
	}

	// Selecting the neutral option (0) restores the full list.
	artistID, _ := strconv.Atoi(r.URL.Query().Get("artist"))
	filtered := filter.ByArtist(paintings, artistID)

	sortField := filter.ParseSortField(r.URL.Query().Get("sort"))
	filtered = filter.Sort(filtered, sortField)

	var selected *domain.Artist
	for i := range artists {
		if artists[i].ArtistID == artistID {
			selected = &artists[i]
			break
		}
	}

	data := map[string]any{
		"Artists":   artists,
		"Selected":  selected,
		"Paintings": filtered,
		"SortField": string(sortField),
		"ActiveNav": "artists",
	}
	if selected != nil {
		data["IsFavorite"] = s.favorites.Artists.IsFavorite(selected.ArtistID)
	}

	if err := s.renderPage(w, data,
		"base.html", "pages/artists.html", "partials/painting_card.html",
	); err != nil {
		log.Printf("render page error: %v", err)
	}
}
