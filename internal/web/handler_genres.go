package web

import (
	"log"
	"net/http"
	"strconv"

	"github.com/akolenda/galleria/internal/domain"
	"github.com/akolenda/galleria/internal/filter"
)

func (s *Server) handleGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := s.catalog.Genres(r.Context())
	if err != nil {
		log.Printf("list genres error: %v", err)
	}

	paintings, err := s.catalog.Paintings(r.Context())
	if err != nil {
		log.Printf("list paintings error: %v", err)
	}

	genreID, _ := strconv.Atoi(r.URL.Query().Get("genre"))

	filtered := paintings
	var selected *domain.Genre
	if genreID != 0 {
		// The genre endpoint returns painting ids; intersect them with the
		// already-fetched list so the view keeps the normalized records.
		ids, err := s.catalog.PaintingIDsByGenre(r.Context(), genreID)
		if err != nil {
			log.Printf("paintings by genre error: %v", err)
			ids = nil
		}
		filtered = filter.ByIDs(paintings, ids)

		for i := range genres {
			if genres[i].GenreID == genreID {
				selected = &genres[i]
				break
			}
		}
	}

	sortField := filter.ParseSortField(r.URL.Query().Get("sort"))
	filtered = filter.Sort(filtered, sortField)

	if err := s.renderPage(w,
		map[string]any{
			"Genres":    genres,
			"Selected":  selected,
			"Paintings": filtered,
			"SortField": string(sortField),
			"ActiveNav": "genres",
		},
		"base.html", "pages/genres.html", "partials/painting_card.html",
	); err != nil {
		log.Printf("render page error: %v", err)
	}
}
