package web

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/akolenda/galleria/internal/domain"
	"github.com/akolenda/galleria/internal/filter"
)

// predicatesFromQuery maps the filter form's query parameters onto the
// pipeline's predicates. Each filter has an on/off checkbox plus a value;
// genre is active whenever a genre is chosen.
func predicatesFromQuery(q url.Values) filter.Predicates {
	atoi := func(key string) int {
		n, _ := strconv.Atoi(q.Get(key))
		return n
	}

	preds := filter.Predicates{
		TitleOn:   q.Get("title_on") != "",
		Title:     q.Get("title"),
		ArtistOn:  q.Get("artist_on") != "",
		ArtistID:  atoi("artist"),
		GalleryOn: q.Get("gallery_on") != "",
		GalleryID: atoi("gallery"),
		GenreID:   atoi("genre"),
	}

	// The year filter needs both bounds; with either missing it stays off.
	if q.Get("year_on") != "" {
		from, errFrom := strconv.Atoi(q.Get("from"))
		to, errTo := strconv.Atoi(q.Get("to"))
		if errFrom == nil && errTo == nil {
			preds.YearOn = true
			preds.YearFrom = from
			preds.YearTo = to
		}
	}

	return preds
}

func (s *Server) handleListPaintings(w http.ResponseWriter, r *http.Request) {
	paintings, err := s.catalog.Paintings(r.Context())
	if err != nil {
		// The paintings view is the one place a fetch failure is surfaced
		// to the user.
		log.Printf("list paintings error: %v", err)
		if rerr := s.renderPage(w,
			map[string]any{"Error": "Failed to fetch paintings.", "ActiveNav": "paintings"},
			"base.html", "pages/paintings.html", "partials/painting_card.html",
		); rerr != nil {
			log.Printf("render page error: %v", rerr)
		}
		return
	}

	preds := predicatesFromQuery(r.URL.Query())
	sortField := filter.ParseSortField(r.URL.Query().Get("sort"))
	filtered := filter.Sort(preds.Apply(paintings), sortField)

	if err := s.renderPage(w,
		map[string]any{
			"Paintings":      filtered,
			"ArtistOptions":  filter.ArtistOptions(paintings),
			"GalleryOptions": filter.GalleryOptions(paintings),
			"GenreOptions":   filter.GenreOptions(paintings),
			"Query":          r.URL.Query(),
			"SortField":      string(sortField),
			"ActiveNav":      "paintings",
		},
		"base.html", "pages/paintings.html", "partials/painting_card.html",
	); err != nil {
		log.Printf("render page error: %v", err)
	}
}

func (s *Server) handlePaintingDetail(w http.ResponseWriter, r *http.Request) {
	paintingID, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid painting id", http.StatusBadRequest)
		return
	}

	paintings, err := s.catalog.Paintings(r.Context())
	if err != nil {
		http.Error(w, "failed to fetch paintings", http.StatusInternalServerError)
		log.Printf("painting detail error: %v", err)
		return
	}

	var painting *domain.Painting
	for i := range paintings {
		if paintings[i].PaintingID == paintingID {
			painting = &paintings[i]
			break
		}
	}
	if painting == nil {
		http.NotFound(w, r)
		return
	}

	if err := s.renderPage(w,
		map[string]any{
			"Painting":   painting,
			"IsFavorite": s.favorites.Paintings.IsFavorite(paintingID),
			"ActiveNav":  "paintings",
		},
		"base.html", "pages/painting_detail.html",
	); err != nil {
		log.Printf("render page error: %v", err)
	}
}
