package web

import (
	"log"
	"net/http"

	"github.com/akolenda/galleria/internal/domain"
)

func (s *Server) handleListGalleries(w http.ResponseWriter, r *http.Request) {
	galleries, err := s.catalog.Galleries(r.Context())
	if err != nil {
		// The list renders empty rather than erroring; the failure is only
		// visible in the logs.
		log.Printf("list galleries error: %v", err)
	}

	if err := s.renderPage(w,
		map[string]any{"Galleries": galleries, "ActiveNav": "galleries"},
		"base.html", "pages/galleries.html",
	); err != nil {
		log.Printf("render page error: %v", err)
	}
}

func (s *Server) handleGalleryDetail(w http.ResponseWriter, r *http.Request) {
	galleryID, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid gallery id", http.StatusBadRequest)
		return
	}

	galleries, err := s.catalog.Galleries(r.Context())
	if err != nil {
		log.Printf("list galleries error: %v", err)
	}

	var gallery *domain.Gallery
	for i := range galleries {
		if galleries[i].GalleryID == galleryID {
			gallery = &galleries[i]
			break
		}
	}
	if gallery == nil {
		http.NotFound(w, r)
		return
	}

	paintings, err := s.catalog.PaintingsByGallery(r.Context(), galleryID)
	if err != nil {
		log.Printf("gallery paintings error: %v", err)
		paintings = nil
	}

	if err := s.renderPage(w,
		map[string]any{
			"Gallery":    gallery,
			"Paintings":  paintings,
			"IsFavorite": s.favorites.Galleries.IsFavorite(galleryID),
			"ActiveNav":  "galleries",
		},
		"base.html", "pages/gallery_detail.html", "partials/painting_card.html",
	); err != nil {
		log.Printf("render page error: %v", err)
	}
}
