package web

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/akolenda/galleria/internal/images"
)

const placeholderWidth = 300

// handleImage serves a painting image rendition, trying the alternate
// rendition when the requested one is missing and falling back to the
// generated placeholder when both are. Image misses are never errors.
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	variant, ok := images.ParseVariant(r.PathValue("variant"))
	file := r.PathValue("file")
	if !ok || !strings.HasSuffix(file, ".jpg") || strings.Contains(file, "/") {
		http.Error(w, "invalid image path", http.StatusBadRequest)
		return
	}

	path, found := s.resolver.Resolve(variant, file)
	if !found {
		w.Header().Set("Content-Type", "image/svg+xml")
		if _, err := io.WriteString(w, images.PlaceholderSVG(placeholderWidth, placeholderWidth*7/10, "No Image Available")); err != nil {
			log.Printf("write placeholder error: %v", err)
		}
		return
	}

	f, err := s.resolver.Open(path)
	if err != nil {
		log.Printf("open image error: %v", err)
		http.Error(w, "failed to open image", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := io.Copy(w, f); err != nil {
		log.Printf("copy image error: %v", err)
	}
}
