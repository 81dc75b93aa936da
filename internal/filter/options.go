package filter

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/akolenda/galleria/internal/domain"
)

// Option is a dropdown entry for the filter sidebar.
type Option struct {
	ID   int
	Name string
}

// ArtistOptions extracts the unique artists embedded in a painting list,
// sorted by display name. Artists without both name parts are skipped.
func ArtistOptions(paintings []domain.Painting) []Option {
	seen := make(map[int]Option)
	for _, p := range paintings {
		a := p.Artist
		if a == nil || a.ArtistID == 0 || a.FirstName == "" || a.LastName == "" {
			continue
		}
		seen[a.ArtistID] = Option{ID: a.ArtistID, Name: a.FullName()}
	}
	return sortOptions(seen)
}

// GalleryOptions extracts the unique galleries embedded in a painting list,
// sorted by display name.
func GalleryOptions(paintings []domain.Painting) []Option {
	seen := make(map[int]Option)
	for _, p := range paintings {
		g := p.Gallery
		if g == nil || g.GalleryID == 0 || g.Name == "" {
			continue
		}
		seen[g.GalleryID] = Option{ID: g.GalleryID, Name: g.Name}
	}
	return sortOptions(seen)
}

// GenreOptions extracts the unique genres embedded in a painting list,
// sorted by name. Paintings without a genre contribute nothing.
func GenreOptions(paintings []domain.Painting) []Option {
	seen := make(map[int]Option)
	for _, p := range paintings {
		g := p.Genre
		if g == nil || g.GenreID == 0 || g.Name == "" {
			continue
		}
		seen[g.GenreID] = Option{ID: g.GenreID, Name: g.Name}
	}
	return sortOptions(seen)
}

func sortOptions(seen map[int]Option) []Option {
	out := make([]Option, 0, len(seen))
	for _, opt := range seen {
		out = append(out, opt)
	}
	c := collate.New(language.English)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}
