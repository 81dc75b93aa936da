// Package filter implements the painting filter and sort pipeline. All
// functions re-derive from the full fetched list and never mutate their
// input, so applying a narrower set of predicates restores previously
// excluded paintings.
package filter

import (
	"strings"

	"github.com/akolenda/galleria/internal/domain"
)

// Predicates is the set of independently toggleable painting filters. A
// painting must satisfy every active predicate. Genre has no toggle: it is
// active whenever a non-zero genre id is chosen.
type Predicates struct {
	TitleOn    bool
	Title      string
	ArtistOn   bool
	ArtistID   int
	GalleryOn  bool
	GalleryID  int
	YearOn     bool
	YearFrom   int
	YearTo     int
	GenreID    int
}

// Apply returns the paintings satisfying all active predicates, in their
// original relative order. With no active predicates the full list is
// returned unchanged.
func (f Predicates) Apply(paintings []domain.Painting) []domain.Painting {
	out := make([]domain.Painting, 0, len(paintings))
	for _, p := range paintings {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (f Predicates) matches(p domain.Painting) bool {
	if f.TitleOn && f.Title != "" {
		if !strings.Contains(strings.ToLower(p.Title), strings.ToLower(f.Title)) {
			return false
		}
	}
	if f.ArtistOn && f.ArtistID != 0 {
		if p.Artist == nil || p.Artist.ArtistID != f.ArtistID {
			return false
		}
	}
	if f.GalleryOn && f.GalleryID != 0 {
		if p.Gallery == nil || p.Gallery.GalleryID != f.GalleryID {
			return false
		}
	}
	if f.YearOn {
		// Both bounds are required together; the range is inclusive.
		if p.YearOfWork < f.YearFrom || p.YearOfWork > f.YearTo {
			return false
		}
	}
	if f.GenreID != 0 {
		if p.Genre == nil || p.Genre.GenreID != f.GenreID {
			return false
		}
	}
	return true
}

// ByArtist is the single-select variant used by the artists view: 0 is the
// neutral option and restores the full list.
func ByArtist(paintings []domain.Painting, artistID int) []domain.Painting {
	if artistID == 0 {
		return paintings
	}
	out := make([]domain.Painting, 0, len(paintings))
	for _, p := range paintings {
		if p.Artist != nil && p.Artist.ArtistID == artistID {
			out = append(out, p)
		}
	}
	return out
}

// ByIDs keeps the paintings whose identity appears in ids, preserving list
// order. The genres view uses it to intersect the full painting list with
// the id set returned by the paintings-by-genre endpoint.
func ByIDs(paintings []domain.Painting, ids []int) []domain.Painting {
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]domain.Painting, 0, len(ids))
	for _, p := range paintings {
		if want[p.PaintingID] {
			out = append(out, p)
		}
	}
	return out
}
