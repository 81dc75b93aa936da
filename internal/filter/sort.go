package filter

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/akolenda/galleria/internal/domain"
)

// SortField selects the single active sort key for a painting list.
type SortField string

const (
	SortArtistName  SortField = "artistName"
	SortTitle       SortField = "title"
	SortGalleryName SortField = "galleryName"
	SortYearOfWork  SortField = "yearOfWork"
)

// ParseSortField maps a request value to a SortField, defaulting to year.
func ParseSortField(s string) SortField {
	switch SortField(s) {
	case SortArtistName, SortTitle, SortGalleryName:
		return SortField(s)
	default:
		return SortYearOfWork
	}
}

// Sort returns a new slice ordered by the given field. String keys use
// locale-aware collation, so "alpha" sorts before "Beta". Paintings missing
// the sort field order by the empty string or zero rather than being
// dropped, and ties keep their original relative order.
func Sort(paintings []domain.Painting, field SortField) []domain.Painting {
	out := make([]domain.Painting, len(paintings))
	copy(out, paintings)

	if field == SortYearOfWork {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].YearOfWork < out[j].YearOfWork
		})
		return out
	}

	// Collators carry internal buffers, so each sort gets its own.
	c := collate.New(language.English)
	key := func(p domain.Painting) string {
		switch field {
		case SortArtistName:
			if p.Artist == nil {
				return ""
			}
			return p.Artist.SortName()
		case SortGalleryName:
			return p.GalleryName()
		default:
			return p.Title
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(key(out[i]), key(out[j])) < 0
	})
	return out
}
