// Package favorites holds the user's favorited galleries, artists, and
// paintings: three independent identity-deduplicated lists that survive
// restarts through a flat key-value store.
package favorites

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/akolenda/galleria/internal/domain"
)

// Storage keys, one per entity kind. Each key maps to a single JSON array
// holding full entity snapshots.
const (
	KindGalleries = "favoriteGalleries"
	KindArtists   = "favoriteArtists"
	KindPaintings = "favoritePaintings"
)

// Store is the subset of store.FavoriteStore that the container requires.
type Store interface {
	Load(ctx context.Context, kind string) ([]byte, error)
	Save(ctx context.Context, kind string, payload []byte) error
}

// Set is an ordered list of favorited entities of one kind, deduplicated by
// an identity extractor. Insertion order is preserved for display but
// carries no meaning. Every mutation is written through to the store for
// this kind only; a failed write is logged and otherwise ignored.
type Set[T any] struct {
	kind   string
	idOf   func(T) int
	store  Store
	logger *slog.Logger

	mu    sync.Mutex
	items []T
}

// NewSet creates a set for one entity kind, seeded synchronously from the
// store. A missing or unparseable payload seeds an empty list; it is never
// an error.
func NewSet[T any](ctx context.Context, kind string, idOf func(T) int, st Store, logger *slog.Logger) *Set[T] {
	s := &Set[T]{kind: kind, idOf: idOf, store: st, logger: logger}

	payload, err := st.Load(ctx, kind)
	if err != nil {
		logger.Error("failed to load favorites", "kind", kind, "error", err)
		return s
	}
	if len(payload) == 0 {
		return s
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		// Corrupt saved state reads as "no favorites".
		logger.Warn("discarding unparseable favorites payload", "kind", kind, "error", err)
		return s
	}
	s.items = items
	return s
}

// IsFavorite reports whether an entity with the given identity is present.
func (s *Set[T]) IsFavorite(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if s.idOf(item) == id {
			return true
		}
	}
	return false
}

// Toggle removes the entity if its identity is already present, otherwise
// appends it. Entities without an identity are silently ignored. The list
// for this kind is persisted after either outcome.
func (s *Set[T]) Toggle(ctx context.Context, entity T) {
	id := s.idOf(entity)
	if id == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	for i, item := range s.items {
		if s.idOf(item) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		s.items = append(s.items, entity)
	}

	s.persistLocked(ctx)
}

// Items returns a copy of the list in insertion order.
func (s *Set[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Set[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Set[T]) persistLocked(ctx context.Context) {
	payload, err := json.Marshal(s.items)
	if err != nil {
		s.logger.Error("failed to encode favorites", "kind", s.kind, "error", err)
		return
	}
	if err := s.store.Save(ctx, s.kind, payload); err != nil {
		s.logger.Error("failed to persist favorites", "kind", s.kind, "error", err)
	}
}

// Favorites bundles the three per-kind sets. It is constructed once at
// startup and shared by reference with every view; there is no teardown.
// No operation spans more than one kind: removing a mixed selection is a
// series of independent toggles.
type Favorites struct {
	Galleries *Set[domain.Gallery]
	Artists   *Set[domain.Artist]
	Paintings *Set[domain.Painting]
}

func New(ctx context.Context, st Store, logger *slog.Logger) *Favorites {
	return &Favorites{
		Galleries: NewSet(ctx, KindGalleries, func(g domain.Gallery) int { return g.GalleryID }, st, logger),
		Artists:   NewSet(ctx, KindArtists, func(a domain.Artist) int { return a.ArtistID }, st, logger),
		Paintings: NewSet(ctx, KindPaintings, func(p domain.Painting) int { return p.PaintingID }, st, logger),
	}
}
