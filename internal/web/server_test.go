package web

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akolenda/galleria/internal/db"
	"github.com/akolenda/galleria/internal/domain"
	"github.com/akolenda/galleria/internal/favorites"
	"github.com/akolenda/galleria/internal/images"
	"github.com/akolenda/galleria/internal/store"
	"github.com/akolenda/galleria/internal/web/templates"
)

// stubCatalog is an in-memory catalogAPI for handler tests.
type stubCatalog struct {
	artists   []domain.Artist
	galleries []domain.Gallery
	genres    []domain.Genre
	paintings []domain.Painting
	genreIDs  map[int][]int
	err       error
}

func (s *stubCatalog) Artists(context.Context) ([]domain.Artist, error) {
	return s.artists, s.err
}

func (s *stubCatalog) Galleries(context.Context) ([]domain.Gallery, error) {
	return s.galleries, s.err
}

func (s *stubCatalog) Genres(context.Context) ([]domain.Genre, error) {
	return s.genres, s.err
}

func (s *stubCatalog) Paintings(context.Context) ([]domain.Painting, error) {
	return s.paintings, s.err
}

func (s *stubCatalog) PaintingsByGallery(_ context.Context, galleryID int) ([]domain.Painting, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.Painting
	for _, p := range s.paintings {
		if p.Gallery != nil && p.Gallery.GalleryID == galleryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubCatalog) PaintingIDsByGenre(_ context.Context, genreID int) ([]int, error) {
	return s.genreIDs[genreID], s.err
}

func testPaintings() []domain.Painting {
	return []domain.Painting{
		{
			PaintingID: 1, Title: "Sunrise", YearOfWork: 1872, FileName: 7,
			Artist:  &domain.Artist{ArtistID: 10, FirstName: "Claude", LastName: "Monet"},
			Gallery: &domain.PaintingGallery{GalleryID: 20, Name: "Musee d'Orsay"},
		},
		{
			PaintingID: 2, Title: "Moonrise", YearOfWork: 1890, FileName: 8,
			Artist:  &domain.Artist{ArtistID: 11, FirstName: "Mary", LastName: "Cassatt"},
			Gallery: &domain.PaintingGallery{GalleryID: 21, Name: "Uffizi"},
			Genre:   &domain.PaintingGenre{GenreID: 3, Name: "Nocturne"},
		},
	}
}

func newTestServer(t *testing.T, cat *stubCatalog) (*Server, *favorites.Favorites) {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "galleria.db"))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, database.Close()) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	favs := favorites.New(context.Background(), store.NewFavoriteStore(database), logger)
	resolver := images.NewResolver(fstest.MapFS{
		"full/000007.jpg": &fstest.MapFile{Data: []byte("jpeg bytes")},
	})

	return NewServer(cat, favs, resolver, templates.FS, logger), favs
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", target, nil))
	return rec
}

func postForm(t *testing.T, s *Server, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestLoginPageRenders(t *testing.T) {
	s, _ := newTestServer(t, &stubCatalog{})

	rec := get(t, s, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sign in")
}

func TestLoginPageRedirectsWhenSignedIn(t *testing.T) {
	s, _ := newTestServer(t, &stubCatalog{})

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "abc"})
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/galleries", rec.Header().Get("Location"))
}

func TestLoginSetsSessionCookie(t *testing.T) {
	s, _ := newTestServer(t, &stubCatalog{})

	rec := postForm(t, s, "/login", url.Values{"email": {"a@b.c"}, "password": {"x"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookie, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestPaintingsPageRendersGrid(t *testing.T) {
	s, _ := newTestServer(t, &stubCatalog{paintings: testPaintings()})

	rec := get(t, s, "/paintings")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sunrise")
	assert.Contains(t, rec.Body.String(), "Moonrise")
}

func TestPaintingsPageFiltersByTitle(t *testing.T) {
	s, _ := newTestServer(t, &stubCatalog{paintings: testPaintings()})

	rec := get(t, s, "/paintings?title_on=1&title=sun")
	body := rec.Body.String()
	assert.Contains(t, body, "Sunrise")
	assert.NotContains(t, body, "Moonrise")
}

func TestPaintingsPageExplicitEmptyState(t *testing.T) {
	s, _ := newTestServer(t, &stubCatalog{paintings: testPaintings()})

	rec := get(t, s, "/paintings?title_on=1&title=zebra")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No paintings found matching your criteria.")
}

func TestPaintingsPageSurfacesFetchError(t *testing.T) {
	s, _ := newTestServer(t, &stubCatalog{err: assert.AnError})

	rec := get(t, s, "/paintings")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to fetch paintings.")
}

func TestGalleriesPageSwallowsFetchError(t *testing.T) {
	s, _ := newTestServer(t, &stubCatalog{err: assert.AnError})

	rec := get(t, s, "/galleries")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No galleries available.")
}

func TestGalleryDetailNotFound(t *testing.T) {
	s, _ := newTestServer(t, &stubCatalog{})

	rec := get(t, s, "/galleries/99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenresPageEmptyStateForUnmatchedGenre(t *testing.T) {
	s, _ := newTestServer(t, &stubCatalog{
		paintings: testPaintings(),
		genres:    []domain.Genre{{GenreID: 3, GenreName: "Nocturne"}},
		genreIDs:  map[int][]int{},
	})

	rec := get(t, s, "/genres?genre=3")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No paintings found for this genre.")
}

func TestToggleFavoritePainting(t *testing.T) {
	s, favs := newTestServer(t, &stubCatalog{paintings: testPaintings()})

	rec := postForm(t, s, "/favorites/toggle", url.Values{"kind": {"painting"}, "id": {"1"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, favs.Paintings.IsFavorite(1))

	// Toggling again removes it.
	postForm(t, s, "/favorites/toggle", url.Values{"kind": {"painting"}, "id": {"1"}})
	assert.False(t, favs.Paintings.IsFavorite(1))
}

func TestToggleFavoriteRejectsBadKind(t *testing.T) {
	s, _ := newTestServer(t, &stubCatalog{})

	rec := postForm(t, s, "/favorites/toggle", url.Values{"kind": {"era"}, "id": {"1"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveSelectedFavorites(t *testing.T) {
	s, favs := newTestServer(t, &stubCatalog{paintings: testPaintings()})
	ctx := context.Background()

	favs.Paintings.Toggle(ctx, testPaintings()[0])
	favs.Paintings.Toggle(ctx, testPaintings()[1])
	favs.Artists.Toggle(ctx, domain.Artist{ArtistID: 10, FirstName: "Claude", LastName: "Monet"})

	rec := postForm(t, s, "/favorites/remove", url.Values{
		"paintings": {"1"},
		"artists":   {"10"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	assert.False(t, favs.Paintings.IsFavorite(1))
	assert.True(t, favs.Paintings.IsFavorite(2))
	assert.False(t, favs.Artists.IsFavorite(10))
}

func TestFavoritesPageListsSavedEntries(t *testing.T) {
	s, favs := newTestServer(t, &stubCatalog{})
	favs.Galleries.Toggle(context.Background(), domain.Gallery{GalleryID: 5, GalleryName: "Uffizi"})

	rec := get(t, s, "/favorites")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Uffizi")
}

func TestImageHandlerFallsBackAcrossVariants(t *testing.T) {
	s, _ := newTestServer(t, &stubCatalog{})

	// Only the full rendition exists; the square request serves it.
	rec := get(t, s, "/art-images/paintings/square/000007.jpg")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
}

func TestImageHandlerPlaceholderWhenMissing(t *testing.T) {
	s, _ := newTestServer(t, &stubCatalog{})

	rec := get(t, s, "/art-images/paintings/square/999999.jpg")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "No Image Available")
}

func TestImageHandlerRejectsBadVariant(t *testing.T) {
	s, _ := newTestServer(t, &stubCatalog{})

	rec := get(t, s, "/art-images/paintings/thumb/000007.jpg")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSecurityHeadersApplied(t *testing.T) {
	s, _ := newTestServer(t, &stubCatalog{})

	rec := get(t, s, "/")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
