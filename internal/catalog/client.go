// Package catalog is the read-only client for the upstream art catalog API.
// Every response is normalized at this boundary so the rest of the
// application never deals with optional-field fallbacks.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"

	"github.com/akolenda/galleria/internal/domain"
	"github.com/akolenda/galleria/internal/metrics"
)

// UnknownGallery is the display name substituted when a painting's embedded
// gallery carries no usable name.
const UnknownGallery = "Unknown Gallery"

type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a catalog client. Requests are throttled to rps calls
// per second against the upstream API.
func NewClient(baseURL string, rps float64) *Client {
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to acquire rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.UpstreamFetchDuration.WithLabelValues(path, "error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("failed to call catalog API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.UpstreamFetchDuration.WithLabelValues(path, "error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("catalog API returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		metrics.UpstreamFetchDuration.WithLabelValues(path, "error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}

	metrics.UpstreamFetchDuration.WithLabelValues(path, "ok").Observe(time.Since(start).Seconds())
	return nil
}

// Artists returns all artists, sorted by last then first name. Records
// missing either name part are dropped.
func (c *Client) Artists(ctx context.Context) ([]domain.Artist, error) {
	var artists []domain.Artist
	if err := c.getJSON(ctx, "/api/artists", &artists); err != nil {
		return nil, err
	}

	kept := artists[:0]
	for _, a := range artists {
		if a.FirstName == "" || a.LastName == "" {
			continue
		}
		kept = append(kept, a)
	}

	col := collate.New(language.English)
	sort.SliceStable(kept, func(i, j int) bool {
		return col.CompareString(kept[i].SortName(), kept[j].SortName()) < 0
	})
	return kept, nil
}

// Galleries returns all galleries, sorted by name.
func (c *Client) Galleries(ctx context.Context) ([]domain.Gallery, error) {
	var galleries []domain.Gallery
	if err := c.getJSON(ctx, "/api/galleries", &galleries); err != nil {
		return nil, err
	}

	col := collate.New(language.English)
	sort.SliceStable(galleries, func(i, j int) bool {
		return col.CompareString(galleries[i].GalleryName, galleries[j].GalleryName) < 0
	})
	return galleries, nil
}

// Genres returns all genres, sorted by name.
func (c *Client) Genres(ctx context.Context) ([]domain.Genre, error) {
	var genres []domain.Genre
	if err := c.getJSON(ctx, "/api/genres", &genres); err != nil {
		return nil, err
	}

	col := collate.New(language.English)
	sort.SliceStable(genres, func(i, j int) bool {
		return col.CompareString(genres[i].GenreName, genres[j].GenreName) < 0
	})
	return genres, nil
}

// Paintings returns the full painting list, normalized.
func (c *Client) Paintings(ctx context.Context) ([]domain.Painting, error) {
	var paintings []domain.Painting
	if err := c.getJSON(ctx, "/api/paintings", &paintings); err != nil {
		return nil, err
	}
	return normalizePaintings(paintings), nil
}

// PaintingsByGallery returns the normalized paintings held by one gallery.
func (c *Client) PaintingsByGallery(ctx context.Context, galleryID int) ([]domain.Painting, error) {
	var paintings []domain.Painting
	if err := c.getJSON(ctx, fmt.Sprintf("/api/paintings/galleries/%d", galleryID), &paintings); err != nil {
		return nil, err
	}
	return normalizePaintings(paintings), nil
}

// PaintingIDsByGenre returns the identities of the paintings in a genre.
func (c *Client) PaintingIDsByGenre(ctx context.Context, genreID int) ([]int, error) {
	var refs []domain.GenreRef
	if err := c.getJSON(ctx, fmt.Sprintf("/api/paintings/genre/%d", genreID), &refs); err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.PaintingID)
	}
	return ids, nil
}

// normalizePaintings is the single shape-normalization step at the fetch
// boundary: it fills the gallery display name, aliases the image file name,
// and drops records missing their artist or gallery entirely.
func normalizePaintings(paintings []domain.Painting) []domain.Painting {
	out := make([]domain.Painting, 0, len(paintings))
	for _, p := range paintings {
		if p.Artist == nil || p.Gallery == nil {
			continue
		}
		if p.Gallery.Name == "" {
			if p.Gallery.GalleryName != "" {
				p.Gallery.Name = p.Gallery.GalleryName
			} else {
				p.Gallery.Name = UnknownGallery
			}
		}
		if p.FileName == 0 {
			p.FileName = p.ImageFileName
		}
		out = append(out, p)
	}
	return out
}
