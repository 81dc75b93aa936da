package domain

import "strings"

// Artist is a painter as returned by the upstream catalog API.
type Artist struct {
	ArtistID    int    `json:"artistId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Nationality string `json:"nationality"`
	Gender      string `json:"gender"`
	YearOfBirth int    `json:"yearOfBirth"`
	YearOfDeath *int   `json:"yearOfDeath"` // nil means living
	Details     string `json:"details"`
	ArtistLink  string `json:"artistLink"`
}

// FullName returns "First Last", tolerating either part being empty.
func (a Artist) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// SortName returns "Last First" for artist-name ordering.
func (a Artist) SortName() string {
	return strings.TrimSpace(a.LastName + " " + a.FirstName)
}

// Gallery is a museum or gallery as returned by the upstream catalog API.
type Gallery struct {
	GalleryID         int     `json:"galleryId"`
	GalleryName       string  `json:"galleryName"`
	GalleryNativeName string  `json:"galleryNativeName"`
	GalleryCity       string  `json:"galleryCity"`
	GalleryAddress    string  `json:"galleryAddress"`
	GalleryCountry    string  `json:"galleryCountry"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	GalleryWebSite    string  `json:"galleryWebSite"`
}

// Era groups genres into a broad art-history period.
type Era struct {
	EraID    int    `json:"eraId"`
	EraName  string `json:"eraName"`
	EraYears string `json:"eraYears"`
}

// Genre is a painting genre with its era.
type Genre struct {
	GenreID     int    `json:"genreId"`
	GenreName   string `json:"genreName"`
	Description string `json:"description"`
	WikiLink    string `json:"wikiLink"`
	Era         Era    `json:"Eras"`
}

// PaintingGallery is the gallery shape embedded in a painting record. The
// upstream API is inconsistent about which field carries the display name,
// so Name is filled in during normalization and is the only field that
// downstream sorting and grouping reads.
type PaintingGallery struct {
	GalleryID   int    `json:"galleryId"`
	Name        string `json:"name"`
	GalleryName string `json:"galleryName"`
	GalleryCity string `json:"galleryCity"`
}

// PaintingGenre is the genre shape embedded in a painting record.
type PaintingGenre struct {
	GenreID int    `json:"genreId"`
	Name    string `json:"name"`
}

// Painting is a catalog painting with its embedded artist, gallery, and
// optional genre.
type Painting struct {
	PaintingID    int              `json:"paintingId"`
	Title         string           `json:"title"`
	YearOfWork    int              `json:"yearOfWork"`
	Medium        string           `json:"medium"`
	Width         float64          `json:"width"`
	Height        float64          `json:"height"`
	Description   string           `json:"description"`
	Excerpt       string           `json:"excerpt"`
	CopyrightText string           `json:"copyrightText"`
	MuseumLink    string           `json:"museumLink"`
	WikiLink      string           `json:"wikiLink"`
	ImageFileName int              `json:"imageFileName"`
	FileName      int              `json:"fileName"`
	Artist        *Artist          `json:"Artists"`
	Gallery       *PaintingGallery `json:"Galleries"`
	Genre         *PaintingGenre   `json:"Genres"`
}

// ArtistName returns the embedded artist's full name, or "" when the record
// carries no artist.
func (p Painting) ArtistName() string {
	if p.Artist == nil {
		return ""
	}
	return p.Artist.FullName()
}

// GalleryName returns the normalized display name of the embedded gallery,
// or "" when the record carries no gallery.
func (p Painting) GalleryName() string {
	if p.Gallery == nil {
		return ""
	}
	return p.Gallery.Name
}

// GenreRef is the thin shape returned by the paintings-by-genre endpoint.
type GenreRef struct {
	PaintingID int `json:"paintingId"`
}
