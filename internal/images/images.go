// Package images implements the painting image path convention: a
// painting's integer file name, zero-padded to six digits, addresses a
// square thumbnail rendition and a full rendition under a fixed prefix.
package images

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/url"
)

// Variant selects one of the two image renditions.
type Variant string

const (
	Square Variant = "square"
	Full   Variant = "full"
)

const pathPrefix = "/art-images/paintings"

// ParseVariant validates a request path segment as a Variant.
func ParseVariant(s string) (Variant, bool) {
	switch Variant(s) {
	case Square, Full:
		return Variant(s), true
	}
	return "", false
}

// Other returns the alternate rendition, used as the first fallback when an
// image fails to load.
func (v Variant) Other() Variant {
	if v == Square {
		return Full
	}
	return Square
}

// FileName formats a painting image file name as its zero-padded six-digit
// form with the fixed extension.
func FileName(imageFileName int) string {
	return fmt.Sprintf("%06d.jpg", imageFileName)
}

// URL returns the relative path of one rendition of a painting image.
func URL(imageFileName int, v Variant) string {
	return fmt.Sprintf("%s/%s/%s", pathPrefix, v, FileName(imageFileName))
}

// PlaceholderSVG builds the generated placeholder graphic shown when both
// renditions are unavailable.
func PlaceholderSVG(width, height int, text string) string {
	if text == "" {
		text = "No Image Available"
	}
	return fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
  <rect width="100%%" height="100%%" fill="#f8f8f8"/>
  <rect width="100%%" height="100%%" fill="#e0e0e0" opacity="0.5"/>
  <text x="50%%" y="50%%" font-family="sans-serif" font-size="16" text-anchor="middle" dominant-baseline="middle" fill="#666">%s</text>
</svg>`, width, height, template.HTMLEscapeString(text))
}

// PlaceholderDataURL returns the placeholder as an inlineable data URL.
func PlaceholderDataURL(width, height int, text string) string {
	return "data:image/svg+xml;charset=UTF-8," + url.PathEscape(PlaceholderSVG(width, height, text))
}

// Resolver locates painting images in a local directory laid out as
// square/NNNNNN.jpg and full/NNNNNN.jpg.
type Resolver struct {
	fsys fs.FS
}

func NewResolver(fsys fs.FS) *Resolver {
	return &Resolver{fsys: fsys}
}

// Resolve returns the path within the image FS for the requested rendition,
// falling back to the alternate rendition when the requested one is
// missing. ok is false when neither rendition exists, in which case the
// caller serves the placeholder.
func (r *Resolver) Resolve(v Variant, file string) (path string, ok bool) {
	for _, candidate := range []Variant{v, v.Other()} {
		p := fmt.Sprintf("%s/%s", candidate, file)
		if info, err := fs.Stat(r.fsys, p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// Open opens the resolved image file.
func (r *Resolver) Open(path string) (fs.File, error) {
	return r.fsys.Open(path)
}
