// Package content loads the per-page copy of the site. Each page has one
// TOML document addressed by its slug; a Store hands out the raw document
// and Load decodes it into the page's content type.
package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// ErrNotFound is returned when no document exists for a slug.
var ErrNotFound = errors.New("content not found")

// ErrInvalidSlug is returned for slugs that cannot name a page.
var ErrInvalidSlug = errors.New("invalid content slug")

// Document is the raw content of one page.
type Document struct {
	Slug    string
	Raw     []byte
	ModTime time.Time
}

// Store gives access to page documents.
type Store interface {
	// Get returns the document for slug, or an error wrapping ErrNotFound.
	Get(ctx context.Context, slug string) (Document, error)
	// List returns every slug in the store, sorted.
	List(ctx context.Context) ([]string, error)
}

// ValidateSlug checks that slug is a single lowercase path segment.
func ValidateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("%w: empty", ErrInvalidSlug)
	}
	for _, r := range slug {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
		}
	}
	return nil
}

// Decode parses doc into v. Keys in the document that v has no field for
// are logged, not rejected, so content can run ahead of the code.
func Decode(doc Document, v any) error {
	meta, err := toml.Decode(string(doc.Raw), v)
	if err != nil {
		return fmt.Errorf("decode content %q: %w", doc.Slug, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Warn("Ignoring unknown content keys", "slug", doc.Slug, "keys", strings.Join(keys, ","))
	}
	return nil
}

// Load fetches the document for slug and decodes it into a T.
func Load[T any](ctx context.Context, s Store, slug string) (T, error) {
	var out T
	doc, err := s.Get(ctx, slug)
	if err != nil {
		return out, err
	}
	if err := Decode(doc, &out); err != nil {
		return out, err
	}
	return out, nil
}
