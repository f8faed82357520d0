package content

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

// contentFile is the document name inside each page directory.
const contentFile = "content.toml"

//go:embed defaults
var defaults embed.FS

// FSStore reads documents laid out as pages/<slug>/content.toml.
type FSStore struct {
	fsys fs.FS
}

var _ Store = (*FSStore)(nil)

// NewFSStore returns a store over fsys.
func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// Embedded returns the store holding the content compiled into the binary.
func Embedded() *FSStore {
	sub, err := fs.Sub(defaults, "defaults")
	if err != nil {
		panic(fmt.Sprintf("content: embedded defaults: %v", err))
	}
	return NewFSStore(sub)
}

// Get implements Store.
func (s *FSStore) Get(ctx context.Context, slug string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	if err := ValidateSlug(slug); err != nil {
		return Document{}, err
	}

	name := path.Join("pages", slug, contentFile)
	raw, err := fs.ReadFile(s.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return Document{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", name, err)
	}

	doc := Document{Slug: slug, Raw: raw}
	if info, err := fs.Stat(s.fsys, name); err == nil {
		doc.ModTime = info.ModTime()
	}
	return doc, nil
}

// List implements Store.
func (s *FSStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(s.fsys, "pages")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	var slugs []string
	for _, e := range entries {
		if !e.IsDir() || ValidateSlug(e.Name()) != nil {
			continue
		}
		if _, err := fs.Stat(s.fsys, path.Join("pages", e.Name(), contentFile)); err != nil {
			continue
		}
		slugs = append(slugs, e.Name())
	}
	sort.Strings(slugs)
	return slugs, nil
}
