// Package pages holds the site's page components and its route table.
package pages

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/HeyGarrison/cakeelizabethdotcom/console"
	"github.com/HeyGarrison/cakeelizabethdotcom/content"
	"github.com/HeyGarrison/cakeelizabethdotcom/events"
	"github.com/HeyGarrison/cakeelizabethdotcom/locale"
	"github.com/HeyGarrison/cakeelizabethdotcom/vdom"
)

// Deps are the services pages render with.
type Deps struct {
	Store content.Store
	Text  *locale.Localizer

	// Keys is the global key-event source handed to overlays. Nil on the
	// server.
	Keys events.KeySource

	// Now defaults to time.Now.
	Now func() time.Time
}

func (d Deps) t(id string, data ...map[string]any) string {
	if d.Text == nil {
		return id
	}
	return d.Text.T(id, data...)
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// document is the content of one page, loaded when the page mounts.
type document[T any] struct {
	data T
	err  error
}

func (d *document[T]) load(store content.Store, slug string) {
	if store == nil {
		d.err = content.ErrNotFound
		return
	}
	d.data, d.err = content.Load[T](context.Background(), store, slug)
	if d.err != nil {
		console.Error("Loading content for", slug, "failed:", d.err.Error())
	}
}

// failed renders the placeholder shown when a page's content is missing.
func (d *document[T]) failed() *vdom.VNode {
	msg := "This page is temporarily unavailable."
	if errors.Is(d.err, content.ErrNotFound) {
		msg = "This page has no content yet."
	}
	return vdom.Div(map[string]any{"class": "content-error", "role": "alert"},
		vdom.Paragraph(msg, nil),
	)
}

// paragraphs splits text on blank lines.
func paragraphs(text string, attrs map[string]any) []*vdom.VNode {
	var out []*vdom.VNode
	for _, block := range splitBlocks(text) {
		out = append(out, vdom.Paragraph(block, attrs))
	}
	return out
}

func splitBlocks(text string) []string {
	var blocks []string
	for _, b := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		b = strings.Join(strings.Fields(b), " ")
		if b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}
