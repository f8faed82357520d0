// Package carousel is a slide carousel widget. It is told which slide is
// active and reports the slides the user picks; it never decides the index
// on its own, so whoever owns the index (for the image overlay, the URL)
// stays the single source of truth.
package carousel

import (
	"strconv"

	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
	"github.com/HeyGarrison/cakeelizabethdotcom/vdom"
)

// Position tells a slide renderer where a slide sits relative to the active one.
type Position struct {
	Active bool
	Prev   bool
	Next   bool
}

// Near reports whether the slide is the active one or one of its neighbours.
func (p Position) Near() bool {
	return p.Active || p.Prev || p.Next
}

// Carousel renders Items, marking Items[Index] active. Neighbours wrap
// around, so with three or more items the first and last are adjacent.
type Carousel[T any] struct {
	runtime.ComponentBase

	// --- PROPS ---

	Index int
	Items []T

	// OnIndexChange is called with the slide index the user selects.
	OnIndexChange func(index int)

	// Slide renders one item. It is called for every item, with its position.
	Slide func(item T, pos Position) *vdom.VNode

	// Label is the accessible name of the slide region.
	Label string
}

// ApplyProps copies the props of a freshly built carousel into this instance.
func (c *Carousel[T]) ApplyProps(src runtime.Component) {
	if s, ok := src.(*Carousel[T]); ok {
		c.Index = s.Index
		c.Items = s.Items
		c.OnIndexChange = s.OnIndexChange
		c.Slide = s.Slide
		c.Label = s.Label
	}
}

// PositionOf returns the position of slide i for an active index among n items.
// An active index outside [0, n) makes no slide active.
func PositionOf(i, active, n int) Position {
	if n <= 0 || active < 0 || active >= n {
		return Position{}
	}
	return Position{
		Active: i == active,
		Prev:   n > 1 && i != active && i == (active-1+n)%n,
		Next:   n > 1 && i != active && i == (active+1)%n,
	}
}

// Render implements runtime.Component.
func (c *Carousel[T]) Render(r runtime.Renderer) *vdom.VNode {
	n := len(c.Items)
	slides := make([]*vdom.VNode, 0, n)
	dots := make([]*vdom.VNode, 0, n)

	for i, item := range c.Items {
		pos := PositionOf(i, c.Index, n)

		var content *vdom.VNode
		if c.Slide != nil {
			content = c.Slide(item, pos)
		}
		slides = append(slides, vdom.Div(map[string]any{
			"class":         slideClass(pos),
			"data-index":    i,
			"aria-hidden":   strconv.FormatBool(!pos.Active),
			"aria-roledesc": "slide",
		}, content))

		dots = append(dots, vdom.Button("", map[string]any{
			"class":        "carousel-dot",
			"type":         "button",
			"aria-label":   strconv.Itoa(i + 1),
			"aria-current": pos.Active,
			"onClick":      c.selectHandler(i),
		}))
	}

	return vdom.Div(map[string]any{"class": "carousel", "aria-label": c.Label},
		vdom.Div(map[string]any{"class": "carousel-track"}, slides...),
		vdom.Element("nav", map[string]any{"class": "carousel-dots"}, dots...),
	)
}

func (c *Carousel[T]) selectHandler(i int) func() {
	return func() {
		if c.OnIndexChange != nil && i != c.Index {
			c.OnIndexChange(i)
		}
	}
}

func slideClass(pos Position) string {
	switch {
	case pos.Active:
		return "carousel-slide carousel-slide-active"
	case pos.Prev:
		return "carousel-slide carousel-slide-prev"
	case pos.Next:
		return "carousel-slide carousel-slide-next"
	default:
		return "carousel-slide"
	}
}
