package overlay

import (
	"github.com/HeyGarrison/cakeelizabethdotcom/carousel"
	"github.com/HeyGarrison/cakeelizabethdotcom/events"
	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/router"
	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
	"github.com/HeyGarrison/cakeelizabethdotcom/vdom"
)

// carouselKey is the RenderChild key of the carousel inside the overlay.
const carouselKey = "image-carousel-overlay/carousel"

// Labels are the accessible names of the overlay controls.
type Labels struct {
	Dialog string
	Close  string
	Prev   string
	Next   string
}

// DefaultLabels are used for any empty field of ImageCarouselOverlay.Labels.
var DefaultLabels = Labels{
	Dialog: "Image gallery",
	Close:  "Close",
	Prev:   "Previous image",
	Next:   "Next image",
}

func (l Labels) withDefaults() Labels {
	if l.Dialog == "" {
		l.Dialog = DefaultLabels.Dialog
	}
	if l.Close == "" {
		l.Close = DefaultLabels.Close
	}
	if l.Prev == "" {
		l.Prev = DefaultLabels.Prev
	}
	if l.Next == "" {
		l.Next = DefaultLabels.Next
	}
	return l
}

// ImageCarouselOverlay is the modal image viewer. The host page only passes
// Images; whether the overlay is open, and on which slide, is read from the
// current location on every render.
type ImageCarouselOverlay struct {
	runtime.ComponentBase

	// --- PROPS ---

	Images []Image
	Labels Labels

	// Keys is the global key-event source. Nil disables keyboard control
	// (server-side rendering).
	Keys events.KeySource

	// --- INTERNAL STATE ---

	keyboard keyboard
}

// ApplyProps copies props from a freshly built overlay; the keyboard
// binding stays with this instance.
func (c *ImageCarouselOverlay) ApplyProps(src runtime.Component) {
	if s, ok := src.(*ImageCarouselOverlay); ok {
		c.Images = s.Images
		c.Labels = s.Labels
		c.Keys = s.Keys
	}
}

// OnUnmount detaches the key listener.
func (c *ImageCarouselOverlay) OnUnmount() {
	c.keyboard.release()
}

// state derives the overlay state for loc.
func (c *ImageCarouselOverlay) state(loc location.Location) (State, bool) {
	st := DeriveState(loc, ImageCarousel, len(c.Images))
	return st, st.Open && len(c.Images) > 0
}

func (c *ImageCarouselOverlay) transitions(loc location.Location) Transitions {
	st, _ := c.state(loc)
	return ComputeTransitions(loc, ImageCarousel, st.SelectedIndex)
}

// Render implements runtime.Component. A closed overlay, or one without
// images, renders nothing and holds no listener.
func (c *ImageCarouselOverlay) Render(r runtime.Renderer) *vdom.VNode {
	loc := r.Location()
	st, open := c.state(loc)

	c.keyboard.sync(c.Keys, open, r, func() Transitions {
		return c.transitions(r.Location())
	})
	if !open {
		return nil
	}

	routes := ComputeTransitions(loc, ImageCarousel, st.SelectedIndex)
	labels := c.Labels.withDefaults()

	return vdom.Div(map[string]any{
		"class":      "image-carousel-overlay",
		"role":       "dialog",
		"aria-modal": "true",
		"aria-label": labels.Dialog,
	},
		controlButton(r, "image-carousel-close", routes.Close, labels.Close, "✕"),
		controlButton(r, "image-carousel-prev", routes.Prev, labels.Prev, "←"),
		controlButton(r, "image-carousel-next", routes.Next, labels.Next, "→"),
		vdom.Div(map[string]any{"class": "image-carousel-container"},
			r.RenderChild(carouselKey, &carousel.Carousel[Image]{
				Index: st.SelectedIndex,
				Items: c.Images,
				OnIndexChange: func(i int) {
					replace(r, ImageCarousel.Jump(r.Location(), i))
				},
				Slide: func(img Image, pos carousel.Position) *vdom.VNode {
					return slide(r, routes.Close, img, pos)
				},
				Label: labels.Dialog,
			}),
		),
	)
}

// controlButton renders one overlay control as a replace link.
func controlButton(r runtime.Renderer, class string, to location.Location, label, icon string) *vdom.VNode {
	return vdom.Div(map[string]any{"class": class},
		router.Link(r, to, router.Replace, map[string]any{
			"class":      "image-carousel-control",
			"aria-label": label,
		}, vdom.Span(icon, map[string]any{"aria-hidden": "true"})),
	)
}

// slide renders one carousel item. Only the active slide and its neighbours
// load their image. The active slide sits on a full-screen link that closes
// the overlay when the backdrop is clicked.
func slide(r runtime.Renderer, closeTo location.Location, img Image, pos carousel.Position) *vdom.VNode {
	var backdrop *vdom.VNode
	if pos.Active {
		backdrop = router.Link(r, closeTo, router.Replace, map[string]any{
			"class":       "image-carousel-backdrop",
			"tabindex":    "-1",
			"aria-hidden": "true",
		})
	}

	var picture *vdom.VNode
	if pos.Near() {
		picture = vdom.Image(img.Src, img.Alt, map[string]any{"loading": "lazy"})
	}

	return vdom.Div(map[string]any{"class": "image-carousel-slide"},
		backdrop,
		vdom.Div(map[string]any{"class": "image-carousel-frame", "data-src": img.Src}, picture),
	)
}
