package pages

import (
	"strconv"

	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/locale"
	"github.com/HeyGarrison/cakeelizabethdotcom/router"
	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
	"github.com/HeyGarrison/cakeelizabethdotcom/vdom"
)

// Shell is the stable root component. It renders the site header and
// footer and swaps the page in between when the route changes; the header
// and footer are never remounted.
type Shell struct {
	runtime.ComponentBase

	deps    Deps
	page    runtime.Component
	pageKey string
}

// NewShell creates a shell with no page.
func NewShell(deps Deps) *Shell {
	return &Shell{deps: deps}
}

// SetPage swaps the current page. key identifies the page instance: the
// same key keeps the page (and everything it rendered) mounted. A mounted
// shell re-renders.
func (s *Shell) SetPage(page runtime.Component, key string) {
	s.page = page
	s.pageKey = key
	if s.GetRenderer() != nil {
		s.StateHasChanged()
	}
}

// Page returns the current page.
func (s *Shell) Page() runtime.Component {
	return s.page
}

// Title returns the document title for the current page.
func (s *Shell) Title() string {
	const site = "Cake Elizabeth"
	if t, ok := s.page.(interface{ Title() string }); ok && t.Title() != "" && t.Title() != site {
		return t.Title() + " | " + site
	}
	return site
}

type navItem struct {
	path  string
	label string
}

// Render implements runtime.Component.
func (s *Shell) Render(r runtime.Renderer) *vdom.VNode {
	current := r.Location().Path

	items := []navItem{
		{PathHome, s.deps.t(locale.NavHome)},
		{PathAboutUs, s.deps.t(locale.NavAboutUs)},
		{PathCakePricingFlavors, s.deps.t(locale.NavPricing)},
		{PathContact, s.deps.t(locale.NavContact)},
	}
	links := make([]*vdom.VNode, 0, len(items))
	for _, item := range items {
		attrs := map[string]any{"class": "nav-link"}
		if item.path == current {
			attrs["class"] = "nav-link nav-link-active"
			attrs["aria-current"] = "page"
		}
		links = append(links, vdom.Element("li", nil,
			router.Link(r, location.New(item.path, nil), router.Push, attrs, vdom.Text(item.label)),
		))
	}

	var body *vdom.VNode
	if s.page != nil {
		body = r.RenderChild("page:"+s.pageKey, s.page)
	}

	year := strconv.Itoa(s.deps.now().Year())
	return vdom.Div(map[string]any{"class": "site"},
		vdom.Element("header", map[string]any{"class": "site-header"},
			vdom.Element("nav", map[string]any{"class": "site-nav"},
				vdom.Element("ul", nil, links...),
			),
		),
		vdom.Element("main", map[string]any{"class": "site-main"}, body),
		vdom.Element("footer", map[string]any{"class": "site-footer"},
			vdom.Paragraph(s.deps.t(locale.Copyright, map[string]any{"Year": year}), nil),
		),
	)
}
