package pages

import (
	"github.com/HeyGarrison/cakeelizabethdotcom/content"
	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/locale"
	"github.com/HeyGarrison/cakeelizabethdotcom/router"
	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
	"github.com/HeyGarrison/cakeelizabethdotcom/vdom"
)

// HomePage is the landing page.
type HomePage struct {
	runtime.ComponentBase
	Deps Deps

	doc document[content.Home]
}

func (c *HomePage) OnMount() {
	c.doc.load(c.Deps.Store, content.SlugHome)
}

// Title returns the page title.
func (c *HomePage) Title() string {
	return c.doc.data.Title
}

func (c *HomePage) Render(r runtime.Renderer) *vdom.VNode {
	if c.doc.err != nil {
		return c.doc.failed()
	}
	home := c.doc.data

	var hero *vdom.VNode
	if home.Hero.Src != "" {
		hero = vdom.Image(home.Hero.Src, home.Hero.Alt, map[string]any{"class": "home-hero"})
	}

	return vdom.Div(map[string]any{"class": "page page-home"},
		hero,
		vdom.Heading(1, home.Title, nil),
		vdom.Paragraph(home.Tagline, map[string]any{"class": "home-tagline"}),
		vdom.Paragraph(home.Intro, nil),
		router.Link(r, location.New(PathCakePricingFlavors, nil), router.Push,
			map[string]any{"class": "cta"}, vdom.Text(c.Deps.t(locale.NavPricing))),
	)
}
