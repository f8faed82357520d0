package pages

import (
	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/locale"
	"github.com/HeyGarrison/cakeelizabethdotcom/router"
	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
	"github.com/HeyGarrison/cakeelizabethdotcom/vdom"
)

// NotFoundPage is rendered for paths without a route.
type NotFoundPage struct {
	runtime.ComponentBase
	Deps Deps
}

// Title returns the page title.
func (c *NotFoundPage) Title() string {
	return c.Deps.t(locale.NotFoundTitle)
}

func (c *NotFoundPage) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "page page-not-found"},
		vdom.Heading(1, c.Title(), nil),
		vdom.Paragraph(c.Deps.t(locale.NotFoundBody, map[string]any{"Path": r.Location().Path}), nil),
		router.Link(r, location.New(PathHome, nil), router.Push, nil, vdom.Text(c.Deps.t(locale.NavHome))),
	)
}
