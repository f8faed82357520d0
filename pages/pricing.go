package pages

import (
	"github.com/HeyGarrison/cakeelizabethdotcom/content"
	"github.com/HeyGarrison/cakeelizabethdotcom/locale"
	"github.com/HeyGarrison/cakeelizabethdotcom/overlay"
	"github.com/HeyGarrison/cakeelizabethdotcom/router"
	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
	"github.com/HeyGarrison/cakeelizabethdotcom/vdom"
)

// overlayKey is the RenderChild key of the image overlay on the pricing page.
const overlayKey = "cake-pricing-flavors/overlay"

// CakePricingFlavorsPage lists prices and flavors and shows the photo
// gallery. Each thumbnail opens the image overlay on its photo.
type CakePricingFlavorsPage struct {
	runtime.ComponentBase
	Deps Deps

	doc    document[content.Pricing]
	images []overlay.Image
}

func (c *CakePricingFlavorsPage) OnMount() {
	c.doc.load(c.Deps.Store, content.SlugCakePricingFlavors)
	c.images = make([]overlay.Image, len(c.doc.data.Gallery))
	for i, img := range c.doc.data.Gallery {
		c.images[i] = overlay.Image{Src: img.Src, Alt: img.Alt}
	}
}

// Title returns the page title.
func (c *CakePricingFlavorsPage) Title() string {
	return c.doc.data.Title
}

func (c *CakePricingFlavorsPage) Render(r runtime.Renderer) *vdom.VNode {
	if c.doc.err != nil {
		return c.doc.failed()
	}
	data := c.doc.data

	var labels overlay.Labels
	if c.Deps.Text != nil {
		labels = c.Deps.Text.OverlayLabels()
	}

	return vdom.Div(map[string]any{"class": "page page-cake-pricing-flavors"},
		vdom.Heading(1, data.Title, nil),
		vdom.Paragraph(data.Intro, nil),
		c.prices(data.Prices),
		c.flavors(data.Flavors),
		c.gallery(r),
		r.RenderChild(overlayKey, &overlay.ImageCarouselOverlay{
			Images: c.images,
			Labels: labels,
			Keys:   c.Deps.Keys,
		}),
	)
}

func (c *CakePricingFlavorsPage) prices(prices []content.Price) *vdom.VNode {
	rows := make([]*vdom.VNode, 0, len(prices))
	for _, p := range prices {
		rows = append(rows, vdom.Element("tr", nil,
			vdom.NewVNode("td", nil, nil, p.Size),
			vdom.NewVNode("td", nil, nil, p.Serves),
			vdom.NewVNode("td", map[string]any{"class": "price"}, nil, p.Amount),
		))
	}
	return vdom.Element("section", map[string]any{"class": "prices"},
		vdom.Heading(2, c.Deps.t(locale.PricesHeading), nil),
		vdom.Element("table", nil, vdom.Element("tbody", nil, rows...)),
	)
}

func (c *CakePricingFlavorsPage) flavors(flavors []content.Flavor) *vdom.VNode {
	items := make([]*vdom.VNode, 0, len(flavors))
	for _, f := range flavors {
		items = append(items, vdom.Element("li", nil,
			vdom.NewVNode("strong", nil, nil, f.Name),
			vdom.Span(" "+f.Description, nil),
		))
	}
	return vdom.Element("section", map[string]any{"class": "flavors"},
		vdom.Heading(2, c.Deps.t(locale.FlavorsHeading), nil),
		vdom.Element("ul", nil, items...),
	)
}

// gallery renders the thumbnails. Opening pushes a history entry so Back
// closes the overlay; moving inside the overlay does not.
func (c *CakePricingFlavorsPage) gallery(r runtime.Renderer) *vdom.VNode {
	loc := r.Location()
	thumbs := make([]*vdom.VNode, 0, len(c.images))
	for i, img := range c.images {
		label := c.Deps.t(locale.GalleryOpen, map[string]any{"Index": i + 1, "Count": len(c.images)})
		thumbs = append(thumbs, router.Link(r, overlay.ImageCarousel.Open(loc, i), router.Push,
			map[string]any{"class": "gallery-thumb", "aria-label": label},
			vdom.Image(img.Src, img.Alt, map[string]any{"loading": "lazy"}),
		))
	}
	return vdom.Element("section", map[string]any{"class": "gallery"},
		vdom.Heading(2, c.Deps.t(locale.GalleryHeading), nil),
		vdom.Div(map[string]any{"class": "gallery-grid"}, thumbs...),
	)
}
