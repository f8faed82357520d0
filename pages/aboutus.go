package pages

import (
	"github.com/HeyGarrison/cakeelizabethdotcom/content"
	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
	"github.com/HeyGarrison/cakeelizabethdotcom/vdom"
)

// AboutUsPage tells the bakery's story. Story groups alternate text and
// pictures; pictures after the first group load lazily.
type AboutUsPage struct {
	runtime.ComponentBase
	Deps Deps

	doc document[content.AboutUs]
}

func (c *AboutUsPage) OnMount() {
	c.doc.load(c.Deps.Store, content.SlugAboutUs)
}

// Title returns the page title.
func (c *AboutUsPage) Title() string {
	return c.doc.data.Title
}

func (c *AboutUsPage) Render(r runtime.Renderer) *vdom.VNode {
	if c.doc.err != nil {
		return c.doc.failed()
	}

	groups := make([]*vdom.VNode, 0, len(c.doc.data.Stories))
	for i, story := range c.doc.data.Stories {
		imgs := make([]*vdom.VNode, 0, len(story.Images))
		for _, img := range story.Images {
			attrs := map[string]any{}
			if i > 0 {
				attrs["loading"] = "lazy"
			}
			imgs = append(imgs, vdom.Image(img.Src, img.Alt, attrs))
		}

		text := vdom.Div(map[string]any{"class": "story-text"}, paragraphs(story.Text, nil)...)
		pictures := vdom.Div(map[string]any{"class": "story-images"}, imgs...)

		class := "story-group"
		if i%2 == 1 {
			class += " story-group-reverse"
		}
		groups = append(groups, vdom.Div(map[string]any{"class": class}, text, pictures))
	}

	children := append([]*vdom.VNode{vdom.Heading(1, c.doc.data.Title, nil)}, groups...)
	return vdom.Div(map[string]any{"class": "page page-about-us"}, children...)
}
