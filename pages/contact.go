package pages

import (
	"github.com/HeyGarrison/cakeelizabethdotcom/content"
	"github.com/HeyGarrison/cakeelizabethdotcom/locale"
	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
	"github.com/HeyGarrison/cakeelizabethdotcom/vdom"
)

// ContactPage shows the contact form and the bakery's address. The form is
// markup only and has no submit target.
type ContactPage struct {
	runtime.ComponentBase
	Deps Deps

	doc document[content.Contact]
}

func (c *ContactPage) OnMount() {
	c.doc.load(c.Deps.Store, content.SlugContact)
}

// Title returns the page title.
func (c *ContactPage) Title() string {
	return c.doc.data.Title
}

func (c *ContactPage) Render(r runtime.Renderer) *vdom.VNode {
	if c.doc.err != nil {
		return c.doc.failed()
	}
	data := c.doc.data

	return vdom.Div(map[string]any{"class": "page page-contact"},
		vdom.Heading(1, data.Title, nil),
		vdom.Div(map[string]any{"class": "page-split"},
			c.form(data.Form),
			contactBlock(data.Details),
		),
	)
}

func (c *ContactPage) form(labels content.ContactForm) *vdom.VNode {
	field := func(name, label, kind string, required bool) *vdom.VNode {
		id := "contact-" + name
		attrs := map[string]any{"id": id, "name": name, "required": required}
		var input *vdom.VNode
		if kind == "textarea" {
			input = vdom.TextArea(attrs)
		} else {
			attrs["type"] = kind
			input = vdom.InputText(attrs)
		}
		return vdom.Div(map[string]any{"class": "form-field"},
			vdom.Label(label, map[string]any{"for": id}),
			input,
		)
	}

	return vdom.Element("form", map[string]any{"class": "contact-form", "novalidate": true},
		field("name", labels.Name, "text", true),
		field("email", labels.Email, "email", true),
		field("phoneNumber", labels.PhoneNumber, "tel", false),
		field("subject", labels.Subject, "text", false),
		field("message", labels.Message, "textarea", true),
		vdom.Paragraph(c.Deps.t(locale.ContactFormNote), map[string]any{"class": "form-note"}),
		vdom.Button(labels.Send, map[string]any{"type": "submit", "disabled": true}),
	)
}

func contactBlock(d content.ContactBlock) *vdom.VNode {
	return vdom.Element("address", map[string]any{"class": "contact-block"},
		vdom.Heading(2, d.Name, nil),
		vdom.Div(nil,
			vdom.Paragraph(d.Address.Street, nil),
			vdom.Paragraph(d.Address.CityState, nil),
			vdom.Paragraph(d.Address.Zip, nil),
		),
		vdom.Div(nil, vdom.Anchor("tel:"+d.Phone.Literal, nil, vdom.Text(d.Phone.Display))),
		vdom.Div(nil, vdom.Anchor(d.Web.Literal, nil, vdom.Text(d.Web.Display))),
	)
}
