package vdom

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML serializes a VNode tree as HTML. Event handlers are dropped;
// boolean attributes are emitted bare when true and omitted when false.
// Attributes are written in sorted order so output is stable.
func RenderHTML(w io.Writer, n *VNode) error {
	if n == nil {
		return nil
	}
	node, err := toHTMLNode(n)
	if err != nil {
		return err
	}
	return html.Render(w, node)
}

// RenderHTMLString is RenderHTML into a string.
func RenderHTMLString(n *VNode) (string, error) {
	var b strings.Builder
	if err := RenderHTML(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

func toHTMLNode(n *VNode) (*html.Node, error) {
	if n.Tag == "#text" {
		return &html.Node{Type: html.TextNode, Data: n.Content}, nil
	}
	if n.Tag == "" {
		return nil, fmt.Errorf("vdom: node without tag")
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     htmlAttributes(n.Attributes),
	}

	switch n.Tag {
	case "input", "textarea":
		// Content is the control's value.
		if n.Content != "" {
			if n.Tag == "input" {
				el.Attr = append(el.Attr, html.Attribute{Key: "value", Val: n.Content})
			} else {
				el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
			}
		}
		return el, nil
	}

	if n.Content != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		c, err := toHTMLNode(child)
		if err != nil {
			return nil, err
		}
		el.AppendChild(c)
	}
	return el, nil
}

func htmlAttributes(attrs map[string]any) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case nil:
		case bool:
			if v {
				out = append(out, html.Attribute{Key: k})
			}
		case string:
			out = append(out, html.Attribute{Key: k, Val: v})
		case int, int32, int64, float32, float64, uint, uint32, uint64:
			out = append(out, html.Attribute{Key: k, Val: fmt.Sprint(v)})
		case fmt.Stringer:
			out = append(out, html.Attribute{Key: k, Val: v.String()})
		default:
			// Handlers and other values have no HTML form.
		}
	}
	return out
}
