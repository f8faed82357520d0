package vdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTMLString(t *testing.T) {
	clicked := false
	tree := Div(map[string]any{"class": "gallery", "data-count": 2},
		Heading(2, "Cakes & more", nil),
		Anchor("/x?a=1&b=2", map[string]any{"onClick": func() { clicked = true }},
			Image("/c.jpg", `"chocolate"`, map[string]any{"loading": "lazy"}),
		),
		nil,
		InputText(map[string]any{"required": true, "disabled": false, "name": "email"}),
	)

	out, err := RenderHTMLString(tree)
	require.NoError(t, err)

	assert.Equal(t,
		`<div class="gallery" data-count="2"><h2>Cakes &amp; more</h2>`+
			`<a href="/x?a=1&amp;b=2"><img alt="&#34;chocolate&#34;" loading="lazy" src="/c.jpg"/></a>`+
			`<input name="email" required="" type="text"/></div>`,
		out)
	assert.False(t, clicked)
}

func TestRenderHTML_NilTree(t *testing.T) {
	out, err := RenderHTMLString(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestNewVNode_DropsNilChildrenAndMovesOnClick(t *testing.T) {
	n := Div(map[string]any{"onClick": func() {}}, nil, Text("a"), nil)

	assert.Len(t, n.Children, 1)
	assert.NotNil(t, n.OnClick)
	assert.Nil(t, n.Attr("onClick"))
}

func TestFindAll(t *testing.T) {
	tree := Div(nil, Anchor("/a", nil), Div(nil, Anchor("/b", nil)))

	links := tree.FindAll(func(v *VNode) bool { return v.Tag == "a" })
	require.Len(t, links, 2)
	assert.Equal(t, "/b", links[1].Attr("href"))
}
