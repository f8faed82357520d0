package runtime

import (
	"testing"

	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/vdom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopRenderer struct{ rc *Reconciler }

func (n *nopRenderer) RenderChild(key string, c Component) *vdom.VNode { return n.rc.Child(key, c, n) }
func (n *nopRenderer) ReRender()                                       {}
func (n *nopRenderer) Navigate(string) error                           { return nil }
func (n *nopRenderer) Replace(location.Location) error                 { return nil }
func (n *nopRenderer) Location() location.Location                     { return location.Location{Path: "/"} }

type child struct {
	ComponentBase
	Label    string
	mounts   int
	params   int
	unmounts int
}

func (c *child) Render(Renderer) *vdom.VNode { return vdom.Paragraph(c.Label, nil) }
func (c *child) OnMount()                    { c.mounts++ }
func (c *child) OnParametersSet()            { c.params++ }
func (c *child) OnUnmount()                  { c.unmounts++ }
func (c *child) ApplyProps(src Component)    { c.Label = src.(*child).Label }

type parent struct {
	ComponentBase
	ShowChild bool
	Label     string
}

func (p *parent) Render(r Renderer) *vdom.VNode {
	if !p.ShowChild {
		return vdom.Div(nil)
	}
	return vdom.Div(nil, r.RenderChild("child", &child{Label: p.Label}))
}

func renderPass(rc *Reconciler, r Renderer, root Component) *vdom.VNode {
	rc.Begin()
	defer rc.End()
	return rc.Root(root, r)
}

func TestReconciler_ReusesChildAndAppliesProps(t *testing.T) {
	rc := NewReconciler()
	r := &nopRenderer{rc: rc}
	root := &parent{ShowChild: true, Label: "one"}

	renderPass(rc, r, root)
	first := rc.instances["child"].(*child)

	root.Label = "two"
	out := renderPass(rc, r, root)

	second := rc.instances["child"].(*child)
	require.Same(t, first, second)
	assert.Equal(t, "two", out.Children[0].Content)
	assert.Equal(t, 1, first.mounts)
	assert.Equal(t, 2, first.params)
}

func TestReconciler_UnmountsChildrenNotRendered(t *testing.T) {
	rc := NewReconciler()
	r := &nopRenderer{rc: rc}
	root := &parent{ShowChild: true}

	renderPass(rc, r, root)
	c := rc.instances["child"].(*child)

	root.ShowChild = false
	renderPass(rc, r, root)

	assert.Equal(t, 1, c.unmounts)
	assert.Equal(t, 1, rc.Mounted())
}

func TestReconciler_NewRootUnmountsOldTree(t *testing.T) {
	rc := NewReconciler()
	r := &nopRenderer{rc: rc}

	renderPass(rc, r, &parent{ShowChild: true})
	c := rc.instances["child"].(*child)

	renderPass(rc, r, &parent{})

	assert.Equal(t, 1, c.unmounts)
}
