package testcomponents

import (
	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/router"
	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
	"github.com/HeyGarrison/cakeelizabethdotcom/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Drive navigation through an in-memory history (every change re-renders)
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree and render count
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	history     *router.Memory
	tree        *runtime.Reconciler
	renders     int
	unsubscribe func()
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component,
// starting at "/".
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	return NewTestRendererAt(comp, router.NewMemory(location.Location{Path: "/"}))
}

// NewTestRendererAt creates a test renderer that follows history: every
// navigation re-renders the component, the way the router does in the browser.
func NewTestRendererAt(comp runtime.Component, history *router.Memory) *TestRenderer {
	r := &TestRenderer{
		component: comp,
		history:   history,
		tree:      runtime.NewReconciler(),
	}
	comp.SetRenderer(r)
	r.unsubscribe = history.Subscribe(func(location.Location) { r.ReRender() })
	return r
}

// RenderRoot performs a render pass of the component.
// This should be called at the start of a test to get the initial VDOM.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.renders++
	r.tree.Begin()
	r.currentVDOM = r.tree.Root(r.component, r)
	r.tree.End()
	return r.currentVDOM
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() and by history changes.
func (r *TestRenderer) ReRender() {
	r.RenderRoot()
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
// Tests use this to inspect the component's output after renders.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// Renders returns how many render passes have run.
func (r *TestRenderer) Renders() int {
	return r.renders
}

// History exposes the in-memory history driving the renderer.
func (r *TestRenderer) History() *router.Memory {
	return r.history
}

// RenderChild renders child components, reusing instances across renders.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	return r.tree.Child(key, child, r)
}

// Navigate pushes path onto the in-memory history.
func (r *TestRenderer) Navigate(path string) error {
	return r.history.Navigate(path)
}

// Replace overwrites the current in-memory history entry.
func (r *TestRenderer) Replace(loc location.Location) error {
	return r.history.Replace(loc)
}

// Location returns the current in-memory history entry.
func (r *TestRenderer) Location() location.Location {
	return r.history.Location()
}

// Unmount removes the whole tree, calling OnUnmount on every instance, and
// stops following history.
func (r *TestRenderer) Unmount() {
	r.unsubscribe()
	r.tree.UnmountAll()
	r.currentVDOM = nil
}
