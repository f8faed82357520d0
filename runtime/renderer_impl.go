//go:build js && wasm

package runtime

import (
	"fmt"

	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the browser implementation of the Renderer interface.
// It manages the component instance tree and mounts the result into the DOM.
type RendererImpl struct {
	tree             *Reconciler
	currentComponent Component         // The currently active root component (set by router or directly)
	currentKey       string            // Key of the current root (the route path)
	navManager       NavigationManager // Optional: router for client-side navigation
	mountID          string
	prevVDOM         *vdom.VNode // Previous VDOM tree, released before the next mount
	rendering        bool
	pending          bool
}

// NewRenderer creates a new runtime renderer.
// If navManager is provided, the renderer will support client-side routing.
// If navManager is nil, the renderer works without routing (useful for non-SPA apps).
func NewRenderer(navManager NavigationManager, mountID string) *RendererImpl {
	return &RendererImpl{
		tree:       NewReconciler(),
		navManager: navManager,
		mountID:    mountID,
	}
}

// SetNavigationManager attaches the router after construction.
func (r *RendererImpl) SetNavigationManager(nm NavigationManager) {
	r.navManager = nm
}

// SetCurrentComponent sets the component to be rendered.
// This is typically called by the router's onChange callback when navigation occurs.
func (r *RendererImpl) SetCurrentComponent(comp Component, key string) {
	r.currentComponent = comp
	r.currentKey = key
}

// RenderRoot runs one render pass and mounts the result.
// A render requested while one is in progress (for example a key listener
// replacing the location from inside a render) is run right after it.
func (r *RendererImpl) RenderRoot() {
	if r.rendering {
		r.pending = true
		return
	}
	r.rendering = true
	defer func() { r.rendering = false }()

	for {
		r.pending = false
		r.renderOnce()
		if !r.pending {
			return
		}
	}
}

func (r *RendererImpl) renderOnce() {
	r.tree.Begin()
	newVDOM := r.tree.Root(r.currentComponent, r)
	r.tree.End()

	vdom.Clear(r.mountID, r.prevVDOM)
	if newVDOM != nil {
		vdom.RenderToSelector(r.mountID, newVDOM)
	}
	r.prevVDOM = newVDOM
}

// RenderChild renders a child component, preserving its instance across renders.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	return r.tree.Child(key, childWithProps, r)
}

// ReRender re-runs the render cycle.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}

// Navigate delegates to the NavigationManager (router).
// Returns an error if no router is configured.
func (r *RendererImpl) Navigate(path string) error {
	if r.navManager == nil {
		return fmt.Errorf("no router configured for navigation")
	}
	return r.navManager.Navigate(path)
}

// Replace delegates to the NavigationManager (router).
func (r *RendererImpl) Replace(loc location.Location) error {
	if r.navManager == nil {
		return fmt.Errorf("no router configured for navigation")
	}
	return r.navManager.Replace(loc)
}

// Location returns the router's current location.
func (r *RendererImpl) Location() location.Location {
	if r.navManager == nil {
		return location.Location{Path: "/"}
	}
	return r.navManager.Location()
}
