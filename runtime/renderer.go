package runtime

import (
	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/vdom"
)

// Renderer defines the minimal set of runtime operations used by component Render code.
// This interface has NO build tags, making it available to both WASM and native builds.
type Renderer interface {
	// RenderChild renders a child component.
	// The key parameter uniquely identifies the component instance for state preservation.
	RenderChild(key string, childWithProps Component) *vdom.VNode

	// ReRender requests that the renderer re-run the render cycle.
	// Used by StateHasChanged() when component state changes.
	ReRender()

	// Navigate performs client-side navigation to the given path, adding a history entry.
	Navigate(path string) error

	// Replace swaps the current history entry for loc without adding a new one.
	Replace(loc location.Location) error

	// Location returns the location being rendered.
	Location() location.Location
}

// NavigationManager is implemented by routers. The renderer delegates its
// navigation methods to it.
type NavigationManager interface {
	Navigate(path string) error
	Replace(loc location.Location) error
	Location() location.Location
}
