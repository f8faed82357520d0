package runtime

import "github.com/HeyGarrison/cakeelizabethdotcom/vdom"

// Component interface defines the structure for all components in the framework.
// This interface has NO build tags, making it available to both WASM and native builds.
// The Render method accepts the Renderer interface (not concrete type) so the browser
// renderer, the server-side renderer and the test renderer can all drive it.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// Returning nil renders nothing.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders.
	SetRenderer(r Renderer)
}

// ComponentFactory builds a component for a matched route.
// params holds the values captured by "{name}" segments of the route pattern.
type ComponentFactory func(params map[string]string) Component
