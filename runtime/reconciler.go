package runtime

import "github.com/HeyGarrison/cakeelizabethdotcom/vdom"

// rootKey identifies the root component in the instance table.
const rootKey = "__root__"

// Reconciler tracks component instances across renders. It has no build
// tags: the browser renderer, the server-side renderer and the test
// renderer all delegate instance bookkeeping and lifecycle calls to it.
//
// A render pass is Begin, then Root and any number of Child calls, then End.
// Instances not rendered during the pass are unmounted by End.
type Reconciler struct {
	instances  map[string]Component
	activeKeys map[string]bool
}

// NewReconciler returns an empty Reconciler.
func NewReconciler() *Reconciler {
	return &Reconciler{
		instances:  make(map[string]Component),
		activeKeys: make(map[string]bool),
	}
}

// Begin starts a render pass.
func (rc *Reconciler) Begin() {
	rc.activeKeys = make(map[string]bool)
}

// Root renders the root component. A different root than the previous pass
// unmounts the old one and every child it rendered.
func (rc *Reconciler) Root(root Component, r Renderer) *vdom.VNode {
	if prev, ok := rc.instances[rootKey]; ok && prev != root {
		rc.UnmountAll()
		rc.activeKeys = make(map[string]bool)
	}
	if root == nil {
		return nil
	}
	return rc.render(rootKey, root, r)
}

// Child renders a keyed child, reusing the instance from earlier passes and
// copying the new props into it when it implements PropUpdater.
func (rc *Reconciler) Child(key string, childWithProps Component, r Renderer) *vdom.VNode {
	instance, exists := rc.instances[key]
	if !exists {
		instance = childWithProps
	} else if instance != childWithProps {
		if updater, ok := instance.(PropUpdater); ok {
			updater.ApplyProps(childWithProps)
		}
	}
	return rc.render(key, instance, r)
}

func (rc *Reconciler) render(key string, instance Component, r Renderer) *vdom.VNode {
	rc.activeKeys[key] = true
	_, exists := rc.instances[key]
	rc.instances[key] = instance

	// Ensure the instance knows about the renderer so it can call StateHasChanged.
	instance.SetRenderer(r)

	if !exists {
		if m, ok := instance.(Mounter); ok {
			callOnMount(m, key)
		}
	}
	if p, ok := instance.(ParameterReceiver); ok {
		callOnParametersSet(p, key)
	}
	return instance.Render(r)
}

// End finishes a render pass, unmounting every instance that was not rendered.
func (rc *Reconciler) End() {
	for key, instance := range rc.instances {
		if !rc.activeKeys[key] {
			rc.unmount(key, instance)
		}
	}
}

// UnmountAll unmounts every tracked instance.
func (rc *Reconciler) UnmountAll() {
	for key, instance := range rc.instances {
		rc.unmount(key, instance)
	}
}

// Mounted reports how many instances are currently tracked.
func (rc *Reconciler) Mounted() int {
	return len(rc.instances)
}

func (rc *Reconciler) unmount(key string, instance Component) {
	delete(rc.instances, key)
	if u, ok := instance.(Unmounter); ok {
		callOnUnmount(u, key)
	}
}
