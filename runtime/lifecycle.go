package runtime

// Mounter is implemented by components that need setup the first time they
// are rendered.
type Mounter interface {
	OnMount()
}

// ParameterReceiver is implemented by components that derive internal state
// from their props. OnParametersSet runs before every render.
type ParameterReceiver interface {
	OnParametersSet()
}

// Unmounter is implemented by components that hold resources (listeners,
// subscriptions) which must be released when they leave the tree.
type Unmounter interface {
	OnUnmount()
}

// PropUpdater is implemented by components that keep their instance across
// renders and need the props of a freshly constructed value copied in.
type PropUpdater interface {
	ApplyProps(src Component)
}
