//go:build dev

package runtime

// callOnMount invokes the OnMount lifecycle method in development mode.
// In dev mode, panics propagate to aid debugging and fast failure.
func callOnMount(m Mounter, key string) {
	m.OnMount()
}

// callOnParametersSet invokes the OnParametersSet lifecycle method in development mode.
// In dev mode, panics propagate to aid debugging and fast failure.
func callOnParametersSet(receiver ParameterReceiver, key string) {
	receiver.OnParametersSet()
}

// callOnUnmount invokes the OnUnmount lifecycle method in development mode.
// In dev mode, panics propagate to aid debugging and fast failure.
func callOnUnmount(u Unmounter, key string) {
	u.OnUnmount()
}
