//go:build !dev

package runtime

import "github.com/HeyGarrison/cakeelizabethdotcom/console"

// callOnMount invokes the OnMount lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func callOnMount(m Mounter, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error("OnMount panic in component", key+":", rec)
		}
	}()
	m.OnMount()
}

// callOnParametersSet invokes the OnParametersSet lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func callOnParametersSet(receiver ParameterReceiver, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error("OnParametersSet panic in component", key+":", rec)
		}
	}()
	receiver.OnParametersSet()
}

// callOnUnmount invokes the OnUnmount lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func callOnUnmount(u Unmounter, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error("OnUnmount panic in component", key+":", rec)
		}
	}()
	u.OnUnmount()
}
