//go:build !js || !wasm

package console

// Native builds have no browser console. Messages go to the process-wide
// logger instead (see the logging package), so server-side renders and the
// terminal preview surface the same diagnostics the browser would.

import (
	"fmt"
	"strings"

	clog "github.com/charmbracelet/log"
)

// Log writes a debug line.
func Log(args ...any) {
	clog.Debug(join(args))
}

// Warn writes a warning line.
func Warn(args ...any) {
	clog.Warn(join(args))
}

// Error writes an error line.
func Error(args ...any) {
	clog.Error(join(args))
}

func join(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " ")
}
