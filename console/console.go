//go:build js && wasm

package console

import (
	"fmt"
	"syscall/js"
)

func Log(args ...any) {
	call("log", args)
}

func Warn(args ...any) {
	call("warn", args)
}

func Error(args ...any) {
	call("error", args)
}

// call forwards args to the browser console. js.ValueOf panics on values it
// cannot convert (errors, structs), so those are formatted first.
func call(method string, args []any) {
	out := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case nil, bool, string, int, int32, int64, uint, uint32, uint64, float32, float64, js.Value:
			out[i] = v
		case error:
			out[i] = v.Error()
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	js.Global().Get("console").Call(method, out...)
}
