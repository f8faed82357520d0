//go:build js && wasm

package events

import (
	"sync"
	"syscall/js"
)

type documentSource struct{}

// Document returns the KeySource backed by the browser document's keydown
// event. Each subscription owns one js.Func, released on unsubscribe.
func Document() KeySource {
	return documentSource{}
}

func (documentSource) Subscribe(fn func(KeyEvent)) func() {
	doc := js.Global().Get("document")
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(KeyEvent{Key: args[0].Get("key").String()})
		}
		return nil
	})
	doc.Call("addEventListener", "keydown", cb)

	var once sync.Once
	return func() {
		once.Do(func() {
			doc.Call("removeEventListener", "keydown", cb)
			cb.Release()
		})
	}
}
