package overlay

import (
	"github.com/HeyGarrison/cakeelizabethdotcom/console"
	"github.com/HeyGarrison/cakeelizabethdotcom/events"
	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
)

// replacer performs replace navigation.
type replacer interface {
	Replace(loc location.Location) error
}

// keyboard binds Escape/ArrowLeft/ArrowRight to overlay transitions while
// the overlay is open. sync runs on every render; the effect detaches the
// previous render's listener before attaching the next, so one overlay
// never holds more than one listener.
type keyboard struct {
	effect runtime.Effect
}

// sync detaches the listener from the previous render and, when open,
// attaches a new one. current is evaluated at key-press time so every press
// acts on the location as it is at that instant.
func (k *keyboard) sync(src events.KeySource, open bool, nav replacer, current func() Transitions) {
	k.effect.Run(func() func() {
		if !open || src == nil {
			return nil
		}

		var unsubscribe func()
		unsubscribe = src.Subscribe(func(ev events.KeyEvent) {
			switch ev.Key {
			case events.KeyEscape:
				replace(nav, current().Close)
				// A slow close must not let a second Escape fire again.
				unsubscribe()
			case events.KeyArrowRight:
				replace(nav, current().Next)
			case events.KeyArrowLeft:
				replace(nav, current().Prev)
			}
		})
		return unsubscribe
	})
}

// release detaches any live listener.
func (k *keyboard) release() {
	k.effect.Cleanup()
}

func (k *keyboard) active() bool {
	return k.effect.Active()
}

func replace(nav replacer, loc location.Location) {
	if err := nav.Replace(loc); err != nil {
		console.Warn("Overlay navigation to", loc.String(), "failed:", err.Error())
	}
}
