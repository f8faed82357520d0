package router

import (
	"github.com/HeyGarrison/cakeelizabethdotcom/console"
	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
	"github.com/HeyGarrison/cakeelizabethdotcom/vdom"
)

// LinkMode selects how following a link updates history.
type LinkMode int

const (
	// Push adds a history entry (a real "back button" stop).
	Push LinkMode = iota
	// Replace overwrites the current history entry.
	Replace
)

func (m LinkMode) String() string {
	if m == Replace {
		return "replace"
	}
	return "push"
}

// Link renders an <a> whose href is the target location, so open-in-new-tab
// and copy-link work, and whose click performs client-side navigation.
// Without script (server-rendered pages) it degrades to a plain link.
func Link(r runtime.Renderer, to location.Location, mode LinkMode, attrs map[string]any, children ...*vdom.VNode) *vdom.VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["data-nav"] = mode.String()
	attrs["onClick"] = func() {
		var err error
		if mode == Replace {
			err = r.Replace(to)
		} else {
			err = r.Navigate(to.String())
		}
		if err != nil {
			console.Warn("Navigation to", to.String(), "failed:", err.Error())
		}
	}
	return vdom.Anchor(to.String(), attrs, children...)
}
