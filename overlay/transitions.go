package overlay

import "github.com/HeyGarrison/cakeelizabethdotcom/location"

// Transitions holds the target location of each overlay control. The same
// values back the rendered links and the keyboard handler.
type Transitions struct {
	Close location.Location
	Prev  location.Location
	Next  location.Location
}

// ComputeTransitions returns the close/prev/next targets for loc with the
// given selected index. Prev and Next are not wrapped; the next read of the
// location wraps them. Query parameters unrelated to the overlay are kept.
func ComputeTransitions(loc location.Location, rt Routing, selected int) Transitions {
	return Transitions{
		Close: rt.Close(loc),
		Prev:  rt.Jump(loc, selected-1),
		Next:  rt.Jump(loc, selected+1),
	}
}
