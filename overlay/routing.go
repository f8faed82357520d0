// Package overlay implements the image carousel overlay: a modal viewer
// whose open/closed state and selected slide live entirely in the page's
// query string. Every user action produces a new location instead of
// mutating component state, so back/forward navigation and shareable links
// come for free.
package overlay

import (
	"strconv"

	"github.com/HeyGarrison/cakeelizabethdotcom/location"
)

// Routing names the query parameters that encode an overlay's state.
// Values are immutable: methods take a value receiver and return new
// queries and locations.
type Routing struct {
	// QueryParam is the parameter whose value selects the open overlay.
	QueryParam string
	// QueryValue is the QueryParam value that means "this overlay is open".
	QueryValue string
	// IndexQueryParam carries the selected slide as a decimal integer.
	IndexQueryParam string
}

// ImageCarousel is the routing of the image carousel overlay, shared by
// every overlay instance.
var ImageCarousel = Routing{
	QueryParam:      "overlay",
	QueryValue:      "image-carousel",
	IndexQueryParam: "index",
}

// Query returns the partial query that opens the overlay at index.
func (rt Routing) Query(index int) location.Query {
	return location.Query{
		rt.QueryParam:      rt.QueryValue,
		rt.IndexQueryParam: strconv.Itoa(index),
	}
}

// IsOpen reports whether loc has this overlay open.
func (rt Routing) IsOpen(loc location.Location) bool {
	v, ok := loc.Query.Get(rt.QueryParam)
	return ok && v == rt.QueryValue
}

// Open returns loc with the overlay opened at index. Gallery thumbnails
// link here with a push navigation, so opening the overlay is a history stop.
func (rt Routing) Open(loc location.Location, index int) location.Location {
	return loc.WithQuery(loc.Query.Merge(rt.Query(index)))
}

// Close returns loc with both overlay parameters removed. Removing the index
// as well keeps a closed overlay from reading as "open at slide 0".
func (rt Routing) Close(loc location.Location) location.Location {
	return loc.WithQuery(loc.Query.Without(rt.QueryParam, rt.IndexQueryParam))
}

// Jump returns loc with the index set to i. The index is not wrapped here;
// wrap-around is applied when the location is read back.
func (rt Routing) Jump(loc location.Location, i int) location.Location {
	return loc.WithQuery(loc.Query.With(rt.IndexQueryParam, strconv.Itoa(i)))
}
