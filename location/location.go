// Package location models the addressable state of a page: a path and a
// set of single-valued query parameters.
//
// A Location is treated as an immutable snapshot. Every method that
// "changes" a Location or Query returns a new value; the receiver is never
// modified. This type has no build tags and is shared by the WASM router,
// the server-side renderer and the tests.
package location

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Query maps query-parameter names to their (single) string value.
type Query map[string]string

// Location is a path plus its query.
type Location struct {
	Path  string
	Query Query
}

// New returns a Location for path with a copy of query.
func New(path string, query Query) Location {
	return Location{Path: path, Query: query.Clone()}
}

// Parse splits a raw "path?query" string (or a full URL) into a Location.
// Repeated query keys keep their first value.
func Parse(raw string) (Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("parse location %q: %w", raw, err)
	}
	return FromURL(u), nil
}

// FromURL converts a parsed URL into a Location.
func FromURL(u *url.URL) Location {
	path := u.Path
	if path == "" {
		path = "/"
	}
	return Location{Path: path, Query: FromValues(u.Query())}
}

// FromValues collapses url.Values into a Query, keeping the first value per key.
func FromValues(values url.Values) Query {
	q := make(Query, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			q[k] = vs[0]
		}
	}
	return q
}

// Clone returns an independent copy of q. A nil Query clones to an empty one.
func (q Query) Clone() Query {
	out := make(Query, len(q))
	for k, v := range q {
		out[k] = v
	}
	return out
}

// Get returns the value for key and whether it was present.
func (q Query) Get(key string) (string, bool) {
	v, ok := q[key]
	return v, ok
}

// With returns a copy of q with key set to value.
func (q Query) With(key, value string) Query {
	out := q.Clone()
	out[key] = value
	return out
}

// Merge returns a copy of q with every entry of other applied on top.
func (q Query) Merge(other Query) Query {
	out := q.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Without returns a copy of q with the given keys removed.
func (q Query) Without(keys ...string) Query {
	out := q.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Encode renders q in URL query form with keys sorted, so equal queries
// always encode to the same string.
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q[k]))
	}
	return b.String()
}

// WithQuery returns a Location on the same path with the given query.
func (l Location) WithQuery(q Query) Location {
	return Location{Path: l.Path, Query: q.Clone()}
}

// String renders the location as "path?query" (no "?" when the query is empty).
func (l Location) String() string {
	path := l.Path
	if path == "" {
		path = "/"
	}
	if qs := l.Query.Encode(); qs != "" {
		return path + "?" + qs
	}
	return path
}

// Equal reports whether both locations have the same path and query.
func (l Location) Equal(other Location) bool {
	if l.Path != other.Path || len(l.Query) != len(other.Query) {
		return false
	}
	for k, v := range l.Query {
		if ov, ok := other.Query[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
