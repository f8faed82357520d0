package router

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
)

// ErrNoRoute is returned when no registered route matches a path.
var ErrNoRoute = errors.New("no route for path")

// Route maps a path pattern to the factory of its page component.
// Patterns may contain parameters in curly braces, e.g. "/blog/{year}".
type Route struct {
	Path    string
	Factory runtime.ComponentFactory
}

// Match is the result of resolving a path against the table.
type Match struct {
	Route  Route
	Params map[string]string
	// Key identifies the page instance: equal keys render the same instance,
	// so query-only navigation keeps the page (and its children) mounted.
	Key string
}

// Table is the set of routes known to an application. It has no build tags
// and is shared by the browser engine, the server and the static build.
type Table struct {
	routes   []Route
	notFound runtime.ComponentFactory
}

// NewTable creates a table from routes.
func NewTable(routes ...Route) *Table {
	t := &Table{}
	for _, r := range routes {
		t.Handle(r.Path, r.Factory)
	}
	return t
}

// Handle registers a route.
func (t *Table) Handle(pattern string, factory runtime.ComponentFactory) {
	t.routes = append(t.routes, Route{Path: pattern, Factory: factory})
}

// HandleNotFound sets the factory used when no route matches.
func (t *Table) HandleNotFound(factory runtime.ComponentFactory) {
	t.notFound = factory
}

// Routes returns the registered routes sorted by pattern.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Resolve finds the route for path. Static patterns win over parameterized
// ones. When nothing matches, the not-found route is returned together with
// ErrNoRoute (or only ErrNoRoute when no not-found factory is set).
func (t *Table) Resolve(path string) (Match, error) {
	var best *Route
	for i := range t.routes {
		r := &t.routes[i]
		if !matchesPattern(r.Path, path) {
			continue
		}
		if best == nil || (strings.Contains(best.Path, "{") && !strings.Contains(r.Path, "{")) {
			best = r
		}
	}
	if best != nil {
		return Match{
			Route:  *best,
			Params: extractParams(best.Path, path),
			Key:    normalize(path),
		}, nil
	}

	err := fmt.Errorf("%w: %s", ErrNoRoute, path)
	if t.notFound == nil {
		return Match{}, err
	}
	return Match{
		Route:  Route{Path: "", Factory: t.notFound},
		Params: map[string]string{},
		Key:    "__not_found__:" + normalize(path),
	}, err
}

func normalize(path string) string {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return "/"
	}
	return path
}

// matchesPattern checks if an actual path matches a route pattern.
// The pattern can contain parameters in curly braces, e.g., "/blog/{year}".
func matchesPattern(pattern, path string) bool {
	pattern = normalize(pattern)
	path = normalize(path)

	if pattern == path {
		return true
	}

	patternParts := strings.Split(strings.Trim(pattern, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")

	if len(patternParts) != len(pathParts) {
		return false
	}

	for i := range patternParts {
		if strings.HasPrefix(patternParts[i], "{") && strings.HasSuffix(patternParts[i], "}") {
			if pathParts[i] == "" {
				return false
			}
			continue
		}
		if patternParts[i] != pathParts[i] {
			return false
		}
	}

	return true
}

// extractParams parses URL parameters from a path based on route pattern.
func extractParams(routePath, actualPath string) map[string]string {
	routeParts := strings.Split(strings.Trim(normalize(routePath), "/"), "/")
	actualParts := strings.Split(strings.Trim(normalize(actualPath), "/"), "/")

	params := make(map[string]string)

	for i := range routeParts {
		if i >= len(actualParts) {
			break
		}
		if strings.HasPrefix(routeParts[i], "{") && strings.HasSuffix(routeParts[i], "}") {
			paramName := strings.Trim(routeParts[i], "{}")
			params[paramName] = actualParts[i]
		}
	}

	return params
}
