// Package site serves the pages as server-rendered HTML and exports them
// as a static site.
package site

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/pages"
	"github.com/HeyGarrison/cakeelizabethdotcom/router"
	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
	"github.com/HeyGarrison/cakeelizabethdotcom/vdom"
)

// ErrServerNavigation is returned by navigation attempted during a server render.
var ErrServerNavigation = errors.New("navigation is not available during server rendering")

// staticRenderer renders one location once. It implements runtime.Renderer
// for code that runs unchanged in the browser: children are tracked by a
// Reconciler, and navigation is refused because the response is already
// being written.
type staticRenderer struct {
	tree *runtime.Reconciler
	loc  location.Location
}

var _ runtime.Renderer = (*staticRenderer)(nil)

func (r *staticRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	return r.tree.Child(key, child, r)
}

func (r *staticRenderer) ReRender() {}

func (r *staticRenderer) Navigate(path string) error {
	return fmt.Errorf("%w: %s", ErrServerNavigation, path)
}

func (r *staticRenderer) Replace(loc location.Location) error {
	return fmt.Errorf("%w: %s", ErrServerNavigation, loc.String())
}

func (r *staticRenderer) Location() location.Location {
	return r.loc
}

// Page is a rendered page ready for the HTML template.
type Page struct {
	Status int
	Title  string
	Lang   string
	Body   template.HTML
}

// Render resolves loc against table and renders it inside the site shell.
// Unknown paths render the not-found page with status 404.
func Render(deps pages.Deps, table *router.Table, loc location.Location) (Page, error) {
	status := http.StatusOK
	match, err := table.Resolve(loc.Path)
	if err != nil {
		if !errors.Is(err, router.ErrNoRoute) || match.Route.Factory == nil {
			return Page{}, err
		}
		status = http.StatusNotFound
	}

	shell := pages.NewShell(deps)
	shell.SetPage(match.Route.Factory(match.Params), match.Key)

	r := &staticRenderer{tree: runtime.NewReconciler(), loc: loc}
	r.tree.Begin()
	tree := r.tree.Root(shell, r)
	r.tree.End()
	defer r.tree.UnmountAll()

	body, err := vdom.RenderHTMLString(tree)
	if err != nil {
		return Page{}, fmt.Errorf("render %s: %w", loc.String(), err)
	}

	lang := "en"
	if deps.Text != nil {
		lang = deps.Text.Tag().String()
	}
	return Page{
		Status: status,
		Title:  shell.Title(),
		Lang:   lang,
		Body:   template.HTML(body),
	}, nil
}
