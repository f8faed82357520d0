//go:build js && wasm

package router

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/HeyGarrison/cakeelizabethdotcom/console"
	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
)

// Engine is the browser router. It resolves the window location against a
// route Table, keeps the page instance while only the query changes, and
// writes navigation to the browser history with pushState/replaceState.
type Engine struct {
	table            *Table
	current          location.Location
	currentKey       string
	currentPage      runtime.Component
	onRouteChange    func(page runtime.Component, key string)
	popstateListener js.Func
}

var _ runtime.NavigationManager = (*Engine)(nil)

// NewEngine creates a router engine over table.
func NewEngine(table *Table) *Engine {
	return &Engine{table: table, current: location.Location{Path: "/"}}
}

// Location returns the current location.
func (e *Engine) Location() location.Location {
	return e.current
}

// Navigate parses path ("path?query") and pushes a history entry.
func (e *Engine) Navigate(path string) error {
	loc, err := location.Parse(path)
	if err != nil {
		return err
	}
	return e.navigate(loc, "pushState")
}

// Replace overwrites the current history entry with loc.
func (e *Engine) Replace(loc location.Location) error {
	return e.navigate(loc, "replaceState")
}

// navigate resolves loc and updates history with the given method
// ("pushState", "replaceState", or "" for popstate, where the browser has
// already moved).
func (e *Engine) navigate(loc location.Location, historyMethod string) error {
	console.Log("[Engine.navigate]", historyMethod, loc.String())

	match, err := e.table.Resolve(loc.Path)
	if err != nil && !errors.Is(err, ErrNoRoute) {
		return err
	}
	if match.Route.Factory == nil {
		console.Error("[Engine.navigate] No route found for path:", loc.Path)
		return fmt.Errorf("navigate %s: %w", loc.Path, err)
	}

	if historyMethod != "" {
		js.Global().Get("history").Call(historyMethod, nil, "", loc.String())
	}
	e.current = location.New(loc.Path, loc.Query)

	if e.currentPage == nil || match.Key != e.currentKey {
		e.currentPage = match.Route.Factory(match.Params)
		e.currentKey = match.Key
	}
	if e.onRouteChange != nil {
		e.onRouteChange(e.currentPage, e.currentKey)
	}
	return nil
}

// Start registers the popstate listener and renders the initial location.
func (e *Engine) Start(onChange func(page runtime.Component, key string)) error {
	e.onRouteChange = onChange

	e.popstateListener = js.FuncOf(func(this js.Value, args []js.Value) any {
		if err := e.navigate(windowLocation(), ""); err != nil {
			console.Error("[Engine] popstate navigation failed:", err.Error())
		}
		return nil
	})
	js.Global().Call("addEventListener", "popstate", e.popstateListener)

	return e.navigate(windowLocation(), "")
}

// Cleanup releases resources held by the engine.
func (e *Engine) Cleanup() {
	if !e.popstateListener.IsUndefined() {
		js.Global().Call("removeEventListener", "popstate", e.popstateListener)
		e.popstateListener.Release()
	}
}

func windowLocation() location.Location {
	loc := js.Global().Get("location")
	raw := loc.Get("pathname").String() + loc.Get("search").String()
	parsed, err := location.Parse(raw)
	if err != nil {
		console.Warn("[Engine] unparsable window location:", raw)
		return location.Location{Path: "/"}
	}
	return parsed
}
