package router

import (
	"fmt"

	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
	"github.com/HeyGarrison/cakeelizabethdotcom/signals"
)

// Memory is an in-process navigation history: a stack of locations with a
// cursor, like the browser's session history. Push drops any forward
// entries; Replace overwrites the entry under the cursor.
//
// Subscribers are notified after every change, including changes made by
// the subscribers themselves.
type Memory struct {
	entries []location.Location
	index   int
	current *signals.Signal[location.Location]
}

var _ runtime.NavigationManager = (*Memory)(nil)

// NewMemory creates a history holding a single entry.
func NewMemory(initial location.Location) *Memory {
	if initial.Path == "" {
		initial.Path = "/"
	}
	initial = location.New(initial.Path, initial.Query)
	return &Memory{
		entries: []location.Location{initial},
		current: signals.NewSignal(initial),
	}
}

// Location returns the entry under the cursor.
func (m *Memory) Location() location.Location {
	return m.entries[m.index]
}

// Navigate parses path ("path?query") and pushes it.
func (m *Memory) Navigate(path string) error {
	loc, err := location.Parse(path)
	if err != nil {
		return fmt.Errorf("navigate: %w", err)
	}
	m.Push(loc)
	return nil
}

// Push appends loc after the cursor, discarding forward entries.
func (m *Memory) Push(loc location.Location) {
	loc = location.New(loc.Path, loc.Query)
	m.entries = append(m.entries[:m.index+1], loc)
	m.index = len(m.entries) - 1
	m.current.Set(loc)
}

// Replace overwrites the entry under the cursor.
func (m *Memory) Replace(loc location.Location) error {
	loc = location.New(loc.Path, loc.Query)
	m.entries[m.index] = loc
	m.current.Set(loc)
	return nil
}

// Back moves the cursor one entry back. It reports false at the first entry.
func (m *Memory) Back() bool {
	if m.index == 0 {
		return false
	}
	m.index--
	m.current.Set(m.entries[m.index])
	return true
}

// Forward moves the cursor one entry forward. It reports false at the last entry.
func (m *Memory) Forward() bool {
	if m.index >= len(m.entries)-1 {
		return false
	}
	m.index++
	m.current.Set(m.entries[m.index])
	return true
}

// Len returns the number of history entries.
func (m *Memory) Len() int {
	return len(m.entries)
}

// Subscribe registers fn to run after every location change.
func (m *Memory) Subscribe(fn func(location.Location)) (unsubscribe func()) {
	return m.current.Subscribe(fn)
}

// Follow resolves every location history moves to against table and calls
// onChange with the page to show, the way the browser Engine does: the page
// instance is kept while its route key is unchanged. onChange runs once
// immediately for the current location. The returned function stops
// following.
func Follow(history *Memory, table *Table, onChange func(page runtime.Component, key string)) (stop func()) {
	var (
		page runtime.Component
		key  string
	)
	show := func(loc location.Location) {
		match, _ := table.Resolve(loc.Path)
		if match.Route.Factory == nil {
			return
		}
		if page == nil || match.Key != key {
			page = match.Route.Factory(match.Params)
			key = match.Key
		}
		onChange(page, key)
	}
	show(history.Location())
	return history.Subscribe(show)
}
