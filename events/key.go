// Package events provides the global key-event source that components
// subscribe to, plus a pure-Go dispatcher used outside the browser.
package events

import (
	"sort"
	"sync"

	"go.uber.org/atomic"
)

// Key names follow KeyboardEvent.key.
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// KeyEvent is a single key press.
type KeyEvent struct {
	Key string
}

// KeySource is a global key-event source. Subscribe attaches a listener and
// returns the function that detaches it; detaching twice is a no-op.
type KeySource interface {
	Subscribe(fn func(KeyEvent)) (unsubscribe func())
}

// Dispatcher is an in-memory KeySource. The terminal preview feeds it from
// bubbletea key messages and tests feed it directly.
//
// Dispatch works on a snapshot of listener ids: a listener attached while an
// event is being delivered does not receive that event, and a listener
// detached mid-dispatch is not called afterwards.
type Dispatcher struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[uint64]func(KeyEvent)
	attached  atomic.Int32
}

var _ KeySource = (*Dispatcher)(nil)

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[uint64]func(KeyEvent))}
}

// Subscribe implements KeySource.
func (d *Dispatcher) Subscribe(fn func(KeyEvent)) func() {
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.listeners[id] = fn
	d.mu.Unlock()
	d.attached.Inc()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.listeners, id)
			d.mu.Unlock()
			d.attached.Dec()
		})
	}
}

// Dispatch delivers ev to every listener attached when the call started.
func (d *Dispatcher) Dispatch(ev KeyEvent) {
	d.mu.Lock()
	ids := make([]uint64, 0, len(d.listeners))
	for id := range d.listeners {
		ids = append(ids, id)
	}
	d.mu.Unlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		d.mu.Lock()
		fn, ok := d.listeners[id]
		d.mu.Unlock()
		if ok {
			fn(ev)
		}
	}
}

// Press is shorthand for Dispatch(KeyEvent{Key: key}).
func (d *Dispatcher) Press(key string) {
	d.Dispatch(KeyEvent{Key: key})
}

// Listeners returns the number of attached listeners.
func (d *Dispatcher) Listeners() int {
	return int(d.attached.Load())
}
