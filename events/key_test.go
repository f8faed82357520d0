package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher_SubscribeAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	var got []string
	unsub := d.Subscribe(func(ev KeyEvent) { got = append(got, ev.Key) })
	assert.Equal(t, 1, d.Listeners())

	d.Press(KeyArrowRight)
	unsub()
	unsub()
	d.Press(KeyArrowLeft)

	assert.Equal(t, []string{KeyArrowRight}, got)
	assert.Equal(t, 0, d.Listeners())
}

func TestDispatcher_ListenerAttachedDuringDispatchMissesEvent(t *testing.T) {
	d := NewDispatcher()
	lateCalls := 0
	var unsubFirst func()
	unsubFirst = d.Subscribe(func(KeyEvent) {
		unsubFirst()
		d.Subscribe(func(KeyEvent) { lateCalls++ })
	})

	d.Press(KeyEscape)
	assert.Zero(t, lateCalls)
	assert.Equal(t, 1, d.Listeners())

	d.Press(KeyEscape)
	assert.Equal(t, 1, lateCalls)
}

func TestDispatcher_ListenerDetachedDuringDispatchIsSkipped(t *testing.T) {
	d := NewDispatcher()
	secondCalls := 0
	var unsubSecond func()
	d.Subscribe(func(KeyEvent) { unsubSecond() })
	unsubSecond = d.Subscribe(func(KeyEvent) { secondCalls++ })

	d.Press(KeyEscape)

	assert.Zero(t, secondCalls)
}
