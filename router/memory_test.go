package router

import (
	"testing"

	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_ReplaceDoesNotAppend(t *testing.T) {
	m := NewMemory(location.Location{Path: "/gallery"})
	var seen []string
	m.Subscribe(func(l location.Location) { seen = append(seen, l.String()) })

	m.Push(location.New("/gallery", location.Query{"overlay": "image-carousel", "index": "0"}))
	for i := 1; i <= 3; i++ {
		require.NoError(t, m.Replace(m.Location().WithQuery(m.Location().Query.With("index", string(rune('0'+i))))))
	}

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, "/gallery?index=3&overlay=image-carousel", m.Location().String())
	assert.Len(t, seen, 4)

	require.True(t, m.Back())
	assert.Equal(t, "/gallery", m.Location().String())
	require.True(t, m.Forward())
	assert.False(t, m.Forward())
}

func TestMemory_NavigatePushesAndDropsForward(t *testing.T) {
	m := NewMemory(location.Location{})
	require.NoError(t, m.Navigate("/about-us"))
	require.NoError(t, m.Navigate("/contact?x=1"))
	require.True(t, m.Back())
	require.NoError(t, m.Navigate("/cake-pricing-flavors"))

	assert.Equal(t, 3, m.Len())
	assert.False(t, m.Forward())
	assert.Equal(t, "/cake-pricing-flavors", m.Location().Path)
}

func TestMemory_StoresCopies(t *testing.T) {
	q := location.Query{"a": "1"}
	m := NewMemory(location.New("/", nil))
	m.Push(location.Location{Path: "/", Query: q})
	q["a"] = "2"

	assert.Equal(t, "1", m.Location().Query["a"])
}

func TestFollow_KeepsPageForQueryChanges(t *testing.T) {
	table := NewTable(
		Route{Path: "/", Factory: factory("home")},
		Route{Path: "/gallery", Factory: factory("gallery")},
	)
	m := NewMemory(location.New("/gallery", nil))

	var pages []runtime.Component
	var keys []string
	stop := Follow(m, table, func(page runtime.Component, key string) {
		pages = append(pages, page)
		keys = append(keys, key)
	})

	m.Push(location.New("/gallery", location.Query{"overlay": "image-carousel"}))
	require.NoError(t, m.Replace(location.New("/gallery", location.Query{"overlay": "image-carousel", "index": "2"})))
	require.NoError(t, m.Navigate("/"))

	require.Len(t, pages, 4)
	assert.Same(t, pages[0], pages[1])
	assert.Same(t, pages[1], pages[2])
	assert.NotSame(t, pages[2], pages[3])
	assert.Equal(t, []string{"/gallery", "/gallery", "/gallery", "/"}, keys)

	stop()
	require.NoError(t, m.Navigate("/gallery"))
	assert.Len(t, pages, 4)
}

func TestFollow_SkipsUnroutablePaths(t *testing.T) {
	table := NewTable(Route{Path: "/", Factory: factory("home")})
	m := NewMemory(location.New("/", nil))

	calls := 0
	Follow(m, table, func(runtime.Component, string) { calls++ })
	require.NoError(t, m.Navigate("/missing"))

	assert.Equal(t, 1, calls)
}
