package overlay

import (
	"testing"

	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/stretchr/testify/assert"
)

func TestComputeTransitions_Close(t *testing.T) {
	loc := location.New("/gallery", location.Query{"overlay": "image-carousel", "index": "2", "foo": "bar"})

	tr := ComputeTransitions(loc, ImageCarousel, 2)

	assert.Equal(t, "/gallery", tr.Close.Path)
	assert.Equal(t, location.Query{"foo": "bar"}, tr.Close.Query)
	assert.Equal(t, location.Query{"overlay": "image-carousel", "index": "2", "foo": "bar"}, loc.Query, "current location must not be mutated")
}

func TestComputeTransitions_CloseIsIdempotent(t *testing.T) {
	locs := []location.Location{
		location.New("/", nil),
		location.New("/a", location.Query{"foo": "bar"}),
		location.New("/b", location.Query{"overlay": "image-carousel", "index": "9"}),
		location.New("/c", location.Query{"index": "1", "x": "y"}),
	}

	for _, loc := range locs {
		once := ImageCarousel.Close(loc)
		twice := ImageCarousel.Close(once)
		assert.True(t, once.Equal(twice), "close(close(%s)) = %s", loc, twice)
	}
}

func TestComputeTransitions_PrevNextAreUnwrapped(t *testing.T) {
	loc := location.New("/gallery", location.Query{"overlay": "image-carousel", "index": "0"})

	tr := ComputeTransitions(loc, ImageCarousel, 0)

	assert.Equal(t, "-1", tr.Prev.Query["index"])
	assert.Equal(t, "1", tr.Next.Query["index"])
	assert.Equal(t, 4, DeriveState(tr.Prev, ImageCarousel, 5).SelectedIndex)
}

func TestTransitions_PreserveUnrelatedParams(t *testing.T) {
	loc := location.New("/cake-pricing-flavors", location.Query{
		"overlay": "image-carousel",
		"index":   "1",
		"utm":     "spring",
		"foo":     "bar",
	})
	tr := ComputeTransitions(loc, ImageCarousel, 1)

	for name, target := range map[string]location.Location{
		"close": tr.Close,
		"prev":  tr.Prev,
		"next":  tr.Next,
		"jump":  ImageCarousel.Jump(loc, 4),
	} {
		assert.Equal(t, loc.Path, target.Path, name)
		assert.Equal(t, "spring", target.Query["utm"], name)
		assert.Equal(t, "bar", target.Query["foo"], name)
	}
}

func TestRouting_OpenRoundTrip(t *testing.T) {
	const count = 5
	base := location.New("/gallery", location.Query{"foo": "bar"})

	for i := -12; i <= 12; i++ {
		st := DeriveState(ImageCarousel.Open(base, i), ImageCarousel, count)
		want, _ := ResolveIndex(itoa(i), count)

		assert.True(t, st.Open)
		assert.Equal(t, want, st.SelectedIndex, "open(%d)", i)
	}
	assert.Equal(t, location.Query{"foo": "bar"}, base.Query)
}

func itoa(i int) string {
	return ImageCarousel.Query(i)[ImageCarousel.IndexQueryParam]
}
