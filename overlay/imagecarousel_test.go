package overlay

import (
	"testing"

	"github.com/HeyGarrison/cakeelizabethdotcom/events"
	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/router"
	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
	"github.com/HeyGarrison/cakeelizabethdotcom/testcomponents"
	"github.com/HeyGarrison/cakeelizabethdotcom/vdom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// galleryPage hosts the overlay the way a real page does: it only passes
// the images along and re-renders on every location change.
type galleryPage struct {
	runtime.ComponentBase
	images []Image
	keys   events.KeySource
}

func (p *galleryPage) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "page"},
		vdom.Heading(1, "Gallery", nil),
		r.RenderChild("overlay", &ImageCarouselOverlay{Images: p.images, Keys: p.keys}),
	)
}

func images(n int) []Image {
	out := make([]Image, n)
	for i := range out {
		out[i] = Image{Src: "/resources/cake-" + string(rune('a'+i)) + ".jpg", Alt: "cake"}
	}
	return out
}

type fixture struct {
	keys     *events.Dispatcher
	history  *router.Memory
	renderer *testcomponents.TestRenderer
}

func newFixture(t *testing.T, n int, start location.Location) *fixture {
	t.Helper()
	keys := events.NewDispatcher()
	history := router.NewMemory(start)
	r := testcomponents.NewTestRendererAt(&galleryPage{images: images(n), keys: keys}, history)
	r.RenderRoot()
	return &fixture{keys: keys, history: history, renderer: r}
}

func (f *fixture) overlay() *vdom.VNode {
	return f.renderer.GetCurrentVDOM().Find(func(v *vdom.VNode) bool {
		return v.Attr("role") == "dialog"
	})
}

func (f *fixture) control(class string) *vdom.VNode {
	wrap := f.renderer.GetCurrentVDOM().Find(func(v *vdom.VNode) bool { return v.Attr("class") == class })
	if wrap == nil {
		return nil
	}
	return wrap.Find(func(v *vdom.VNode) bool { return v.Tag == "a" })
}

func (f *fixture) selected(t *testing.T) int {
	t.Helper()
	st := DeriveState(f.history.Location(), ImageCarousel, 3)
	require.True(t, st.Open)
	return st.SelectedIndex
}

func openAt(path string, index string, extra location.Query) location.Location {
	q := location.Query{"overlay": "image-carousel", "index": index}
	return location.New(path, q.Merge(extra))
}

func TestOverlay_ClosedRendersNothing(t *testing.T) {
	f := newFixture(t, 3, location.New("/gallery", location.Query{"foo": "bar"}))

	assert.Nil(t, f.overlay())
	assert.Zero(t, f.keys.Listeners())
}

func TestOverlay_OpenWithoutImagesRendersNothing(t *testing.T) {
	f := newFixture(t, 0, openAt("/gallery", "0", nil))

	assert.Nil(t, f.overlay())
	assert.Zero(t, f.keys.Listeners())
}

func TestOverlay_ControlTargets(t *testing.T) {
	f := newFixture(t, 5, openAt("/gallery", "7", location.Query{"foo": "bar"}))

	require.NotNil(t, f.overlay())

	closeLink := f.control("image-carousel-close")
	prevLink := f.control("image-carousel-prev")
	nextLink := f.control("image-carousel-next")
	require.NotNil(t, closeLink)
	require.NotNil(t, prevLink)
	require.NotNil(t, nextLink)

	assert.Equal(t, "/gallery?foo=bar", closeLink.Attr("href"))
	assert.Equal(t, "/gallery?foo=bar&index=1&overlay=image-carousel", prevLink.Attr("href"))
	assert.Equal(t, "/gallery?foo=bar&index=3&overlay=image-carousel", nextLink.Attr("href"))
	assert.Equal(t, "replace", closeLink.Attr("data-nav"))
	assert.Equal(t, DefaultLabels.Close, closeLink.Attr("aria-label"))
}

func TestOverlay_OnlyNearSlidesLoadImages(t *testing.T) {
	f := newFixture(t, 5, openAt("/gallery", "2", nil))

	slides := f.renderer.GetCurrentVDOM().FindAll(func(v *vdom.VNode) bool {
		return v.Attr("aria-roledesc") == "slide"
	})
	require.Len(t, slides, 5)

	for i, s := range slides {
		img := s.Find(func(v *vdom.VNode) bool { return v.Tag == "img" })
		if i >= 1 && i <= 3 {
			assert.NotNil(t, img, "slide %d", i)
		} else {
			assert.Nil(t, img, "slide %d", i)
		}
	}

	backdrops := f.renderer.GetCurrentVDOM().FindAll(func(v *vdom.VNode) bool {
		return v.Attr("class") == "image-carousel-backdrop"
	})
	require.Len(t, backdrops, 1)
	assert.Equal(t, "/gallery", backdrops[0].Attr("href"))
}

func TestOverlay_ControlClicksReplace(t *testing.T) {
	f := newFixture(t, 3, openAt("/gallery", "0", nil))

	f.control("image-carousel-next").OnClick()
	assert.Equal(t, 1, f.selected(t))

	f.control("image-carousel-prev").OnClick()
	f.control("image-carousel-prev").OnClick()
	assert.Equal(t, 2, f.selected(t))

	f.control("image-carousel-close").OnClick()
	assert.False(t, DeriveState(f.history.Location(), ImageCarousel, 3).Open)
	assert.Nil(t, f.overlay())
	assert.Equal(t, 1, f.history.Len(), "overlay controls never push history")
}

func TestOverlay_DotJumpReplaces(t *testing.T) {
	f := newFixture(t, 4, openAt("/gallery", "0", location.Query{"foo": "bar"}))

	dots := f.renderer.GetCurrentVDOM().FindAll(func(v *vdom.VNode) bool {
		return v.Attr("class") == "carousel-dot"
	})
	require.Len(t, dots, 4)
	dots[3].OnClick()

	loc := f.history.Location()
	assert.Equal(t, "3", loc.Query["index"])
	assert.Equal(t, "bar", loc.Query["foo"])
	assert.Equal(t, 1, f.history.Len())
}

func TestOverlay_ArrowRightWraps(t *testing.T) {
	f := newFixture(t, 3, openAt("/gallery", "0", nil))

	var seen []int
	for range 3 {
		f.keys.Press(events.KeyArrowRight)
		seen = append(seen, f.selected(t))
		require.Equal(t, 1, f.keys.Listeners(), "exactly one listener while open")
	}

	assert.Equal(t, []int{1, 2, 0}, seen)
	assert.Equal(t, 1, f.history.Len())
}

func TestOverlay_ArrowLeftWraps(t *testing.T) {
	f := newFixture(t, 3, openAt("/gallery", "0", nil))

	f.keys.Press(events.KeyArrowLeft)

	assert.Equal(t, 2, f.selected(t))
}

func TestOverlay_UnboundKeysAreIgnored(t *testing.T) {
	f := newFixture(t, 3, openAt("/gallery", "1", nil))
	before := f.renderer.Renders()

	f.keys.Press("Enter")
	f.keys.Press("a")

	assert.Equal(t, before, f.renderer.Renders())
	assert.Equal(t, 1, f.selected(t))
}

func TestOverlay_EscapeClosesOnce(t *testing.T) {
	f := newFixture(t, 3, openAt("/gallery", "2", location.Query{"foo": "bar"}))
	require.Equal(t, 1, f.keys.Listeners())

	f.keys.Press(events.KeyEscape)

	loc := f.history.Location()
	assert.Equal(t, "/gallery", loc.Path)
	assert.Equal(t, location.Query{"foo": "bar"}, loc.Query)
	require.Zero(t, f.keys.Listeners(), "escape must detach its listener")

	renders := f.renderer.Renders()
	f.keys.Press(events.KeyEscape)
	assert.Equal(t, renders, f.renderer.Renders(), "second escape must not navigate")
}

func TestOverlay_NoListenerLeakAcrossRenders(t *testing.T) {
	f := newFixture(t, 3, openAt("/gallery", "0", nil))

	for range 10 {
		f.renderer.ReRender()
		require.Equal(t, 1, f.keys.Listeners())
	}

	require.NoError(t, f.history.Replace(location.New("/gallery", nil)))
	require.Zero(t, f.keys.Listeners())

	require.NoError(t, f.history.Replace(openAt("/gallery", "1", nil)))
	require.Equal(t, 1, f.keys.Listeners())
}

func TestOverlay_UnmountDetaches(t *testing.T) {
	f := newFixture(t, 3, openAt("/gallery", "0", nil))
	require.Equal(t, 1, f.keys.Listeners())

	f.renderer.Unmount()

	require.Zero(t, f.keys.Listeners())
}

func TestOverlay_FollowsBackAndForward(t *testing.T) {
	f := newFixture(t, 3, location.New("/gallery", nil))

	f.history.Push(ImageCarousel.Open(f.history.Location(), 1))
	require.NotNil(t, f.overlay())
	require.Equal(t, 1, f.keys.Listeners())

	require.True(t, f.history.Back())
	assert.Nil(t, f.overlay())
	assert.Zero(t, f.keys.Listeners())

	require.True(t, f.history.Forward())
	assert.NotNil(t, f.overlay())
	assert.Equal(t, 1, f.selected(t))
}

func TestOverlay_LabelsOverride(t *testing.T) {
	c := &ImageCarouselOverlay{
		Images: images(2),
		Labels: Labels{Close: "Cerrar"},
	}
	r := testcomponents.NewTestRendererAt(c, router.NewMemory(openAt("/", "0", nil)))
	out := r.RenderRoot()

	closeLink := out.Find(func(v *vdom.VNode) bool { return v.Attr("aria-label") == "Cerrar" })
	require.NotNil(t, closeLink)
	assert.Equal(t, DefaultLabels.Dialog, out.Attr("aria-label"))
}
