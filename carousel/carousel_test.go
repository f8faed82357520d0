package carousel

import (
	"testing"

	"github.com/HeyGarrison/cakeelizabethdotcom/testcomponents"
	"github.com/HeyGarrison/cakeelizabethdotcom/vdom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionOf(t *testing.T) {
	tests := []struct {
		name         string
		i, active, n int
		want         Position
	}{
		{"active", 2, 2, 5, Position{Active: true}},
		{"prev", 1, 2, 5, Position{Prev: true}},
		{"next", 3, 2, 5, Position{Next: true}},
		{"far", 4, 2, 5, Position{}},
		{"prev wraps", 4, 0, 5, Position{Prev: true}},
		{"next wraps", 0, 4, 5, Position{Next: true}},
		{"single item", 0, 0, 1, Position{Active: true}},
		{"two items both neighbours", 1, 0, 2, Position{Prev: true, Next: true}},
		{"invalid active", 0, 7, 5, Position{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PositionOf(tt.i, tt.active, tt.n))
		})
	}
}

func TestCarousel_RenderAndSelect(t *testing.T) {
	var picked []int
	c := &Carousel[string]{
		Index:         1,
		Items:         []string{"a", "b", "c", "d"},
		OnIndexChange: func(i int) { picked = append(picked, i) },
		Slide: func(item string, pos Position) *vdom.VNode {
			if !pos.Near() {
				return nil
			}
			return vdom.Paragraph(item, nil)
		},
	}

	out := testcomponents.NewTestRenderer(c).RenderRoot()

	slides := out.FindAll(func(v *vdom.VNode) bool { return v.Attr("aria-roledesc") == "slide" })
	require.Len(t, slides, 4)
	assert.Equal(t, "carousel-slide carousel-slide-active", slides[1].Attr("class"))
	assert.Len(t, slides[0].Children, 1)
	assert.Empty(t, slides[3].Children)

	dots := out.FindAll(func(v *vdom.VNode) bool { return v.Tag == "button" })
	require.Len(t, dots, 4)
	dots[1].OnClick()
	dots[3].OnClick()

	assert.Equal(t, []int{3}, picked)
}
