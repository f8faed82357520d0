package overlay

import (
	"strings"
	"unicode"

	"github.com/HeyGarrison/cakeelizabethdotcom/location"
)

// Image is one slide of the overlay.
type Image struct {
	Src string
	Alt string
}

// State is the overlay state derived from a location. It is recomputed on
// every render and never stored.
type State struct {
	Open          bool
	SelectedIndex int
}

// ResolveIndex maps a raw index parameter onto [0, count).
//
// The leading decimal integer of raw is used (surrounding whitespace, a sign
// and trailing characters are tolerated, so "7", " 7" and "7px" all read as
// 7). Its truncated remainder by count is taken, and a negative remainder is
// shifted up by count, so -1 selects the last image. Digits are folded into
// the remainder one at a time, so inputs of any length are safe.
//
// ok is false when raw has no leading integer or count < 1.
func ResolveIndex(raw string, count int) (index int, ok bool) {
	if count < 1 {
		return 0, false
	}

	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	mod, digits := 0, 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		mod = (mod*10 + int(s[digits]-'0')) % count
		digits++
	}
	if digits == 0 {
		return 0, false
	}

	if negative && mod != 0 {
		return count - mod, true
	}
	return mod, true
}

// DeriveState reads the overlay state for imageCount images from loc.
// A missing or non-numeric index selects slide 0.
func DeriveState(loc location.Location, rt Routing, imageCount int) State {
	raw, _ := loc.Query.Get(rt.IndexQueryParam)
	index, ok := ResolveIndex(raw, imageCount)
	if !ok {
		index = 0
	}
	return State{
		Open:          rt.IsOpen(loc),
		SelectedIndex: index,
	}
}
