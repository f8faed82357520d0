package content

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSlug(t *testing.T) {
	for _, ok := range []string{"home", "about-us", "cake-pricing-flavors", "page2"} {
		assert.NoError(t, ValidateSlug(ok), ok)
	}
	for _, bad := range []string{"", "About", "../etc", "a/b", "a b", "é"} {
		assert.ErrorIs(t, ValidateSlug(bad), ErrInvalidSlug, bad)
	}
}

func TestFSStore_GetAndList(t *testing.T) {
	mod := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	fsys := fstest.MapFS{
		"pages/home/content.toml":  {Data: []byte(`title = "Hi"`), ModTime: mod},
		"pages/about/content.toml": {Data: []byte(`title = "About"`)},
		"pages/empty/readme.txt":   {Data: []byte("no content here")},
		"pages/stray.toml":         {Data: []byte("x = 1")},
	}
	s := NewFSStore(fsys)
	ctx := context.Background()

	doc, err := s.Get(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, "home", doc.Slug)
	assert.Equal(t, `title = "Hi"`, string(doc.Raw))
	assert.True(t, mod.Equal(doc.ModTime))

	slugs, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"about", "home"}, slugs)
}

func TestFSStore_Errors(t *testing.T) {
	s := NewFSStore(fstest.MapFS{})

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Get(context.Background(), "../secret")
	assert.ErrorIs(t, err, ErrInvalidSlug)

	slugs, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, slugs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Get(ctx, "home")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_DecodesAndToleratesUnknownKeys(t *testing.T) {
	s := NewFSStore(fstest.MapFS{
		"pages/home/content.toml": {Data: []byte(`
title = "Cake"
tagline = "Fresh"
banner = "ignored"

[hero]
src = "/hero.jpg"
alt = "A cake"
`)},
	})

	home, err := Load[Home](context.Background(), s, "home")
	require.NoError(t, err)
	assert.Equal(t, "Cake", home.Title)
	assert.Equal(t, Image{Src: "/hero.jpg", Alt: "A cake"}, home.Hero)
}

func TestLoad_SyntaxError(t *testing.T) {
	s := NewFSStore(fstest.MapFS{
		"pages/home/content.toml": {Data: []byte(`title = `)},
	})

	_, err := Load[Home](context.Background(), s, "home")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `decode content "home"`)
}

func TestEmbedded_HasEveryPage(t *testing.T) {
	s := Embedded()
	ctx := context.Background()

	slugs, err := s.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{SlugAboutUs, SlugCakePricingFlavors, SlugContact, SlugHome}, slugs)

	pricing, err := Load[Pricing](ctx, s, SlugCakePricingFlavors)
	require.NoError(t, err)
	assert.NotEmpty(t, pricing.Prices)
	assert.NotEmpty(t, pricing.Flavors)
	require.NotEmpty(t, pricing.Gallery)
	for _, img := range pricing.Gallery {
		assert.NotEmpty(t, img.Src)
		assert.NotEmpty(t, img.Alt)
	}

	about, err := Load[AboutUs](ctx, s, SlugAboutUs)
	require.NoError(t, err)
	require.Len(t, about.Stories, 2)
	assert.Len(t, about.Stories[0].Images, 2)

	contact, err := Load[Contact](ctx, s, SlugContact)
	require.NoError(t, err)
	assert.Equal(t, "62701", contact.Details.Address.Zip)
	assert.Equal(t, "Send", contact.Form.Send)

	_, err = Load[Home](ctx, s, SlugHome)
	require.NoError(t, err)
}
