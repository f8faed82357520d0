package site

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/HeyGarrison/cakeelizabethdotcom/content"
	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/locale"
	"github.com/HeyGarrison/cakeelizabethdotcom/pages"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, assets fstest.MapFS) *Server {
	t.Helper()
	bundle, err := locale.NewBundle()
	require.NoError(t, err)
	text, err := locale.New(bundle, "en")
	require.NoError(t, err)

	opts := Options{
		Deps:   pages.Deps{Store: content.Embedded(), Text: text},
		Logger: log.New(io.Discard),
	}
	if assets != nil {
		opts.Assets = assets
	}
	s, err := New(opts)
	require.NoError(t, err)
	return s
}

func get(t *testing.T, h http.Handler, target string) (*http.Response, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	res := rec.Result()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(body)
}

func TestServer_Pages(t *testing.T) {
	h := newServer(t, nil).Handler()

	tests := []struct {
		target string
		status int
		title  string
	}{
		{"/", http.StatusOK, "<title>Cake Elizabeth</title>"},
		{"/about-us", http.StatusOK, "<title>About Us | Cake Elizabeth</title>"},
		{"/contact", http.StatusOK, "<title>Contact | Cake Elizabeth</title>"},
		{"/cake-pricing-flavors", http.StatusOK, "<title>Cake Pricing &amp; Flavors | Cake Elizabeth</title>"},
		{"/missing", http.StatusNotFound, "<title>Page not found | Cake Elizabeth</title>"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			res, body := get(t, h, tt.target)
			assert.Equal(t, tt.status, res.StatusCode)
			assert.Equal(t, "text/html; charset=utf-8", res.Header.Get("Content-Type"))
			assert.Contains(t, body, tt.title)
			assert.Contains(t, body, `<html lang="en">`)
			assert.NotContains(t, body, "app.wasm")
		})
	}
}

func TestServer_OverlayRenderedFromURL(t *testing.T) {
	h := newServer(t, nil).Handler()

	_, closed := get(t, h, "/cake-pricing-flavors")
	assert.NotContains(t, closed, `role="dialog"`)

	_, open := get(t, h, "/cake-pricing-flavors?overlay=image-carousel&index=-1&foo=bar")
	assert.Contains(t, open, `role="dialog"`)
	assert.Contains(t, open, `href="/cake-pricing-flavors?foo=bar"`)
	assert.Contains(t, open, `href="/cake-pricing-flavors?foo=bar&amp;index=3&amp;overlay=image-carousel"`)
	assert.Contains(t, open, `href="/cake-pricing-flavors?foo=bar&amp;index=5&amp;overlay=image-carousel"`)
}

func TestServer_MethodNotAllowed(t *testing.T) {
	h := newServer(t, nil).Handler()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, HEAD", rec.Header().Get("Allow"))
}

func TestServer_HealthAndRequestIDs(t *testing.T) {
	s := newServer(t, nil)
	h := s.Handler()

	res, body := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "ok\n", body)
	_, err := uuid.Parse(res.Header.Get(RequestIDHeader))
	assert.NoError(t, err)

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, given)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, given, rec.Header().Get(RequestIDHeader))

	assert.EqualValues(t, 2, s.Requests())
}

func TestServer_Assets(t *testing.T) {
	s := newServer(t, fstest.MapFS{
		"app.wasm": {Data: []byte("\x00asm")},
		"site.txt": {Data: []byte("hello")},
	})
	h := s.Handler()

	res, body := get(t, h, "/resources/site.txt")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "hello", body)

	_, page := get(t, h, "/")
	assert.Contains(t, page, `fetch("/resources/app.wasm")`)
}

func TestRender_RefusesNavigation(t *testing.T) {
	r := &staticRenderer{loc: location.New("/", nil)}
	assert.ErrorIs(t, r.Navigate("/x"), ErrServerNavigation)
	assert.ErrorIs(t, r.Replace(location.New("/y", nil)), ErrServerNavigation)
}

func TestBuild_WritesEveryPage(t *testing.T) {
	s := newServer(t, fstest.MapFS{"img/cake.jpg": {Data: []byte("jpg")}})
	out := t.TempDir()

	files, err := s.Build(context.Background(), out)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"index.html",
		"about-us/index.html",
		"cake-pricing-flavors/index.html",
		"contact/index.html",
		"404.html",
		"resources/img/cake.jpg",
	}, files)

	notFound, err := os.ReadFile(filepath.Join(out, "404.html"))
	require.NoError(t, err)
	assert.Contains(t, string(notFound), "We could not find /404.")

	pricing, err := os.ReadFile(filepath.Join(out, "cake-pricing-flavors", "index.html"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(pricing), `class="gallery-thumb"`))
}

func TestBuild_Cancelled(t *testing.T) {
	s := newServer(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Build(ctx, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}
