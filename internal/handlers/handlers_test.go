// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/oliverandrich/go-asset-tags/internal/assets"
	"codeberg.org/oliverandrich/go-asset-tags/internal/handlers"
	"codeberg.org/oliverandrich/go-asset-tags/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var embedded = testutil.ModeEmbedded

func serve(t *testing.T, mode assets.Mode, target string, handler func(*handlers.Handlers) echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	r := testutil.NewTestResolver(t, mode)
	h := handlers.New(r, []string{"app"}, []string{"app"})

	c, rec := testutil.NewEchoContext(echo.New(), r, target)
	return rec, handler(h)(c)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	return he.Code
}

func TestHealth(t *testing.T) {
	rec, err := serve(t, assets.Mode{}, "/health", func(h *handlers.Handlers) echo.HandlerFunc { return h.Health })

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestPreview(t *testing.T) {
	rec, err := serve(t, assets.Mode{PackageAssets: true}, "/", func(h *handlers.Handlers) echo.HandlerFunc { return h.Preview })

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<!doctype html>")
	assert.Contains(t, rec.Body.String(), `href="/assets/app.css?v1"`)
	assert.Contains(t, rec.Body.String(), `src="/assets/app.js?v1"`)
}

func TestStylesheetTags_Embedded(t *testing.T) {
	rec, err := serve(t, embedded, "/tags/stylesheets?p=app&p=admin",
		func(h *handlers.Handlers) echo.HandlerFunc { return h.StylesheetTags })

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, assets.DataURIStart)
	assert.Contains(t, body, "/assets/admin-datauri.css?v1")
	assert.Contains(t, body, "/assets/admin-mhtml.css?v1")
}

func TestStylesheetTags_OptionsFromQuery(t *testing.T) {
	rec, err := serve(t, embedded, "/tags/stylesheets?p=app&embed_images=false&media=print",
		func(h *handlers.Handlers) echo.HandlerFunc { return h.StylesheetTags })

	require.NoError(t, err)
	assert.Equal(t,
		`<link href="/assets/app.css?v1" media="print" rel="stylesheet" type="text/css" />`,
		rec.Body.String())
}

func TestStylesheetTags_UnknownPackage(t *testing.T) {
	_, err := serve(t, embedded, "/tags/stylesheets?p=nope",
		func(h *handlers.Handlers) echo.HandlerFunc { return h.StylesheetTags })

	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestJavascriptTags(t *testing.T) {
	rec, err := serve(t, assets.Mode{}, "/tags/javascripts?p=app",
		func(h *handlers.Handlers) echo.HandlerFunc { return h.JavascriptTags })

	require.NoError(t, err)
	assert.Equal(t, `<script src="/js/a.js" type="text/javascript"></script>`+"\n"+
		`<script src="/js/b.js" type="text/javascript"></script>`, rec.Body.String())
}

func TestTemplateTags_Gone(t *testing.T) {
	_, err := serve(t, embedded, "/tags/templates?p=app",
		func(h *handlers.Handlers) echo.HandlerFunc { return h.TemplateTags })

	assert.Equal(t, http.StatusGone, statusOf(t, err))
}

func TestPaths(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		handler  func(*handlers.Handlers) echo.HandlerFunc
		expected string
	}{
		{
			name:     "stylesheets",
			target:   "/paths/stylesheets?p=app",
			handler:  func(h *handlers.Handlers) echo.HandlerFunc { return h.StylesheetPaths },
			expected: `{"paths":["/assets/app-datauri.css?v1","/assets/app-mhtml.css?v1"]}`,
		},
		{
			name:     "stylesheets disabled",
			target:   "/paths/stylesheets?p=app&embed_assets=false",
			handler:  func(h *handlers.Handlers) echo.HandlerFunc { return h.StylesheetPaths },
			expected: `{"paths":["/assets/app.css?v1"]}`,
		},
		{
			name:     "javascripts",
			target:   "/paths/javascripts?p=app",
			handler:  func(h *handlers.Handlers) echo.HandlerFunc { return h.JavascriptPaths },
			expected: `{"paths":["/assets/app.js?v1"]}`,
		},
		{
			name:     "templates",
			target:   "/paths/templates?p=app",
			handler:  func(h *handlers.Handlers) echo.HandlerFunc { return h.TemplatePaths },
			expected: `{"paths":["/assets/app.jst?v1"]}`,
		},
		{
			name:     "no packages",
			target:   "/paths/javascripts",
			handler:  func(h *handlers.Handlers) echo.HandlerFunc { return h.JavascriptPaths },
			expected: `{"paths":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := serve(t, embedded, tt.target, tt.handler)

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.expected, rec.Body.String())
		})
	}
}

func TestStylesheetTags_RejectsUnsafeAttributes(t *testing.T) {
	tests := []struct {
		name   string
		mode   assets.Mode
		target string
	}{
		{"event handler", testutil.ModePackaged, "/tags/stylesheets?p=app&onload=alert(document.cookie)"},
		{"name with space", testutil.ModePackaged, "/tags/stylesheets?p=app&x%20onerror=alert(1)%20y"},
		{"embedded mode", embedded, "/tags/stylesheets?p=app&onerror=alert(1)"},
		{"development mode", testutil.ModeDevelopment, "/tags/stylesheets?p=app&OnLoad=alert(1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := serve(t, tt.mode, tt.target,
				func(h *handlers.Handlers) echo.HandlerFunc { return h.StylesheetTags })

			assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
			assert.NotContains(t, rec.Body.String(), "alert")
		})
	}
}
