// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/oliverandrich/go-asset-tags/internal/assets"
	"codeberg.org/oliverandrich/go-asset-tags/internal/templates"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestIsSourceAsset(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/stylesheets/app.css", true},
		{"/javascripts/app.js", true},
		{"/jst/list.jst", true},
		{"/images/logo.png", false},
		{"/health", false},
		{"/stylesheets/app.css.map", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, isSourceAsset(tt.path))
		})
	}
}

func TestStaticCacheHeaders(t *testing.T) {
	e := echo.New()
	e.Use(staticCacheHeaders("/assets/", "v42"))
	e.GET("/*", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	tests := []struct {
		name     string
		target   string
		expected string
	}{
		{"current package gets immutable cache", "/assets/app.css?v42", "public, max-age=31536000, immutable"},
		{"stale package is revalidated", "/assets/app.css?v41", "no-cache"},
		{"package without buster is revalidated", "/assets/app.js", "no-cache"},
		{"source asset never cached", "/stylesheets/app.css", "no-cache, no-store, must-revalidate"},
		{"other files untouched", "/images/logo.png", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Header().Get("Cache-Control"))
		})
	}
}

func TestResolverToContext(t *testing.T) {
	r := assets.New(nil, nil, assets.Mode{PackageAssets: true})
	e := echo.New()
	e.Use(resolverToContext(r))

	var got *assets.Resolver
	e.GET("/", func(c echo.Context) error {
		got = templates.Resolver(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Same(t, r, got)
}
