// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package testutil provides test helpers and fixtures.
package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/oliverandrich/go-asset-tags/internal/assets"
	"codeberg.org/oliverandrich/go-asset-tags/internal/packager"
	"codeberg.org/oliverandrich/go-asset-tags/internal/render"
	"codeberg.org/oliverandrich/go-asset-tags/internal/templates"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// Manifest is a small assets.yml with an "app" package of every kind and a
// stylesheet-only "admin" package.
const Manifest = `
cache_buster: v1
stylesheets:
  app: [public/css/app.css]
  admin: [public/css/admin.css]
javascripts:
  app: [public/js/a.js, public/js/b.js]
templates:
  app: [app/jst/list.jst]
`

// Modes used across tests.
var (
	ModeDevelopment = assets.Mode{}
	ModePackaged    = assets.Mode{PackageAssets: true}
	ModeEmbedded    = assets.Mode{PackageAssets: true, EmbedAssets: true, MHTMLEnabled: true}
)

// NewTestResolver builds a resolver over Manifest with the real packager and
// renderer.
func NewTestResolver(t *testing.T, mode assets.Mode) *assets.Resolver {
	t.Helper()
	m, err := packager.Parse([]byte(Manifest), ".yml")
	require.NoError(t, err)
	return assets.New(packager.New(m), render.New(), mode)
}

// NewTestContext returns a context carrying a resolver for mode.
func NewTestContext(t *testing.T, mode assets.Mode) context.Context {
	t.Helper()
	return templates.WithResolver(context.Background(), NewTestResolver(t, mode))
}

// NewEchoContext creates an Echo GET context for handler tests, with r in the
// request context.
func NewEchoContext(e *echo.Echo, r *assets.Resolver, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(templates.WithResolver(req.Context(), r))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}
