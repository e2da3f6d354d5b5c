// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"net/http"
	"net/url"

	"codeberg.org/oliverandrich/go-asset-tags/internal/assets"
	"codeberg.org/oliverandrich/go-asset-tags/internal/templates"
	"github.com/labstack/echo/v4"
)

// packageParam is the query parameter naming packages, repeatable.
const packageParam = "p"

// Handlers contains all HTTP handlers.
type Handlers struct {
	resolver    *assets.Resolver
	stylesheets []string
	javascripts []string
}

// New creates a new Handlers instance. stylesheets and javascripts are the
// packages linked from the preview page.
func New(resolver *assets.Resolver, stylesheets, javascripts []string) *Handlers {
	return &Handlers{resolver: resolver, stylesheets: stylesheets, javascripts: javascripts}
}

// Health returns the health status.
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Preview renders a page linking every configured package.
func (h *Handlers) Preview(c echo.Context) error {
	return Render(c, http.StatusOK, templates.Preview("Asset preview", h.stylesheets, h.javascripts))
}

// StylesheetTags renders link tags. Query parameters other than p are
// options: embed_assets and embed_images can disable embedding, the rest
// become tag attributes.
func (h *Handlers) StylesheetTags(c echo.Context) error {
	pkgs, opts := packagesAndOptions(c.QueryParams())
	html, err := h.resolver.IncludeStylesheets(pkgs, opts)
	if err != nil {
		return httpError(err)
	}
	return c.HTML(http.StatusOK, html)
}

// JavascriptTags renders script tags.
func (h *Handlers) JavascriptTags(c echo.Context) error {
	pkgs, _ := packagesAndOptions(c.QueryParams())
	html, err := h.resolver.IncludeJavascripts(pkgs)
	if err != nil {
		return httpError(err)
	}
	return c.HTML(http.StatusOK, html)
}

// TemplateTags always answers 410 Gone.
func (h *Handlers) TemplateTags(c echo.Context) error {
	pkgs, _ := packagesAndOptions(c.QueryParams())
	_, err := h.resolver.IncludeTemplates(pkgs)
	return httpError(err)
}

type pathsResponse struct {
	Paths []string `json:"paths"`
}

// StylesheetPaths returns the stylesheet URLs as JSON.
func (h *Handlers) StylesheetPaths(c echo.Context) error {
	pkgs, opts := packagesAndOptions(c.QueryParams())
	paths, err := h.resolver.StylesheetPaths(pkgs, opts)
	return renderPaths(c, paths, err)
}

// JavascriptPaths returns the javascript URLs as JSON.
func (h *Handlers) JavascriptPaths(c echo.Context) error {
	pkgs, _ := packagesAndOptions(c.QueryParams())
	paths, err := h.resolver.JavascriptPaths(pkgs)
	return renderPaths(c, paths, err)
}

// TemplatePaths returns the compiled template URLs as JSON.
func (h *Handlers) TemplatePaths(c echo.Context) error {
	pkgs, _ := packagesAndOptions(c.QueryParams())
	paths, err := h.resolver.TemplatePaths(pkgs)
	return renderPaths(c, paths, err)
}

func renderPaths(c echo.Context, paths []string, err error) error {
	if err != nil {
		return httpError(err)
	}
	if paths == nil {
		paths = []string{}
	}
	return c.JSON(http.StatusOK, pathsResponse{Paths: paths})
}

// packagesAndOptions splits the query into package names and options. For
// repeated option keys the first value wins.
func packagesAndOptions(q url.Values) ([]assets.PackageName, assets.Options) {
	pkgs := assets.Names(q[packageParam]...)
	raw := make(map[string]string, len(q))
	for k, v := range q {
		if k == packageParam || len(v) == 0 {
			continue
		}
		raw[k] = v[0]
	}
	return pkgs, assets.ParseOptions(raw)
}
