// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"codeberg.org/oliverandrich/go-asset-tags/internal/assets"
	"codeberg.org/oliverandrich/go-asset-tags/internal/templates"
	"github.com/labstack/echo/v4"
)

// resolverToContext puts the resolver into the request context so templ
// components can emit asset tags.
func resolverToContext(r *assets.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := templates.WithResolver(c.Request().Context(), r)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
