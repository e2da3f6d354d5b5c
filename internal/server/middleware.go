// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"fmt"
	"log/slog"
	"strings"

	"codeberg.org/oliverandrich/go-asset-tags/internal/config"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func setupMiddleware(e *echo.Echo, cfg *config.Config, a *Assets) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger())
	e.Use(middleware.Secure())
	e.Use(middleware.Gzip())
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dM", cfg.Server.MaxBodySize)))
	e.Use(staticCacheHeaders(a.Packager.PackagePrefix(), a.Packager.CacheBuster()))
	e.Use(resolverToContext(a.Resolver))
}

// requestLogger returns middleware that logs requests using slog.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}

			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				slog.LogAttrs(c.Request().Context(), slog.LevelError, "request", attrs...)
			} else {
				slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", attrs...)
			}

			return nil
		},
	})
}

// staticCacheHeaders adds cache headers for asset requests. Packages requested
// with the current cache buster never change and are cached for a year.
// Everything else under the package prefix, like a package requested with a
// stale cache buster, must be revalidated.
func staticCacheHeaders(packagePrefix, cacheBuster string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if strings.HasPrefix(req.URL.Path, packagePrefix) {
				if req.URL.RawQuery == cacheBuster {
					c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
				} else {
					c.Response().Header().Set("Cache-Control", "no-cache")
				}
			} else if isSourceAsset(req.URL.Path) {
				// Individual sources change while developing
				c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			}
			return next(c)
		}
	}
}

// isSourceAsset reports whether the path points at a stylesheet, script or
// template file.
func isSourceAsset(path string) bool {
	for _, ext := range []string{".css", ".js", ".jst"} {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
