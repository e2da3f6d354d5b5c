// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"net/http"

	"codeberg.org/oliverandrich/go-asset-tags/internal/assets"
	"codeberg.org/oliverandrich/go-asset-tags/internal/packager"
	"codeberg.org/oliverandrich/go-asset-tags/internal/render"
	"github.com/labstack/echo/v4"
)

// httpError maps resolver errors to HTTP errors.
func httpError(err error) error {
	switch {
	case errors.Is(err, packager.ErrPackageNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error()).SetInternal(err)
	case errors.Is(err, render.ErrInvalidAttribute):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	case assets.IsDeprecated(err):
		return echo.NewHTTPError(http.StatusGone, err.Error()).SetInternal(err)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
}
