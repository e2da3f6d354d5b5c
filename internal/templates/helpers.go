// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package templates provides templ components that emit asset tags.
package templates

import (
	"context"
	"errors"
	"io"

	"codeberg.org/oliverandrich/go-asset-tags/internal/assets"
	"codeberg.org/oliverandrich/go-asset-tags/internal/ctxkeys"
	"github.com/a-h/templ"
)

// ErrNoResolver is returned when a component renders without a resolver in
// its context.
var ErrNoResolver = errors.New("no asset resolver in context")

// WithResolver returns a copy of ctx carrying r.
func WithResolver(ctx context.Context, r *assets.Resolver) context.Context {
	return context.WithValue(ctx, ctxkeys.Resolver{}, r)
}

// Resolver returns the resolver from the context, or nil.
func Resolver(ctx context.Context) *assets.Resolver {
	if r, ok := ctx.Value(ctxkeys.Resolver{}).(*assets.Resolver); ok {
		return r
	}
	return nil
}

// Stylesheets renders the stylesheet tags for the given packages.
//
//	@templates.Stylesheets(map[string]string{"media": "all"}, "app", "admin")
func Stylesheets(opts map[string]string, packages ...string) templ.Component {
	return markup(func(r *assets.Resolver) (string, error) {
		return r.IncludeStylesheets(assets.Names(packages...), assets.ParseOptions(opts))
	})
}

// Javascripts renders the script tags for the given packages.
func Javascripts(packages ...string) templ.Component {
	return markup(func(r *assets.Resolver) (string, error) {
		return r.IncludeJavascripts(assets.Names(packages...))
	})
}

// Templates always fails to render. JST belongs in javascript packages.
func Templates(packages ...string) templ.Component {
	return markup(func(r *assets.Resolver) (string, error) {
		return r.IncludeTemplates(assets.Names(packages...))
	})
}

func markup(fn func(r *assets.Resolver) (string, error)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		r := Resolver(ctx)
		if r == nil {
			return ErrNoResolver
		}
		html, err := fn(r)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, html)
		return err
	})
}
