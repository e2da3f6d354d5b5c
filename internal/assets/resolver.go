// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package assets

import (
	"fmt"
	"strings"
)

// Resolver emits tags and paths for asset packages. It holds no mutable state
// and is safe for concurrent use.
type Resolver struct {
	packager Packager
	renderer TagRenderer
	mode     Mode
}

// New creates a Resolver.
func New(p Packager, r TagRenderer, mode Mode) *Resolver {
	return &Resolver{packager: p, renderer: r, mode: mode}
}

// Mode returns the resolution mode.
func (r *Resolver) Mode() Mode {
	return r.mode
}

// WithMode returns a copy of r using mode.
func (r *Resolver) WithMode(mode Mode) *Resolver {
	return &Resolver{packager: r.packager, renderer: r.renderer, mode: mode}
}

// Bundle is the result of stylesheet resolution. Either URLs is set, or
// Embedded is true and DataURI and IE hold the two conditional groups.
type Bundle struct {
	URLs     []string
	DataURI  []string
	IE       []string
	Embedded bool
}

// Paths flattens the bundle: data-URI URLs first, then the IE URLs.
func (b *Bundle) Paths() []string {
	if !b.Embedded {
		return b.URLs
	}
	paths := make([]string, 0, len(b.DataURI)+len(b.IE))
	paths = append(paths, b.DataURI...)
	return append(paths, b.IE...)
}

// ResolveStylesheets picks individual, packaged, or embedded-image URLs for
// the given packages.
func (r *Resolver) ResolveStylesheets(pkgs []PackageName, opts Options) (*Bundle, error) {
	if !r.mode.PackageAssets {
		urls, err := r.individual(pkgs, CSS)
		if err != nil {
			return nil, err
		}
		return &Bundle{URLs: urls}, nil
	}

	if opts.embeddingDisabled() || !r.mode.EmbedAssets {
		urls, err := r.packaged(pkgs, CSS, Plain)
		if err != nil {
			return nil, err
		}
		return &Bundle{URLs: urls}, nil
	}

	datauri, err := r.packaged(pkgs, CSS, DataURI)
	if err != nil {
		return nil, err
	}
	ieVariant := Plain
	if r.mode.MHTMLEnabled {
		ieVariant = MHTML
	}
	ie, err := r.packaged(pkgs, CSS, ieVariant)
	if err != nil {
		return nil, err
	}
	return &Bundle{DataURI: datauri, IE: ie, Embedded: true}, nil
}

// IncludeStylesheets returns link tags for the stylesheet packages.
func (r *Resolver) IncludeStylesheets(pkgs []PackageName, opts Options) (string, error) {
	b, err := r.ResolveStylesheets(pkgs, opts)
	if err != nil {
		return "", err
	}
	if !b.Embedded {
		return r.renderer.StylesheetTags(b.URLs, opts.Attributes)
	}

	datauriTags, err := r.renderer.StylesheetTags(b.DataURI, opts.Attributes)
	if err != nil {
		return "", err
	}
	ieTags, err := r.renderer.StylesheetTags(b.IE, opts.Attributes)
	if err != nil {
		return "", err
	}
	return strings.Join([]string{
		DataURIStart, datauriTags, DataURIEnd,
		MHTMLStart, ieTags, MHTMLEnd,
	}, "\n"), nil
}

// StylesheetPaths returns the stylesheet URLs IncludeStylesheets would link.
func (r *Resolver) StylesheetPaths(pkgs []PackageName, opts Options) ([]string, error) {
	b, err := r.ResolveStylesheets(pkgs, opts)
	if err != nil {
		return nil, err
	}
	return b.Paths(), nil
}

// JavascriptPaths returns the packaged script URL per package, or the
// individual source URLs when packaging is off.
func (r *Resolver) JavascriptPaths(pkgs []PackageName) ([]string, error) {
	if r.mode.PackageAssets {
		return r.packaged(pkgs, JS, Plain)
	}
	return r.individual(pkgs, JS)
}

// IncludeJavascripts returns script tags for the javascript packages.
func (r *Resolver) IncludeJavascripts(pkgs []PackageName) (string, error) {
	urls, err := r.JavascriptPaths(pkgs)
	if err != nil {
		return "", err
	}
	return r.renderer.ScriptTags(urls)
}

// TemplatePaths returns the compiled template URL per package. Templates are
// always packaged since they must be compiled, even in development.
func (r *Resolver) TemplatePaths(pkgs []PackageName) ([]string, error) {
	return r.packaged(pkgs, Template, Plain)
}

// IncludeTemplates always fails. Template packages were folded into
// javascript packages.
func (r *Resolver) IncludeTemplates(_ []PackageName) (string, error) {
	return "", &DeprecatedFeatureError{
		Feature: "IncludeTemplates",
		Advice:  templatesAdvice,
		Err:     ErrTemplatesDeprecated,
	}
}

func (r *Resolver) individual(pkgs []PackageName, kind Kind) ([]string, error) {
	var urls []string
	for _, pkg := range pkgs {
		u, err := r.packager.IndividualURLs(pkg, kind)
		if err != nil {
			return nil, fmt.Errorf("resolve %s sources of %q: %w", kind, pkg, err)
		}
		urls = append(urls, u...)
	}
	return urls, nil
}

func (r *Resolver) packaged(pkgs []PackageName, kind Kind, variant Variant) ([]string, error) {
	urls := make([]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		u, err := r.packager.PackagedURL(pkg, kind, variant)
		if err != nil {
			return nil, fmt.Errorf("resolve %s package %q: %w", kind, pkg, err)
		}
		urls = append(urls, u)
	}
	return urls, nil
}
