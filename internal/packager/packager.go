// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package packager

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"codeberg.org/oliverandrich/go-asset-tags/internal/assets"
	"github.com/google/uuid"
)

// ErrPackageNotFound is returned for package names missing from the manifest.
var ErrPackageNotFound = errors.New("package not found")

// Packager implements assets.Packager on top of a Manifest.
type Packager struct {
	manifest    *Manifest
	cacheBuster string
}

// New creates a Packager. Without a configured cache buster, a random one is
// generated so every process start invalidates client caches.
func New(m *Manifest) *Packager {
	buster := m.CacheBuster
	if buster == "" {
		buster = strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	}
	return &Packager{manifest: m, cacheBuster: buster}
}

// CacheBuster returns the query string appended to packaged URLs.
func (p *Packager) CacheBuster() string {
	return p.cacheBuster
}

// PackagePrefix returns the URL path under which packages are served.
func (p *Packager) PackagePrefix() string {
	return "/" + p.manifest.PackagePath + "/"
}

// IndividualURLs returns the source files of pkg as URLs, relative to the
// public root and in manifest order.
func (p *Packager) IndividualURLs(pkg assets.PackageName, kind assets.Kind) ([]string, error) {
	src, ok := p.manifest.sources(pkg, kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s package %q", ErrPackageNotFound, kind, pkg)
	}
	urls := make([]string, len(src))
	for i, file := range src {
		urls[i] = p.manifest.AssetHost + p.publicPath(file)
	}
	return urls, nil
}

// PackagedURL returns the URL of the cached package, e.g.
// /assets/app-datauri.css?3f2a9c.
func (p *Packager) PackagedURL(pkg assets.PackageName, kind assets.Kind, variant assets.Variant) (string, error) {
	if _, ok := p.manifest.sources(pkg, kind); !ok {
		return "", fmt.Errorf("%w: %s package %q", ErrPackageNotFound, kind, pkg)
	}
	return fmt.Sprintf("%s/%s/%s?%s",
		p.manifest.AssetHost, p.manifest.PackagePath, Filename(pkg, kind, variant), p.cacheBuster), nil
}

// Filename returns the package filename, e.g. app.css or app-mhtml.css.
func Filename(pkg assets.PackageName, kind assets.Kind, variant assets.Variant) string {
	if suffix := variant.Suffix(); suffix != "" {
		return fmt.Sprintf("%s-%s.%s", pkg, suffix, kind.Ext())
	}
	return fmt.Sprintf("%s.%s", pkg, kind.Ext())
}

// publicPath turns a source path into an absolute URL path by stripping the
// public root.
func (p *Packager) publicPath(file string) string {
	clean := path.Clean("/" + strings.TrimPrefix(file, "./"))
	root := path.Clean("/" + p.manifest.PublicRoot)
	if root != "/" && strings.HasPrefix(clean, root+"/") {
		return strings.TrimPrefix(clean, root)
	}
	return clean
}
