// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"fmt"
	"log/slog"

	"codeberg.org/oliverandrich/go-asset-tags/internal/assets"
	"codeberg.org/oliverandrich/go-asset-tags/internal/config"
	"codeberg.org/oliverandrich/go-asset-tags/internal/packager"
	"codeberg.org/oliverandrich/go-asset-tags/internal/render"
)

// Assets bundles the loaded manifest with the resolver built from it.
type Assets struct {
	Manifest *packager.Manifest
	Packager *packager.Packager
	Resolver *assets.Resolver
}

// LoadAssets reads the manifest and builds the resolver for the configured
// environment.
func LoadAssets(cfg *config.AssetsConfig) (*Assets, error) {
	m, err := packager.Load(cfg.Manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to load asset manifest %s: %w", cfg.Manifest, err)
	}

	p := packager.New(m)
	mode := m.Mode(cfg.Environment)
	slog.Debug("asset mode",
		"environment", cfg.Environment,
		"package_assets", mode.PackageAssets,
		"embed_assets", mode.EmbedAssets,
		"mhtml_enabled", mode.MHTMLEnabled,
		"cache_buster", p.CacheBuster(),
	)

	return &Assets{
		Manifest: m,
		Packager: p,
		Resolver: assets.New(p, render.New(), mode),
	}, nil
}
