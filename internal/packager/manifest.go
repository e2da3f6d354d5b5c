// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package packager resolves asset package names to URLs using an assets
// manifest (assets.yml or assets.toml).
package packager

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/oliverandrich/go-asset-tags/internal/assets"
	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// Values accepted by the package_assets setting.
const (
	PackageOn     = "on"
	PackageOff    = "off"
	PackageAlways = "always"
)

// Values accepted by the embed_assets setting.
const (
	EmbedOn      = "on"
	EmbedOff     = "off"
	EmbedDataURI = "datauri"
)

// Environments in which package_assets "on" serves individual sources.
const (
	DevelopmentEnv = "development"
	TestEnv        = "test"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported manifest format")
	ErrInvalidManifest   = errors.New("invalid manifest")
)

// Manifest is the parsed assets configuration.
type Manifest struct { //nolint:govet // fieldalignment not critical for config structs
	PackageAssets string `yaml:"package_assets" toml:"package_assets"`
	EmbedAssets   string `yaml:"embed_assets" toml:"embed_assets"`
	PackagePath   string `yaml:"package_path" toml:"package_path"`
	PublicRoot    string `yaml:"public_root" toml:"public_root"`
	AssetHost     string `yaml:"asset_host" toml:"asset_host"`
	CacheBuster   string `yaml:"cache_buster" toml:"cache_buster"`

	Javascripts map[string][]string `yaml:"javascripts" toml:"javascripts"`
	Stylesheets map[string][]string `yaml:"stylesheets" toml:"stylesheets"`
	Templates   map[string][]string `yaml:"templates" toml:"templates"`
}

// Load reads and validates the manifest at path. The format is chosen by the
// file extension.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes manifest data. ext is ".yml", ".yaml" or ".toml".
func Parse(data []byte, ext string) (*Manifest, error) {
	m := &Manifest{}
	switch strings.ToLower(ext) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, m); err != nil {
			return nil, fmt.Errorf("failed to parse yaml manifest: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), m); err != nil {
			return nil, fmt.Errorf("failed to parse toml manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	m.applyDefaults()
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manifest) applyDefaults() {
	m.PackageAssets = normalizeSwitch(m.PackageAssets)
	m.EmbedAssets = normalizeSwitch(m.EmbedAssets)
	if m.PackageAssets == "" {
		m.PackageAssets = PackageOn
	}
	if m.EmbedAssets == "" {
		m.EmbedAssets = EmbedOff
	}
	if m.PackagePath == "" {
		m.PackagePath = "assets"
	}
	if m.PublicRoot == "" {
		m.PublicRoot = "public"
	}
	m.PackagePath = strings.Trim(m.PackagePath, "/")
	m.AssetHost = strings.TrimSuffix(m.AssetHost, "/")
}

// normalizeSwitch maps boolean spellings to on and off. YAML booleans arrive
// here as "true" and "false".
func normalizeSwitch(v string) string {
	switch strings.ToLower(v) {
	case "true":
		return "on"
	case "false":
		return "off"
	}
	return v
}

func (m *Manifest) validate() error {
	switch m.PackageAssets {
	case PackageOn, PackageOff, PackageAlways:
	default:
		return fmt.Errorf("%w: package_assets must be on, off or always, got %q", ErrInvalidManifest, m.PackageAssets)
	}
	switch m.EmbedAssets {
	case EmbedOn, EmbedOff, EmbedDataURI:
	default:
		return fmt.Errorf("%w: embed_assets must be on, off or datauri, got %q", ErrInvalidManifest, m.EmbedAssets)
	}
	if m.PackagePath == "" {
		return fmt.Errorf("%w: package_path must not be the site root", ErrInvalidManifest)
	}
	return nil
}

// Mode derives the resolution mode for the given environment.
func (m *Manifest) Mode(env string) assets.Mode {
	packaging := m.PackageAssets == PackageAlways ||
		(m.PackageAssets == PackageOn && env != DevelopmentEnv && env != TestEnv)
	return assets.Mode{
		PackageAssets: packaging,
		EmbedAssets:   m.EmbedAssets == EmbedOn || m.EmbedAssets == EmbedDataURI,
		MHTMLEnabled:  m.EmbedAssets == EmbedOn,
	}
}

// sources returns the source list for pkg of the given kind.
func (m *Manifest) sources(pkg assets.PackageName, kind assets.Kind) ([]string, bool) {
	var set map[string][]string
	switch kind {
	case assets.CSS:
		set = m.Stylesheets
	case assets.JS:
		set = m.Javascripts
	case assets.Template:
		set = m.Templates
	}
	src, ok := set[string(pkg)]
	return src, ok
}
