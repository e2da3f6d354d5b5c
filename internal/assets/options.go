// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package assets

import "maps"

// Option keys consumed by the resolver. Every other key is forwarded to the
// renderer as a tag attribute.
const (
	OptEmbedAssets = "embed_assets"
	OptEmbedImages = "embed_images"
)

// Options are per-call overrides for stylesheet resolution.
type Options struct {
	// EmbedAssets and EmbedImages can only disable embedding when explicitly
	// false. A true value does not enable it if the Mode has it off.
	EmbedAssets *bool
	EmbedImages *bool

	// Attributes are passed through unchanged to the TagRenderer.
	Attributes map[string]string
}

// ParseOptions builds Options from a loose key/value map. The embed keys are
// removed and only the literal value "false" disables embedding.
func ParseOptions(raw map[string]string) Options {
	var opts Options
	attrs := maps.Clone(raw)
	if v, ok := attrs[OptEmbedAssets]; ok {
		opts.EmbedAssets = parseFlag(v)
		delete(attrs, OptEmbedAssets)
	}
	if v, ok := attrs[OptEmbedImages]; ok {
		opts.EmbedImages = parseFlag(v)
		delete(attrs, OptEmbedImages)
	}
	if len(attrs) > 0 {
		opts.Attributes = attrs
	}
	return opts
}

func parseFlag(v string) *bool {
	b := v != "false"
	return &b
}

// embeddingDisabled reports whether the caller explicitly turned embedding off.
func (o Options) embeddingDisabled() bool {
	return isFalse(o.EmbedAssets) || isFalse(o.EmbedImages)
}

func isFalse(b *bool) bool {
	return b != nil && !*b
}

// Bool returns a pointer to b, for filling Options literals.
func Bool(b bool) *bool {
	return &b
}
