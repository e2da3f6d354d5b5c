// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package assets decides which asset URLs a page references and how the
// resulting tags are wrapped.
//
// In development the ordered list of source files is linked individually. With
// packaging enabled, a single link to each cached package is emitted. When
// image embedding is enabled as well, stylesheets are emitted twice inside
// conditional comments: the Data-URI variant for modern browsers and the MHTML
// variant for Internet Explorer 7 and below.
package assets

// Conditional comment markers wrapped around embedded-image stylesheets.
const (
	DataURIStart = "<!--[if (!IE)|(gte IE 8)]><!-->"
	DataURIEnd   = "<!--<![endif]-->"
	MHTMLStart   = "<!--[if lte IE 7]>"
	MHTMLEnd     = "<![endif]-->"
)

// PackageName identifies a configured bundle of source files.
type PackageName string

// Kind is the type of asset a package produces.
type Kind int

const (
	CSS Kind = iota
	JS
	Template
)

// Ext returns the file extension used for packaged assets of this kind.
func (k Kind) Ext() string {
	switch k {
	case CSS:
		return "css"
	case JS:
		return "js"
	case Template:
		return "jst"
	}
	return ""
}

func (k Kind) String() string {
	return k.Ext()
}

// Variant selects an alternative rendering of a packaged stylesheet.
type Variant int

const (
	Plain Variant = iota
	DataURI
	MHTML
)

// Suffix returns the filename suffix of the variant, empty for Plain.
func (v Variant) Suffix() string {
	switch v {
	case DataURI:
		return "datauri"
	case MHTML:
		return "mhtml"
	}
	return ""
}

// Mode is the process-wide resolution configuration. A Resolver never
// modifies its Mode; build a new one with WithMode instead.
type Mode struct {
	PackageAssets bool // serve packages instead of individual sources
	EmbedAssets   bool // inline images as Data-URIs
	MHTMLEnabled  bool // emit the MHTML fallback for old IE
}

// Packager maps package names to URLs.
type Packager interface {
	IndividualURLs(pkg PackageName, kind Kind) ([]string, error)
	PackagedURL(pkg PackageName, kind Kind, variant Variant) (string, error)
}

// TagRenderer turns URLs into markup. It is responsible for escaping.
type TagRenderer interface {
	StylesheetTags(urls []string, attrs map[string]string) (string, error)
	ScriptTags(urls []string) (string, error)
}

// Names converts plain strings to package names.
func Names(names ...string) []PackageName {
	out := make([]PackageName, len(names))
	for i, n := range names {
		out[i] = PackageName(n)
	}
	return out
}
