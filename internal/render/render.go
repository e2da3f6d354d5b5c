// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package render writes link and script tags for asset URLs.
package render

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/a-h/templ"
)

// Default attributes of stylesheet links. Caller attributes override them.
var stylesheetDefaults = map[string]string{
	"rel":   "stylesheet",
	"type":  "text/css",
	"media": "screen",
}

// ErrInvalidAttribute is returned for attribute names that are not plain
// names, or that name an event handler.
var ErrInvalidAttribute = errors.New("invalid attribute name")

var attributeName = regexp.MustCompile(`^[a-zA-Z_:][-a-zA-Z0-9_:.]*$`)

// HTML renders tags as XHTML-compatible markup, one tag per line.
type HTML struct{}

// New creates an HTML renderer.
func New() *HTML {
	return &HTML{}
}

// StylesheetTags returns one <link> tag per URL.
func (h *HTML) StylesheetTags(urls []string, attrs map[string]string) (string, error) {
	for name := range attrs {
		if err := ValidateAttribute(name); err != nil {
			return "", err
		}
	}
	tags := make([]string, len(urls))
	for i, u := range urls {
		a := maps.Clone(stylesheetDefaults)
		maps.Copy(a, attrs)
		a["href"] = sanitizeURL(u)
		tags[i] = "<link" + attributes(a) + " />"
	}
	return strings.Join(tags, "\n"), nil
}

// ScriptTags returns one <script> tag per URL.
func (h *HTML) ScriptTags(urls []string) (string, error) {
	tags := make([]string, len(urls))
	for i, u := range urls {
		a := map[string]string{
			"src":  sanitizeURL(u),
			"type": "text/javascript",
		}
		tags[i] = "<script" + attributes(a) + "></script>"
	}
	return strings.Join(tags, "\n"), nil
}

// ValidateAttribute rejects names that could break out of the tag or attach
// script, such as "x onerror" or "onload".
func ValidateAttribute(name string) error {
	if !attributeName.MatchString(name) || strings.HasPrefix(strings.ToLower(name), "on") {
		return fmt.Errorf("%w: %q", ErrInvalidAttribute, name)
	}
	return nil
}

// attributes writes the attributes sorted by name so output is stable.
func attributes(a map[string]string) string {
	var b strings.Builder
	for _, k := range slices.Sorted(maps.Keys(a)) {
		b.WriteByte(' ')
		b.WriteString(templ.EscapeString(k))
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(a[k]))
		b.WriteByte('"')
	}
	return b.String()
}

func sanitizeURL(u string) string {
	return string(templ.URL(u))
}
