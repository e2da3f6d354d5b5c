// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Preview is a minimal page linking the given packages, useful to check what
// a layout would emit in the current environment.
func Preview(title string, stylesheets, javascripts []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!doctype html>\n<html>\n<head>\n<title>"+templ.EscapeString(title)+"</title>\n"); err != nil {
			return err
		}
		if len(stylesheets) > 0 {
			if err := Stylesheets(nil, stylesheets...).Render(ctx, w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</head>\n<body>\n"); err != nil {
			return err
		}
		if len(javascripts) > 0 {
			if err := Javascripts(javascripts...).Render(ctx, w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}
