// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package templates_test

import (
	"context"
	"strings"
	"testing"

	"codeberg.org/oliverandrich/go-asset-tags/internal/assets"
	"codeberg.org/oliverandrich/go-asset-tags/internal/packager"
	"codeberg.org/oliverandrich/go-asset-tags/internal/templates"
	"codeberg.org/oliverandrich/go-asset-tags/internal/testutil"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderString(ctx context.Context, c templ.Component) (string, error) {
	var b strings.Builder
	err := c.Render(ctx, &b)
	return b.String(), err
}

func TestResolver_Missing(t *testing.T) {
	assert.Nil(t, templates.Resolver(context.Background()))
}

func TestStylesheets(t *testing.T) {
	ctx := testutil.NewTestContext(t, assets.Mode{PackageAssets: true, EmbedAssets: true, MHTMLEnabled: true})

	out, err := renderString(ctx, templates.Stylesheets(map[string]string{"embed_assets": "false", "media": "all"}, "app"))

	require.NoError(t, err)
	assert.Equal(t, `<link href="/assets/app.css?v1" media="all" rel="stylesheet" type="text/css" />`, out)
}

func TestStylesheets_Embedded(t *testing.T) {
	ctx := testutil.NewTestContext(t, assets.Mode{PackageAssets: true, EmbedAssets: true, MHTMLEnabled: true})

	out, err := renderString(ctx, templates.Stylesheets(nil, "app"))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, assets.DataURIStart+"\n"))
	assert.True(t, strings.HasSuffix(out, "\n"+assets.MHTMLEnd))
	assert.Contains(t, out, "/assets/app-mhtml.css?v1")
}

func TestJavascripts_Individual(t *testing.T) {
	ctx := testutil.NewTestContext(t, assets.Mode{})

	out, err := renderString(ctx, templates.Javascripts("app"))

	require.NoError(t, err)
	assert.Equal(t,
		`<script src="/js/a.js" type="text/javascript"></script>`+"\n"+
			`<script src="/js/b.js" type="text/javascript"></script>`,
		out)
}

func TestTemplates_Fails(t *testing.T) {
	ctx := testutil.NewTestContext(t, assets.Mode{PackageAssets: true})

	out, err := renderString(ctx, templates.Templates("app"))

	require.ErrorIs(t, err, assets.ErrTemplatesDeprecated)
	assert.Empty(t, out)
}

func TestComponents_NoResolver(t *testing.T) {
	_, err := renderString(context.Background(), templates.Javascripts("app"))

	require.ErrorIs(t, err, templates.ErrNoResolver)
}

func TestComponents_UnknownPackage(t *testing.T) {
	ctx := testutil.NewTestContext(t, assets.Mode{PackageAssets: true})

	_, err := renderString(ctx, templates.Stylesheets(nil, "nope"))

	require.ErrorIs(t, err, packager.ErrPackageNotFound)
}
