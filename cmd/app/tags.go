// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"codeberg.org/oliverandrich/go-asset-tags/internal/assets"
	"codeberg.org/oliverandrich/go-asset-tags/internal/config"
	"codeberg.org/oliverandrich/go-asset-tags/internal/server"
	"github.com/urfave/cli/v3"
)

func tagsCommand() *cli.Command {
	return &cli.Command{
		Name:      "tags",
		Usage:     "Print the tags (or paths) for asset packages",
		ArgsUsage: "PACKAGE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "kind",
				Value: "css",
				Usage: "Asset kind (css, js, jst)",
			},
			&cli.BoolFlag{
				Name:  "paths",
				Usage: "Print one URL per line instead of tags",
			},
			&cli.StringMapFlag{
				Name:  "option",
				Usage: "Stylesheet option as key=value, e.g. embed_assets=false or media=print",
			},
		},
		Action: runTags,
	}
}

func runTags(_ context.Context, cmd *cli.Command) error {
	cfg := config.NewFromCLI(cmd)
	server.SetupLogger(cfg.Log.Level, cfg.Log.Format)

	a, err := server.LoadAssets(&cfg.Assets)
	if err != nil {
		return err
	}

	out, err := tags(a.Resolver, cmd.String("kind"), cmd.Bool("paths"), cmd.Args().Slice(), cmd.StringMap("option"))
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.Root().Writer, out+"\n")
	return err
}

// tags resolves packages of the given kind to markup or a path list.
func tags(r *assets.Resolver, kind string, paths bool, packages []string, options map[string]string) (string, error) {
	pkgs := assets.Names(packages...)

	var (
		list []string
		html string
		err  error
	)
	switch kind {
	case "css":
		if paths {
			list, err = r.StylesheetPaths(pkgs, assets.ParseOptions(options))
		} else {
			html, err = r.IncludeStylesheets(pkgs, assets.ParseOptions(options))
		}
	case "js":
		if paths {
			list, err = r.JavascriptPaths(pkgs)
		} else {
			html, err = r.IncludeJavascripts(pkgs)
		}
	case "jst":
		if paths {
			list, err = r.TemplatePaths(pkgs)
		} else {
			html, err = r.IncludeTemplates(pkgs)
		}
	default:
		return "", fmt.Errorf("unknown asset kind %q, want css, js or jst", kind)
	}
	if err != nil {
		return "", err
	}
	if paths {
		return strings.Join(list, "\n"), nil
	}
	return html, nil
}
