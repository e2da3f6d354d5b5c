// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package main

import (
	"context"
	"log"
	"os"

	"codeberg.org/oliverandrich/go-asset-tags/internal/config"
	"codeberg.org/oliverandrich/go-asset-tags/internal/server"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "app",
		Usage: "Emit and serve asset package tags",
		Flags: config.Flags(),
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the asset preview server",
				Flags:  config.ServerFlags(),
				Action: server.Run,
			},
			tagsCommand(),
		},
	}
}
