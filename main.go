package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/genui-tools/genui/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:    "genui",
		Usage:   "Generate Flutter GenUI catalog items from compact property declarations.",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("GENUI_LOG_LEVEL"),
				Value:   "panic",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:      "generate",
				Usage:     "Generate a CatalogItem scaffold for one component",
				ArgsUsage: "<ComponentName>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "props",
						Usage: "comma-separated property declarations, e.g. \"title:string,price:number,imageUrl:string?\"",
					},
					&cli.StringFlag{
						Name:  "required",
						Usage: "comma-separated names of required properties",
					},
					&cli.StringFlag{
						Name:  "events",
						Usage: "comma-separated event names to dispatch from the widget",
					},
					&cli.BoolFlag{
						Name:  "children",
						Usage: "include child widget composition placeholders",
					},
					&cli.BoolFlag{
						Name:  "bound",
						Usage: "mark the component as data-bound",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output file path (default: <project>/lib/genui/catalog/<snake_case>.dart)",
					},
					&cli.BoolFlag{
						Name:  "overwrite",
						Usage: "replace the output file if it already exists",
					},
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "reject required names that do not match a declared property",
					},
					&cli.StringFlag{
						Name:  "language",
						Usage: "target language (default from genui.json)",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Generate(ctx, commands.GenerateOptions{
						Name:      c.Args().First(),
						Props:     c.String("props"),
						Required:  c.String("required"),
						Events:    c.String("events"),
						Children:  c.Bool("children"),
						Bound:     c.Bool("bound"),
						Output:    c.String("output"),
						Overwrite: c.Bool("overwrite"),
						Strict:    c.Bool("strict"),
						Language:  c.String("language"),
					})
				},
			},
			{
				Name:  "batch",
				Usage: "Generate every component declared in the manifest",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "manifest",
						Usage: "manifest file path (default: <project>/genui.yaml)",
					},
					&cli.BoolFlag{
						Name:  "overwrite",
						Usage: "replace output files that already exist",
					},
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "reject required names that do not match a declared property",
					},
					&cli.StringFlag{
						Name:  "language",
						Usage: "target language (default from genui.json)",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Batch(ctx, commands.BatchOptions{
						Manifest:  c.String("manifest"),
						Overwrite: c.Bool("overwrite"),
						Strict:    c.Bool("strict"),
						Language:  c.String("language"),
					})
				},
			},
			{
				Name:  "dev",
				Usage: "Watch the manifest and regenerate the catalog on change",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Dev(ctx)
				},
			},
			{
				Name:  "init",
				Usage: "Create a genui.json config in the current directory",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Init(ctx)
				},
			},
			{
				Name:  "hook",
				Usage: "Strip agent attribution from git commit commands (PreToolUse stdin hook)",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Hook(ctx)
				},
			},
		},
	}

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run genui")
	}
}
