// Command workbench is the offline companion tool: it exports a saved
// scenario document to Markdown, renders terrain maps to files and
// validates scenario JSON, all without the API or a model key.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hallwright/scenario-workbench/pkg/export"
	"github.com/hallwright/scenario-workbench/pkg/scenario"
	"github.com/hallwright/scenario-workbench/pkg/terrain"
)

func main() {
	cmd := &cli.Command{
		Name:  "workbench",
		Usage: "Offline tools for scenario documents: export and map rendering",
		Commands: []*cli.Command{
			{
				Name:      "export",
				Usage:     "Render a scenario JSON file as printable Markdown",
				ArgsUsage: "<scenario.json>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output file (default stdout)",
					},
				},
				Action: runExport,
			},
			{
				Name:  "terrain",
				Usage: "Render the generated map background for a seed",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "seed",
						Usage: "Map seed",
						Value: scenario.DefaultMapSeed,
					},
					&cli.StringFlag{
						Name:  "style",
						Usage: "Map style: vintage, realistic, blueprint, isometric, pixel",
						Value: string(scenario.StyleVintage),
					},
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "Output file; .svg or .png decides the format",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "width",
						Usage: "PNG width in pixels",
						Value: 1000,
					},
					&cli.IntFlag{
						Name:  "height",
						Usage: "PNG height in pixels",
						Value: 800,
					},
				},
				Action: runTerrain,
			},
			validateCommand,
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("workbench error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func runExport(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("scenario file argument is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read scenario: %w", err)
	}

	var doc scenario.Scenario
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse scenario: %w", err)
	}

	md := export.Markdown(&doc)
	if out := cmd.String("out"); out != "" {
		return os.WriteFile(out, []byte(md), 0o644)
	}
	_, err = fmt.Print(md)
	return err
}

func runTerrain(ctx context.Context, cmd *cli.Command) error {
	style := scenario.MapStyle(cmd.String("style"))
	layout := terrain.Generate(cmd.Int("seed"))
	out := cmd.String("out")

	switch {
	case strings.HasSuffix(out, ".svg"):
		return os.WriteFile(out, []byte(terrain.RenderSVG(layout, style)), 0o644)
	case strings.HasSuffix(out, ".png"):
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		return terrain.RenderPNG(f, layout, style, int(cmd.Int("width")), int(cmd.Int("height")))
	default:
		return fmt.Errorf("output file must end in .svg or .png")
	}
}
