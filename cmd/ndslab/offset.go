// cmd/ndslab/offset.go
package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func offsetCmd() *cli.Command {
	return &cli.Command{
		Name:      "offset",
		Usage:     "Compute the linear offset for one or more coordinate tuples",
		ArgsUsage: "COORDS [COORDS...]   (each comma-separated, e.g. 1,2,3)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "geometry",
				Aliases:  []string{"g"},
				Usage:    "Path to a YAML/JSON geometry document",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Emit JSON instead of plain text",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("offset: at least one coordinate tuple is required")
			}
			ix, err := loadGeometry(cmd.String("geometry"))
			if err != nil {
				return err
			}

			type entry struct {
				Coords []int64 `json:"coords"`
				Offset int64   `json:"offset"`
			}
			entries := make([]entry, 0, len(args))
			for _, arg := range args {
				coords, err := parseVector(arg)
				if err != nil {
					return err
				}
				if len(coords) != ix.Rank() {
					return fmt.Errorf("offset: tuple %q has %d coordinates, geometry has rank %d",
						arg, len(coords), ix.Rank())
				}
				entries = append(entries, entry{Coords: coords, Offset: ix.Offset(coords...)})
			}

			if cmd.Bool("json") {
				return emitJSON(entries)
			}
			for _, e := range entries {
				fmt.Printf("%s -> %d\n", formatVector(e.Coords), e.Offset)
			}

			return nil
		},
	}
}
