// cmd/ndslab/enumerate.go
package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/matteodg/ndslab/index"
)

func enumerateCmd() *cli.Command {
	return &cli.Command{
		Name:  "enumerate",
		Usage: "Walk every addressed element in row-major local order",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "geometry",
				Aliases:  []string{"g"},
				Usage:    "Path to a YAML/JSON geometry document",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Stop after N elements (0 means no limit)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Emit JSON instead of plain text",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ix, err := loadGeometry(cmd.String("geometry"))
			if err != nil {
				return err
			}
			limit := cmd.Int("limit")

			type entry struct {
				Coords []int64 `json:"coords"`
				Offset int64   `json:"offset"`
			}
			var entries []entry
			var visited int64
			index.Walk(ix, func(coords []int64, offset int64) bool {
				entries = append(entries, entry{
					Coords: append([]int64(nil), coords...), // Walk reuses coords
					Offset: offset,
				})
				visited++
				return limit == 0 || visited < limit
			})

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
