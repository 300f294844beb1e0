// cmd/ndslab/strides.go
package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/matteodg/ndslab/index"
)

func stridesCmd() *cli.Command {
	return &cli.Command{
		Name:  "strides",
		Usage: "Derive dense row-major strides for the given sizes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "sizes",
				Usage:    "Comma-separated dimension sizes, e.g. 4,3,2",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Emit JSON instead of plain text",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sizes, err := parseVector(cmd.String("sizes"))
			if err != nil {
				return err
			}
			strides, err := index.Strides(sizes)
			if err != nil {
				return err
			}

			if cmd.Bool("json") {
				return emitJSON(map[string]any{
					"sizes":   sizes,
					"strides": strides,
				})
			}
			fmt.Println(formatVector(strides))

			return nil
		},
	}
}
