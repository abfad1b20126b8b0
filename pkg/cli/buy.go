/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

func buyCmd() *cli.Command {
	return &cli.Command{
		Name:                  "buy",
		EnableShellCompletion: true,
		Usage:                 "Buy a beverage",
		Description: `Purchases one cup of the named recipe. The result reports the outcome and
the change returned; a refused purchase returns the full payment.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "recipe",
				Aliases:  []string{"r"},
				Required: true,
				Usage:    "Name of the recipe to buy",
			},
			&cli.IntFlag{
				Name:     "payment",
				Aliases:  []string{"p"},
				Required: true,
				Usage:    "Amount paid in currency units",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cm, err := loadMachine(cmd)
			if err != nil {
				return err
			}

			res := cm.Purchase(ctx, cmd.String("recipe"), cmd.Int("payment"))
			return writeOutput(ctx, cmd, res, resultTable(res))
		},
	}
}
