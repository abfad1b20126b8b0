/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/vendstack/coffeemaker/pkg/coffeemaker"
)

func menuCmd() *cli.Command {
	return &cli.Command{
		Name:                  "menu",
		EnableShellCompletion: true,
		Usage:                 "List the recipe slots of the machine",
		Description: `Lists every recipe slot in order, including empty ones, with price and
per-cup ingredient amounts.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cm, err := loadMachine(cmd)
			if err != nil {
				return err
			}

			list := coffeemaker.RecipeList{
				Capacity: cm.Capacity(),
				Recipes:  cm.GetRecipes(),
			}
			return writeOutput(ctx, cmd, list, menuTable(list.Recipes))
		},
	}
}
