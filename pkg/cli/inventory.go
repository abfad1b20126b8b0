/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/vendstack/coffeemaker/pkg/inventory"
)

func inventoryCmd() *cli.Command {
	flags := make([]cli.Flag, 0, len(inventory.Ingredients)+2)
	for _, ingredient := range inventory.Ingredients {
		flags = append(flags, &cli.StringFlag{
			Name:  "add-" + ingredient,
			Value: "0",
			Usage: fmt.Sprintf("Units of %s to add before reporting", ingredient),
		})
	}
	flags = append(flags, outputFlag, formatFlag)

	return &cli.Command{
		Name:                  "inventory",
		EnableShellCompletion: true,
		Usage:                 "Show, and optionally replenish, ingredient stock",
		Description: `Reports the units of coffee, milk, sugar and chocolate in the machine.

The --add-* flags replenish the stock first. Amounts must be non-negative
integers; if any amount is invalid nothing is added.`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cm, err := loadMachine(cmd)
			if err != nil {
				return err
			}

			if err := cm.AddInventory(
				cmd.String("add-"+inventory.Coffee),
				cmd.String("add-"+inventory.Milk),
				cmd.String("add-"+inventory.Sugar),
				cmd.String("add-"+inventory.Chocolate),
			); err != nil {
				return fmt.Errorf("failed to add inventory: %w", err)
			}

			stock := cm.CheckInventory()
			return writeOutput(ctx, cmd, stock, stockTable(stock))
		},
	}
}
