/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/vendstack/coffeemaker/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the coffee maker HTTP service",
		Description: `Starts the HTTP API on PORT (default 8080) and blocks until interrupted.

Server settings are read from the environment: PORT, RATE_LIMIT,
RATE_LIMIT_BURST and SHUTDOWN_TIMEOUT_SECONDS.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.ServeContext(ctx, cmd.String("config"))
		},
	}
}
