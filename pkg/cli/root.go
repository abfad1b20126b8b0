/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/vendstack/coffeemaker/pkg/logging"
)

const (
	name           = "coffeemaker"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the CLI with the process arguments and exits non-zero on error.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Operate a beverage vending machine",
		Description: `coffeemaker manages the recipe book, ingredient stock and purchases of a
beverage vending machine.

The machine is built from a configuration file (--config) holding the slot
capacity, starting stock and recipes. Without one, a default machine with 4
empty recipe slots and 15 units of every ingredient is used.

# Examples

Run the HTTP service:
  coffeemaker serve --config machine.yaml

List recipe slots as a table:
  coffeemaker menu --config machine.yaml --format table

Replenish and show stock:
  coffeemaker inventory --config machine.yaml --add-milk 5 --add-sugar 2

Buy a beverage:
  coffeemaker buy --config machine.yaml --recipe Coffee --payment 75`,
		Flags: []cli.Flag{
			configFlag,
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvVarLogLevel),
				Value:   "info",
			},
		},
		Before: initLogger,
		Commands: []*cli.Command{
			serveCmd(),
			menuCmd(),
			inventoryCmd(),
			buyCmd(),
		},
	}
}

// initLogger configures slog after flags are parsed so overrides like
// --log-level take effect before any command executes.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logLevel := cmd.String("log-level")
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", logLevel)
	return ctx, nil
}
