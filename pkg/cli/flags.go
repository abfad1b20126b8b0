/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/vendstack/coffeemaker/pkg/api"
	"github.com/vendstack/coffeemaker/pkg/coffeemaker"
	"github.com/vendstack/coffeemaker/pkg/serializer"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to the machine configuration file (JSON or YAML)",
		Sources: cli.EnvVars(api.EnvVarConfig),
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
	}
)

// parseOutputFormat returns the --format value or an error when it is not
// one of the supported formats.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", outFormat)
	}
	return outFormat, nil
}

// loadMachine builds the coffee maker described by --config.
func loadMachine(cmd *cli.Command) (*coffeemaker.CoffeeMaker, error) {
	path := cmd.String("config")
	cm, err := api.NewCoffeeMaker(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load machine from %q: %w", path, err)
	}
	return cm, nil
}

// writeOutput serializes v to --output in --format. For table output the
// tabular view is written instead when one is given.
func writeOutput(ctx context.Context, cmd *cli.Command, v any, table serializer.Tabular) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if outFormat == serializer.FormatTable && table != nil {
		return ser.Serialize(ctx, table)
	}
	return ser.Serialize(ctx, v)
}
