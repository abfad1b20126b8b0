// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"
	"log/slog"
	"os"

	"github.com/vendstack/coffeemaker/pkg/coffeemaker"
	"github.com/vendstack/coffeemaker/pkg/config"
	"github.com/vendstack/coffeemaker/pkg/logging"
	"github.com/vendstack/coffeemaker/pkg/server"
)

const (
	name           = "coffeemakerd"
	versionDefault = "dev"

	// EnvVarConfig names the machine configuration file loaded at startup.
	EnvVarConfig = "COFFEEMAKER_CONFIG"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/vendstack/coffeemaker/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// The machine configuration is read from COFFEEMAKER_CONFIG when set.
// Logging is configured from LOG_LEVEL.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	return ServeContext(context.Background(), os.Getenv(EnvVarConfig))
}

// ServeContext builds the coffee maker from configPath (defaults when empty)
// and runs the HTTP server until ctx is canceled or the process receives a
// termination signal. It logs through the current slog default, which the
// caller configures.
func ServeContext(ctx context.Context, configPath string) error {
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cm, err := NewCoffeeMaker(configPath)
	if err != nil {
		slog.Error("failed to build coffee maker", "config", configPath, "error", err)
		return err
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(cm.Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// NewCoffeeMaker builds a machine from the configuration file at path, or a
// default machine when path is empty.
func NewCoffeeMaker(path string) (*coffeemaker.CoffeeMaker, error) {
	if path == "" {
		return coffeemaker.New(), nil
	}

	m, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return coffeemaker.New(m.Options()...), nil
}
