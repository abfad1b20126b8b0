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

package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/time/rate"

	"github.com/vendstack/coffeemaker/pkg/defaults"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Additional Handlers to be added to the server, keyed by mux pattern
	// such as "GET /v1/recipes".
	Handlers map[string]http.HandlerFunc

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// envOverrides lists the settings that may come from the environment.
// Zero values mean "not set".
type envOverrides struct {
	Port                   int     `envconfig:"PORT"`
	ShutdownTimeoutSeconds int     `envconfig:"SHUTDOWN_TIMEOUT_SECONDS"`
	RateLimit              float64 `envconfig:"RATE_LIMIT"`
	RateLimitBurst         int     `envconfig:"RATE_LIMIT_BURST"`
}

// NewConfig returns a new Config with sensible defaults.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return parseConfig()
}

// parseConfig returns defaults overridden by the environment. A malformed
// variable is logged and every override is discarded.
func parseConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Address:           "",
		Port:              defaults.ServerPort,
		RateLimit:         defaults.ServerRateLimit,
		RateLimitBurst:    defaults.ServerRateLimitBurst,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		slog.Warn("ignoring server environment overrides", "error", err)
		return cfg
	}

	if env.Port > 0 {
		cfg.Port = env.Port
	}
	// Allow customization of shutdown timeout to match K8s eviction grace period
	if env.ShutdownTimeoutSeconds > 0 {
		cfg.ShutdownTimeout = time.Duration(env.ShutdownTimeoutSeconds) * time.Second
	}
	if env.RateLimit > 0 {
		cfg.RateLimit = rate.Limit(env.RateLimit)
	}
	if env.RateLimitBurst > 0 {
		cfg.RateLimitBurst = env.RateLimitBurst
	}

	return cfg
}
