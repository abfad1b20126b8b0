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

// Package server is the HTTP front end shared by the coffee maker daemon.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("coffeemakerd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "GET /v1/recipes": h.ListRecipes,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil { ... }
//
// Run blocks until ctx is cancelled or the process receives SIGINT or
// SIGTERM, then drains in-flight requests.
//
// # Middleware
//
// Application handlers run behind, outermost first: Prometheus RED
// metrics, X-API-Version negotiation, X-Request-Id propagation, panic
// recovery, a token bucket rate limiter (golang.org/x/time/rate), a
// per-request timeout and debug request logging.
//
// # System Endpoints
//
// These bypass the middleware chain:
//   - GET /health  - liveness
//   - GET /ready   - readiness, 503 until Run has started listening
//   - GET /metrics - Prometheus exposition
//
// # Errors
//
// Every error reply is an ErrorResponse carrying a code from pkg/errors,
// the request ID and whether a retry may succeed. WriteErrorFromErr maps a
// structured error to its HTTP status.
//
// # Configuration
//
// Defaults come from pkg/defaults. The environment may override:
//   - PORT
//   - SHUTDOWN_TIMEOUT_SECONDS
//   - RATE_LIMIT (requests per second)
//   - RATE_LIMIT_BURST
package server
