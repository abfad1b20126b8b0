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

// Package defaults provides centralized configuration constants for the coffee maker.
//
// This package defines machine defaults (slot capacity, starting stock),
// timeout values and rate limits used across the codebase. Centralizing these
// values ensures consistency and makes tuning easier.
//
// # Categories
//
//   - Machine defaults: recipe slots, initial inventory, sales log size
//   - Handler timeouts: for HTTP request processing
//   - Server timeouts and rate limits: for HTTP server configuration
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/vendstack/coffeemaker/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.HandlerTimeout)
//	defer cancel()
package defaults
