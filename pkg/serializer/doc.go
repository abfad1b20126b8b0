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

// Package serializer encodes and decodes machine data in JSON, YAML and
// table form.
//
// Writing:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, sales); err != nil { ... }
//
// Table output flattens nested values into FIELD/VALUE rows and is
// write-only.
//
// Reading:
//
//	cfg, err := serializer.FromFile[config.Machine]("machine.yaml")
//
// The format of a file is taken from its extension. Request bodies are
// decoded with DecodeRequest, which picks JSON or YAML from the
// Content-Type header and caps the body size. RespondJSON buffers the
// encoded value before writing headers so a failed encode never leaves a
// partial response.
package serializer
