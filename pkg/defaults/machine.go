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
package defaults

// Machine defaults for a freshly constructed coffee maker.
const (
	// RecipeBookCapacity is the number of recipe slots.
	RecipeBookCapacity = 4

	// InventoryInitialUnits is the starting stock of every ingredient.
	InventoryInitialUnits = 15

	// SalesLogSize bounds the in-memory log of dispensed receipts.
	SalesLogSize = 256
)
