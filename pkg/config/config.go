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

package config

import (
	"fmt"
	"log/slog"

	"k8s.io/utils/ptr"

	"github.com/vendstack/coffeemaker/pkg/coffeemaker"
	"github.com/vendstack/coffeemaker/pkg/defaults"
	cmerrors "github.com/vendstack/coffeemaker/pkg/errors"
	"github.com/vendstack/coffeemaker/pkg/inventory"
	"github.com/vendstack/coffeemaker/pkg/recipe"
	"github.com/vendstack/coffeemaker/pkg/serializer"
)

// Machine is the on-disk description of a coffee maker. Every field is
// optional; omitted fields take the defaults of a new machine.
//
//	capacity: 4
//	stock:
//	  coffee: 15
//	  milk: 15
//	  sugar: 15
//	  chocolate: 15
//	recipes:
//	  - name: Coffee
//	    price: 50
//	    coffee: 3
//	    milk: 1
//	    sugar: 1
type Machine struct {
	Capacity     *int             `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	SalesLogSize *int             `json:"salesLogSize,omitempty" yaml:"salesLogSize,omitempty"`
	Stock        *inventory.Stock `json:"stock,omitempty" yaml:"stock,omitempty"`
	Recipes      []recipe.Recipe  `json:"recipes,omitempty" yaml:"recipes,omitempty"`
}

// Load reads a machine configuration from a JSON or YAML file and
// validates it.
func Load(path string) (*Machine, error) {
	m, err := serializer.FromFile[Machine](path)
	if err != nil {
		return nil, cmerrors.WrapWithContext(cmerrors.ErrCodeInvalidRequest,
			"failed to load machine configuration", err, map[string]any{
				"path": path,
			})
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("machine configuration loaded",
		"path", path,
		"capacity", m.capacity(),
		"recipes", len(m.Recipes),
	)
	return m, nil
}

// Validate checks capacity, stock and every recipe, and that the recipes
// fit the book with unique names.
func (m *Machine) Validate() error {
	if m == nil {
		return cmerrors.New(cmerrors.ErrCodeInvalidRequest, "machine configuration cannot be nil")
	}

	capacity := m.capacity()
	if capacity < 1 {
		return cmerrors.NewWithContext(cmerrors.ErrCodeInvalidRequest,
			"capacity must be at least 1", map[string]any{"capacity": capacity})
	}
	if n := ptr.Deref(m.SalesLogSize, defaults.SalesLogSize); n < 1 {
		return cmerrors.NewWithContext(cmerrors.ErrCodeInvalidRequest,
			"salesLogSize must be at least 1", map[string]any{"salesLogSize": n})
	}

	if m.Stock != nil {
		if err := m.Stock.Validate(); err != nil {
			return err
		}
	}

	if len(m.Recipes) > capacity {
		return cmerrors.NewWithContext(cmerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("%d recipes do not fit %d slots", len(m.Recipes), capacity),
			map[string]any{"recipes": len(m.Recipes), "capacity": capacity})
	}

	seen := make(map[string]bool, len(m.Recipes))
	for i := range m.Recipes {
		r := &m.Recipes[i]
		if err := r.Validate(); err != nil {
			return err
		}
		if seen[r.Name] {
			return cmerrors.NewWithContext(cmerrors.ErrCodeConflict,
				"duplicate recipe name", map[string]any{"recipe": r.Name, "index": i})
		}
		seen[r.Name] = true
	}

	return nil
}

// Options converts the configuration into coffee maker options.
func (m *Machine) Options() []coffeemaker.Option {
	opts := []coffeemaker.Option{
		coffeemaker.WithCapacity(m.capacity()),
		coffeemaker.WithSalesLogSize(ptr.Deref(m.SalesLogSize, defaults.SalesLogSize)),
		coffeemaker.WithStock(ptr.Deref(m.Stock, inventory.DefaultStock(defaults.InventoryInitialUnits))),
	}

	seed := make([]*recipe.Recipe, 0, len(m.Recipes))
	for i := range m.Recipes {
		seed = append(seed, m.Recipes[i].Clone())
	}
	if len(seed) > 0 {
		opts = append(opts, coffeemaker.WithRecipes(seed...))
	}
	return opts
}

func (m *Machine) capacity() int {
	return ptr.Deref(m.Capacity, defaults.RecipeBookCapacity)
}
