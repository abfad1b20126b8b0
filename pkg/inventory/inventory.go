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
package inventory

import (
	"log/slog"
	"math"
	"sync"

	"github.com/vendstack/coffeemaker/pkg/defaults"
	cmerrors "github.com/vendstack/coffeemaker/pkg/errors"
	"github.com/vendstack/coffeemaker/pkg/recipe"
)

// Option configures an Inventory.
type Option func(*Inventory)

// WithStock sets the starting stock. A stock with a negative counter is
// ignored and the default stock is kept.
func WithStock(s Stock) Option {
	return func(i *Inventory) {
		if err := s.Validate(); err != nil {
			slog.Warn("ignoring invalid initial stock", "error", err)
			return
		}
		i.stock = s
	}
}

// Inventory holds the ingredient counters shared by every purchase.
// No counter ever goes negative. It is safe for concurrent use.
type Inventory struct {
	mu    sync.Mutex
	stock Stock
}

// New creates an inventory filled with the default stock.
func New(opts ...Option) *Inventory {
	i := &Inventory{
		stock: DefaultStock(defaults.InventoryInitialUnits),
	}
	for _, opt := range opts {
		opt(i)
	}
	observeStock(i.stock)
	return i
}

// Check returns a snapshot of the counters.
func (i *Inventory) Check() Stock {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.stock
}

// Add parses the four untyped amounts and adds them to the counters.
// All amounts are validated before any counter changes; on failure the
// error carries ErrCodeInvalidInventoryAmount and the stock is untouched.
func (i *Inventory) Add(coffee, milk, sugar, chocolate any) error {
	delta, err := ParseAmounts(coffee, milk, sugar, chocolate)
	if err != nil {
		inventoryRejections.Inc()
		slog.Warn("inventory replenishment rejected", "error", err)
		return err
	}
	return i.AddStock(delta)
}

// AddStock adds a typed delta to the counters with the same all-or-nothing
// rule as Add. It also refuses a delta that would overflow a counter.
func (i *Inventory) AddStock(delta Stock) error {
	if err := delta.Validate(); err != nil {
		inventoryRejections.Inc()
		slog.Warn("inventory replenishment rejected", "error", err)
		return err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	for _, name := range Ingredients {
		have, _ := i.stock.Get(name)
		add, _ := delta.Get(name)
		if have > math.MaxInt-add {
			inventoryRejections.Inc()
			return cmerrors.NewWithContext(cmerrors.ErrCodeInvalidInventoryAmount,
				name+" amount would overflow the counter", map[string]any{
					"ingredient": name,
					"current":    have,
					"value":      add,
				})
		}
	}

	i.stock.Coffee += delta.Coffee
	i.stock.Milk += delta.Milk
	i.stock.Sugar += delta.Sugar
	i.stock.Chocolate += delta.Chocolate
	observeStock(i.stock)

	slog.Info("inventory replenished",
		"coffee", delta.Coffee,
		"milk", delta.Milk,
		"sugar", delta.Sugar,
		"chocolate", delta.Chocolate,
	)
	return nil
}

// Enough reports whether the current stock covers every amount of req.
func (i *Inventory) Enough(req recipe.Requirement) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.stock.Covers(req)
}

// Consume subtracts req from the counters. The caller must have established
// that the stock covers req; if it does not, Consume changes nothing and
// returns an ErrCodeInternal error, since that is a programming error.
//
// Use TryConsume when the check and the subtraction must be atomic.
func (i *Inventory) Consume(req recipe.Requirement) error {
	if !i.TryConsume(req) {
		return cmerrors.NewWithContext(cmerrors.ErrCodeInternal,
			"consume called without sufficient stock", map[string]any{
				"requirement": req,
			})
	}
	return nil
}

// TryConsume subtracts req from the counters if, and only if, the stock
// covers all four amounts. The check and the subtraction happen under one
// lock acquisition, so concurrent callers cannot both pass the check
// against the same units.
func (i *Inventory) TryConsume(req recipe.Requirement) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.stock.Covers(req) {
		return false
	}

	i.stock.Coffee -= req.Coffee
	i.stock.Milk -= req.Milk
	i.stock.Sugar -= req.Sugar
	i.stock.Chocolate -= req.Chocolate
	observeStock(i.stock)
	return true
}
