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

package recipe

import (
	"log/slog"
	"sync"

	"github.com/vendstack/coffeemaker/pkg/defaults"
)

// Book operation names used as metric labels.
const (
	opAdd    = "add"
	opDelete = "delete"
	opEdit   = "edit"
)

// Option configures a Book.
type Option func(*Book)

// WithCapacity sets the number of recipe slots.
// Values below 1 keep the default capacity.
func WithCapacity(n int) Option {
	return func(b *Book) {
		if n > 0 {
			b.capacity = n
		}
	}
}

// Book is a fixed-capacity, ordered set of recipe slots. A slot is either
// empty or holds one recipe; no two occupied slots share a name.
// Deleting a recipe empties its slot in place so the remaining recipes keep
// their positions.
//
// Book stores and returns copies, never the caller's recipe. It is safe for
// concurrent use.
type Book struct {
	mu       sync.RWMutex
	capacity int
	slots    []*Recipe
}

// NewBook creates an empty recipe book.
func NewBook(opts ...Option) *Book {
	b := &Book{
		capacity: defaults.RecipeBookCapacity,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.slots = make([]*Recipe, b.capacity)
	return b
}

// Capacity returns the number of slots.
func (b *Book) Capacity() int {
	return b.capacity
}

// Len returns the number of occupied slots.
func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for _, s := range b.slots {
		if s != nil {
			n++
		}
	}
	return n
}

// Add stores a copy of r in the first empty slot. It returns false when r is
// invalid, a recipe with the same name is already present, or every slot is
// occupied. A rejected add changes nothing.
func (b *Book) Add(r *Recipe) bool {
	if err := r.Validate(); err != nil {
		slog.Debug("recipe rejected", "error", err)
		recordOp(opAdd, false)
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.indexOf(r.Name) >= 0 {
		slog.Debug("recipe already present", "name", r.Name)
		recordOp(opAdd, false)
		return false
	}

	for i, s := range b.slots {
		if s == nil {
			b.slots[i] = r.Clone()
			slog.Debug("recipe added", "name", r.Name, "slot", i)
			recordOp(opAdd, true)
			return true
		}
	}

	slog.Debug("recipe book full", "name", r.Name, "capacity", b.capacity)
	recordOp(opAdd, false)
	return false
}

// Delete empties the slot holding a recipe with r's name. It returns false
// when no such slot exists.
func (b *Book) Delete(r *Recipe) bool {
	if r == nil {
		recordOp(opDelete, false)
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexOf(r.Name)
	if i < 0 {
		recordOp(opDelete, false)
		return false
	}

	b.slots[i] = nil
	slog.Debug("recipe deleted", "name", r.Name, "slot", i)
	recordOp(opDelete, true)
	return true
}

// Edit replaces the recipe matching existing's name with a copy of updated,
// keeping the slot position. It returns false when existing is not present,
// updated is invalid, or updated's name already belongs to another slot.
func (b *Book) Edit(existing, updated *Recipe) bool {
	if existing == nil {
		recordOp(opEdit, false)
		return false
	}
	if err := updated.Validate(); err != nil {
		slog.Debug("recipe edit rejected", "name", existing.Name, "error", err)
		recordOp(opEdit, false)
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexOf(existing.Name)
	if i < 0 {
		recordOp(opEdit, false)
		return false
	}
	if j := b.indexOf(updated.Name); j >= 0 && j != i {
		slog.Debug("recipe edit would duplicate name", "name", updated.Name, "slot", j)
		recordOp(opEdit, false)
		return false
	}

	b.slots[i] = updated.Clone()
	slog.Debug("recipe edited", "name", existing.Name, "newName", updated.Name, "slot", i)
	recordOp(opEdit, true)
	return true
}

// Get returns a copy of the recipe with the given name.
func (b *Book) Get(name string) (*Recipe, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	i := b.indexOf(name)
	if i < 0 {
		return nil, false
	}
	return b.slots[i].Clone(), true
}

// List returns a snapshot of every slot in order. Empty slots are nil and
// the slice length always equals Capacity.
func (b *Book) List() []*Recipe {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*Recipe, len(b.slots))
	for i, s := range b.slots {
		out[i] = s.Clone()
	}
	return out
}

// indexOf returns the slot holding name, or -1. Callers must hold mu.
func (b *Book) indexOf(name string) int {
	for i, s := range b.slots {
		if s != nil && s.Name == name {
			return i
		}
	}
	return -1
}
