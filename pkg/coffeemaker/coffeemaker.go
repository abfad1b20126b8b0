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

package coffeemaker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/vendstack/coffeemaker/pkg/defaults"
	"github.com/vendstack/coffeemaker/pkg/inventory"
	"github.com/vendstack/coffeemaker/pkg/purchase"
	"github.com/vendstack/coffeemaker/pkg/recipe"
)

// Option configures a CoffeeMaker.
type Option func(*CoffeeMaker)

// WithCapacity sets the number of recipe slots.
func WithCapacity(n int) Option {
	return func(cm *CoffeeMaker) {
		cm.capacity = n
	}
}

// WithStock sets the starting inventory.
func WithStock(s inventory.Stock) Option {
	return func(cm *CoffeeMaker) {
		cm.stock = &s
	}
}

// WithRecipes seeds the recipe book. Seeds that the book refuses are
// logged and skipped.
func WithRecipes(recipes ...*recipe.Recipe) Option {
	return func(cm *CoffeeMaker) {
		cm.seed = append(cm.seed, recipes...)
	}
}

// WithClock sets the clock used for receipt timestamps.
func WithClock(now purchase.Clock) Option {
	return func(cm *CoffeeMaker) {
		if now != nil {
			cm.clock = now
		}
	}
}

// WithSalesLogSize bounds the number of receipts Sales keeps.
// Values below 1 keep the default.
func WithSalesLogSize(n int) Option {
	return func(cm *CoffeeMaker) {
		if n > 0 {
			cm.salesLimit = n
		}
	}
}

// CoffeeMaker is one vending machine: a recipe book, an inventory and the
// purchase decision that ties them together. It is safe for concurrent use.
//
// A purchase looks the recipe up in the book first and only then touches
// the inventory, so no call holds both locks at once.
type CoffeeMaker struct {
	book  *recipe.Book
	inv   *inventory.Inventory
	clock purchase.Clock

	capacity int
	stock    *inventory.Stock
	seed     []*recipe.Recipe

	salesMu    sync.Mutex
	sales      []purchase.Receipt // ring of at most salesLimit receipts
	salesNext  int                // slot the next receipt overwrites once full
	salesLimit int
}

// New creates a coffee maker with an empty recipe book of the default
// capacity and every ingredient at the default stock, unless opts say
// otherwise.
func New(opts ...Option) *CoffeeMaker {
	cm := &CoffeeMaker{
		capacity:   defaults.RecipeBookCapacity,
		clock:      time.Now,
		salesLimit: defaults.SalesLogSize,
	}
	for _, opt := range opts {
		opt(cm)
	}

	cm.book = recipe.NewBook(recipe.WithCapacity(cm.capacity))

	var invOpts []inventory.Option
	if cm.stock != nil {
		invOpts = append(invOpts, inventory.WithStock(*cm.stock))
	}
	cm.inv = inventory.New(invOpts...)

	for _, r := range cm.seed {
		if !cm.book.Add(r) {
			slog.Warn("seed recipe not added", "recipe", nameOf(r))
		}
	}
	cm.seed = nil

	slog.Debug("coffee maker ready",
		"capacity", cm.book.Capacity(),
		"recipes", cm.book.Len(),
	)
	return cm
}

// Capacity returns the number of recipe slots.
func (cm *CoffeeMaker) Capacity() int {
	return cm.book.Capacity()
}

// AddRecipe stores r in the first free slot. It returns false when a recipe
// with the same name exists, the book is full, or r is invalid.
func (cm *CoffeeMaker) AddRecipe(r *recipe.Recipe) bool {
	ok := cm.book.Add(r)
	slog.Info("add recipe", "recipe", nameOf(r), "added", ok)
	return ok
}

// DeleteRecipe empties the slot holding r's name. It returns false when no
// such recipe exists.
func (cm *CoffeeMaker) DeleteRecipe(r *recipe.Recipe) bool {
	ok := cm.book.Delete(r)
	slog.Info("delete recipe", "recipe", nameOf(r), "deleted", ok)
	return ok
}

// EditRecipe replaces the recipe named like existing with updated, in
// place.
func (cm *CoffeeMaker) EditRecipe(existing, updated *recipe.Recipe) bool {
	ok := cm.book.Edit(existing, updated)
	slog.Info("edit recipe", "recipe", nameOf(existing), "updated", nameOf(updated), "edited", ok)
	return ok
}

// GetRecipes returns a copy of every slot in order; empty slots are nil.
func (cm *CoffeeMaker) GetRecipes() []*recipe.Recipe {
	return cm.book.List()
}

// Recipe returns a copy of the recipe with the given name.
func (cm *CoffeeMaker) Recipe(name string) (*recipe.Recipe, bool) {
	return cm.book.Get(name)
}

// AddInventory replenishes the four ingredients. Amounts may be ints,
// base-10 strings or JSON numbers; see inventory.ParseAmounts. Either all
// four are added or, on error, none.
func (cm *CoffeeMaker) AddInventory(coffee, milk, sugar, chocolate any) error {
	return cm.inv.Add(coffee, milk, sugar, chocolate)
}

// CheckInventory returns the current stock.
func (cm *CoffeeMaker) CheckInventory() inventory.Stock {
	return cm.inv.Check()
}

// MakeCoffee sells the recipe named like r for payment and returns the
// change. A recipe that is nil or not in the book refunds the payment, as
// does an underpayment or a shortage of any ingredient.
func (cm *CoffeeMaker) MakeCoffee(r *recipe.Recipe, payment int) int {
	if r == nil {
		return cm.sell(context.Background(), "", nil, payment).Change
	}
	stored, _ := cm.book.Get(r.Name)
	return cm.sell(context.Background(), r.Name, stored, payment).Change
}

// Purchase sells the recipe with the given name and returns the full
// decision, including the receipt when a beverage was dispensed.
func (cm *CoffeeMaker) Purchase(ctx context.Context, name string, payment int) purchase.Result {
	stored, _ := cm.book.Get(name)
	return cm.sell(ctx, name, stored, payment)
}

// Sales returns the receipts of the most recent dispensed beverages,
// oldest first.
func (cm *CoffeeMaker) Sales() []purchase.Receipt {
	cm.salesMu.Lock()
	defer cm.salesMu.Unlock()

	out := make([]purchase.Receipt, 0, len(cm.sales))
	out = append(out, cm.sales[cm.salesNext:]...)
	out = append(out, cm.sales[:cm.salesNext]...)
	return out
}

func (cm *CoffeeMaker) sell(ctx context.Context, name string, r *recipe.Recipe, payment int) purchase.Result {
	res := purchase.PurchaseAt(r, payment, cm.inv, cm.clock)
	recordPurchase(res)

	if !res.Dispensed() {
		slog.InfoContext(ctx, "purchase refused",
			"recipe", name,
			"payment", payment,
			"outcome", res.Outcome.String(),
			"change", res.Change,
		)
		return res
	}

	cm.recordSale(*res.Receipt)
	slog.InfoContext(ctx, "beverage dispensed",
		"recipe", name,
		"payment", payment,
		"change", res.Change,
		"receipt", res.Receipt.ID.String(),
	)
	return res
}

func (cm *CoffeeMaker) recordSale(rc purchase.Receipt) {
	cm.salesMu.Lock()
	defer cm.salesMu.Unlock()

	if len(cm.sales) < cm.salesLimit {
		cm.sales = append(cm.sales, rc)
		return
	}
	cm.sales[cm.salesNext] = rc
	cm.salesNext = (cm.salesNext + 1) % cm.salesLimit
}

func nameOf(r *recipe.Recipe) string {
	if r == nil {
		return ""
	}
	return r.Name
}
