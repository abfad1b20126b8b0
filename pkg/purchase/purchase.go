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
package purchase

import (
	"time"

	"github.com/google/uuid"

	"github.com/vendstack/coffeemaker/pkg/recipe"
)

// Outcome classifies a purchase attempt.
type Outcome string

const (
	// OutcomeDispensed means the beverage was made and change returned.
	OutcomeDispensed Outcome = "dispensed"
	// OutcomeNoRecipe means no recipe was selected; payment is refunded.
	OutcomeNoRecipe Outcome = "no_recipe"
	// OutcomeInsufficientFunds means payment was below the price; payment is refunded.
	OutcomeInsufficientFunds Outcome = "insufficient_funds"
	// OutcomeInsufficientIngredients means stock could not cover the recipe; payment is refunded.
	OutcomeInsufficientIngredients Outcome = "insufficient_ingredients"
)

// Outcomes lists every outcome.
var Outcomes = []Outcome{
	OutcomeDispensed,
	OutcomeNoRecipe,
	OutcomeInsufficientFunds,
	OutcomeInsufficientIngredients,
}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	return string(o)
}

// Stocker is the part of the inventory a purchase needs: an atomic
// check-and-consume of one cup's requirement.
type Stocker interface {
	TryConsume(req recipe.Requirement) bool
}

// Receipt records a dispensed beverage. It holds copies of the values the
// sale used, not a reference to the recipe.
type Receipt struct {
	ID          uuid.UUID          `json:"id" yaml:"id"`
	Recipe      string             `json:"recipe" yaml:"recipe"`
	Price       int                `json:"price" yaml:"price"`
	Payment     int                `json:"payment" yaml:"payment"`
	Change      int                `json:"change" yaml:"change"`
	Requirement recipe.Requirement `json:"requirement" yaml:"requirement"`
	Timestamp   time.Time          `json:"timestamp" yaml:"timestamp"`
}

// Result is the decision of one purchase attempt. Change is what goes back
// to the buyer: payment minus price when dispensed, the full payment
// otherwise.
type Result struct {
	Outcome Outcome  `json:"outcome" yaml:"outcome"`
	Change  int      `json:"change" yaml:"change"`
	Receipt *Receipt `json:"receipt,omitempty" yaml:"receipt,omitempty"`
}

// Dispensed reports whether the beverage was made.
func (r Result) Dispensed() bool {
	return r.Outcome == OutcomeDispensed
}

// Clock returns the current time; tests substitute a fixed clock.
type Clock func() time.Time

// Purchase decides one sale of r paid with payment against stock.
//
// The checks run in a fixed order and only the last path touches stock:
//  1. r is nil: refund payment.
//  2. payment is below r.Price: refund payment.
//  3. stock cannot cover r's requirement: refund payment.
//  4. otherwise consume the requirement and return payment - r.Price.
//
// A refused sale never consumes anything. A negative payment is refunded
// like any other insufficient payment.
func Purchase(r *recipe.Recipe, payment int, stock Stocker) Result {
	return PurchaseAt(r, payment, stock, time.Now)
}

// PurchaseAt is Purchase with an explicit clock for the receipt timestamp.
func PurchaseAt(r *recipe.Recipe, payment int, stock Stocker, now Clock) Result {
	if r == nil {
		return refund(OutcomeNoRecipe, payment)
	}
	if payment < r.Price {
		return refund(OutcomeInsufficientFunds, payment)
	}

	req := r.Requirement()
	if stock == nil || !stock.TryConsume(req) {
		return refund(OutcomeInsufficientIngredients, payment)
	}

	change := payment - r.Price
	return Result{
		Outcome: OutcomeDispensed,
		Change:  change,
		Receipt: &Receipt{
			ID:          uuid.New(),
			Recipe:      r.Name,
			Price:       r.Price,
			Payment:     payment,
			Change:      change,
			Requirement: req,
			Timestamp:   now().UTC(),
		},
	}
}

func refund(o Outcome, payment int) Result {
	return Result{
		Outcome: o,
		Change:  payment,
	}
}
