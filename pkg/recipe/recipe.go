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
	"strconv"
	"strings"

	cmerrors "github.com/vendstack/coffeemaker/pkg/errors"
)

// Field names used in error context and logs.
const (
	FieldName      = "name"
	FieldPrice     = "price"
	FieldCoffee    = "coffee"
	FieldMilk      = "milk"
	FieldSugar     = "sugar"
	FieldChocolate = "chocolate"
)

// Recipe is the named specification of one beverage: its price and the
// ingredient units consumed per cup.
//
// Fields are exported for decoding; code that builds recipes from operator
// input should go through the setters, which reject values outside the
// field's domain and leave the field untouched.
type Recipe struct {
	Name         string `json:"name" yaml:"name"`
	Price        int    `json:"price" yaml:"price"`
	AmtCoffee    int    `json:"coffee" yaml:"coffee"`
	AmtMilk      int    `json:"milk" yaml:"milk"`
	AmtSugar     int    `json:"sugar" yaml:"sugar"`
	AmtChocolate int    `json:"chocolate" yaml:"chocolate"`
}

// Requirement is the per-cup ingredient demand of a recipe.
// It is a value copy, detached from the recipe it was taken from.
type Requirement struct {
	Coffee    int `json:"coffee" yaml:"coffee"`
	Milk      int `json:"milk" yaml:"milk"`
	Sugar     int `json:"sugar" yaml:"sugar"`
	Chocolate int `json:"chocolate" yaml:"chocolate"`
}

// New returns a recipe with the given name and all amounts zero.
// The name is not validated here; Validate or SetName do that.
func New(name string) *Recipe {
	return &Recipe{Name: name}
}

// SetName sets the recipe name. Empty or blank names are rejected.
func (r *Recipe) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return cmerrors.NewWithContext(cmerrors.ErrCodeInvalidRecipeField,
			"recipe name must not be empty", map[string]any{
				"field": FieldName,
			})
	}
	r.Name = name
	return nil
}

// SetPrice sets the price in currency units.
func (r *Recipe) SetPrice(price int) error {
	return setAmount(&r.Price, FieldPrice, price)
}

// SetAmtCoffee sets the coffee units consumed per cup.
func (r *Recipe) SetAmtCoffee(amt int) error {
	return setAmount(&r.AmtCoffee, FieldCoffee, amt)
}

// SetAmtMilk sets the milk units consumed per cup.
func (r *Recipe) SetAmtMilk(amt int) error {
	return setAmount(&r.AmtMilk, FieldMilk, amt)
}

// SetAmtSugar sets the sugar units consumed per cup.
func (r *Recipe) SetAmtSugar(amt int) error {
	return setAmount(&r.AmtSugar, FieldSugar, amt)
}

// SetAmtChocolate sets the chocolate units consumed per cup.
func (r *Recipe) SetAmtChocolate(amt int) error {
	return setAmount(&r.AmtChocolate, FieldChocolate, amt)
}

// ParsePrice parses operator text into the price.
func (r *Recipe) ParsePrice(s string) error {
	return parseAmount(&r.Price, FieldPrice, s)
}

// ParseAmtCoffee parses operator text into the coffee amount.
func (r *Recipe) ParseAmtCoffee(s string) error {
	return parseAmount(&r.AmtCoffee, FieldCoffee, s)
}

// ParseAmtMilk parses operator text into the milk amount.
func (r *Recipe) ParseAmtMilk(s string) error {
	return parseAmount(&r.AmtMilk, FieldMilk, s)
}

// ParseAmtSugar parses operator text into the sugar amount.
func (r *Recipe) ParseAmtSugar(s string) error {
	return parseAmount(&r.AmtSugar, FieldSugar, s)
}

// ParseAmtChocolate parses operator text into the chocolate amount.
func (r *Recipe) ParseAmtChocolate(s string) error {
	return parseAmount(&r.AmtChocolate, FieldChocolate, s)
}

// Validate checks every field of the recipe.
func (r *Recipe) Validate() error {
	if r == nil {
		return cmerrors.New(cmerrors.ErrCodeInvalidRecipeField, "recipe cannot be nil")
	}
	if strings.TrimSpace(r.Name) == "" {
		return cmerrors.NewWithContext(cmerrors.ErrCodeInvalidRecipeField,
			"recipe name must not be empty", map[string]any{
				"field": FieldName,
			})
	}

	fields := []struct {
		name  string
		value int
	}{
		{FieldPrice, r.Price},
		{FieldCoffee, r.AmtCoffee},
		{FieldMilk, r.AmtMilk},
		{FieldSugar, r.AmtSugar},
		{FieldChocolate, r.AmtChocolate},
	}
	for _, f := range fields {
		if f.value < 0 {
			return negativeField(r.Name, f.name, f.value)
		}
	}
	return nil
}

// Requirement returns the ingredient demand of one cup.
func (r *Recipe) Requirement() Requirement {
	return Requirement{
		Coffee:    r.AmtCoffee,
		Milk:      r.AmtMilk,
		Sugar:     r.AmtSugar,
		Chocolate: r.AmtChocolate,
	}
}

// Clone returns an independent copy of the recipe.
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// Equal reports whether two recipes share the same identity.
// Identity is the exact, case-sensitive name.
func (r *Recipe) Equal(other *Recipe) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Name == other.Name
}

func setAmount(dst *int, field string, value int) error {
	if value < 0 {
		return negativeField("", field, value)
	}
	*dst = value
	return nil
}

func parseAmount(dst *int, field, s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return cmerrors.WrapWithContext(cmerrors.ErrCodeInvalidRecipeField,
			field+" must be a non-negative integer", err, map[string]any{
				"field": field,
				"value": s,
			})
	}
	return setAmount(dst, field, v)
}

func negativeField(name, field string, value int) error {
	ctx := map[string]any{
		"field": field,
		"value": value,
	}
	if name != "" {
		ctx["recipe"] = name
	}
	return cmerrors.NewWithContext(cmerrors.ErrCodeInvalidRecipeField,
		field+" must not be negative", ctx)
}
