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
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	cmerrors "github.com/vendstack/coffeemaker/pkg/errors"
	"github.com/vendstack/coffeemaker/pkg/recipe"
)

// Ingredient names, in the order amounts are supplied to Add and ParseAmounts.
const (
	Coffee    = "coffee"
	Milk      = "milk"
	Sugar     = "sugar"
	Chocolate = "chocolate"
)

// Ingredients lists every ingredient in canonical order.
var Ingredients = []string{Coffee, Milk, Sugar, Chocolate}

// Stock is a value snapshot of the four ingredient counters.
type Stock struct {
	Coffee    int `json:"coffee" yaml:"coffee"`
	Milk      int `json:"milk" yaml:"milk"`
	Sugar     int `json:"sugar" yaml:"sugar"`
	Chocolate int `json:"chocolate" yaml:"chocolate"`
}

// DefaultStock returns the stock of a freshly filled machine.
func DefaultStock(units int) Stock {
	return Stock{Coffee: units, Milk: units, Sugar: units, Chocolate: units}
}

// Get returns the counter for an ingredient name.
func (s Stock) Get(ingredient string) (int, bool) {
	switch ingredient {
	case Coffee:
		return s.Coffee, true
	case Milk:
		return s.Milk, true
	case Sugar:
		return s.Sugar, true
	case Chocolate:
		return s.Chocolate, true
	default:
		return 0, false
	}
}

// Validate fails with ErrCodeInvalidInventoryAmount when any counter is negative.
func (s Stock) Validate() error {
	for _, name := range Ingredients {
		v, _ := s.Get(name)
		if v < 0 {
			return invalidAmount(name, v, nil)
		}
	}
	return nil
}

// Covers reports whether every amount of req fits in s.
// Requirements with a negative amount are never covered.
func (s Stock) Covers(req recipe.Requirement) bool {
	if req.Coffee < 0 || req.Milk < 0 || req.Sugar < 0 || req.Chocolate < 0 {
		return false
	}
	return req.Coffee <= s.Coffee &&
		req.Milk <= s.Milk &&
		req.Sugar <= s.Sugar &&
		req.Chocolate <= s.Chocolate
}

// ParseAmounts converts four untyped replenishment amounts into a Stock
// delta. Every amount must be a well-formed non-negative integer: an int of
// any width, a base-10 string, a json.Number or an integral float64. The
// first offending amount fails the whole call with
// ErrCodeInvalidInventoryAmount.
//
// ParseAmounts is pure; callers apply the returned delta only on success.
func ParseAmounts(coffee, milk, sugar, chocolate any) (Stock, error) {
	var out Stock
	targets := []struct {
		name string
		raw  any
		dst  *int
	}{
		{Coffee, coffee, &out.Coffee},
		{Milk, milk, &out.Milk},
		{Sugar, sugar, &out.Sugar},
		{Chocolate, chocolate, &out.Chocolate},
	}

	for _, t := range targets {
		v, err := parseAmount(t.name, t.raw)
		if err != nil {
			return Stock{}, err
		}
		*t.dst = v
	}
	return out, nil
}

func parseAmount(ingredient string, raw any) (int, error) {
	var (
		v   int64
		err error
	)

	switch t := raw.(type) {
	case int:
		v = int64(t)
	case int8:
		v = int64(t)
	case int16:
		v = int64(t)
	case int32:
		v = int64(t)
	case int64:
		v = t
	case uint:
		if uint64(t) > math.MaxInt64 {
			return 0, invalidAmount(ingredient, raw, nil)
		}
		v = int64(t)
	case uint8:
		v = int64(t)
	case uint16:
		v = int64(t)
	case uint32:
		v = int64(t)
	case uint64:
		if t > math.MaxInt64 {
			return 0, invalidAmount(ingredient, raw, nil)
		}
		v = int64(t)
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) || math.Abs(t) > math.MaxInt32 {
			return 0, invalidAmount(ingredient, raw, nil)
		}
		v = int64(t)
	case json.Number:
		v, err = strconv.ParseInt(t.String(), 10, 64)
	case string:
		v, err = strconv.ParseInt(strings.TrimSpace(t), 10, 64)
	default:
		return 0, invalidAmount(ingredient, raw, fmt.Errorf("unsupported type %T", raw))
	}

	if err != nil {
		return 0, invalidAmount(ingredient, raw, err)
	}
	if v < 0 || v > math.MaxInt {
		return 0, invalidAmount(ingredient, raw, nil)
	}
	return int(v), nil
}

func invalidAmount(ingredient string, raw any, cause error) error {
	ctx := map[string]any{
		"ingredient": ingredient,
		"value":      fmt.Sprintf("%v", raw),
	}
	msg := ingredient + " amount must be a non-negative integer"
	if cause != nil {
		return cmerrors.WrapWithContext(cmerrors.ErrCodeInvalidInventoryAmount, msg, cause, ctx)
	}
	return cmerrors.NewWithContext(cmerrors.ErrCodeInvalidInventoryAmount, msg, ctx)
}
