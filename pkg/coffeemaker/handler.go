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
	"net/http"

	cmerrors "github.com/vendstack/coffeemaker/pkg/errors"
	"github.com/vendstack/coffeemaker/pkg/purchase"
	"github.com/vendstack/coffeemaker/pkg/recipe"
	"github.com/vendstack/coffeemaker/pkg/serializer"
	"github.com/vendstack/coffeemaker/pkg/server"
)

// RecipeList is the body of GET /v1/recipes. Recipes has one entry per
// slot; empty slots are null.
type RecipeList struct {
	Capacity int              `json:"capacity" yaml:"capacity"`
	Recipes  []*recipe.Recipe `json:"recipes" yaml:"recipes"`
}

// InventoryRequest is the body of POST /v1/inventory. Each amount may be a
// number or a numeric string; all four are required.
type InventoryRequest struct {
	Coffee    any `json:"coffee" yaml:"coffee"`
	Milk      any `json:"milk" yaml:"milk"`
	Sugar     any `json:"sugar" yaml:"sugar"`
	Chocolate any `json:"chocolate" yaml:"chocolate"`
}

// PurchaseRequest is the body of POST /v1/purchase.
type PurchaseRequest struct {
	Recipe  string `json:"recipe" yaml:"recipe"`
	Payment int    `json:"payment" yaml:"payment"`
}

// Routes returns the machine's HTTP handlers keyed by mux pattern.
func (cm *CoffeeMaker) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET /v1/recipes":           cm.handleListRecipes,
		"POST /v1/recipes":          cm.handleAddRecipe,
		"PUT /v1/recipes/{name}":    cm.handleEditRecipe,
		"DELETE /v1/recipes/{name}": cm.handleDeleteRecipe,
		"GET /v1/inventory":         cm.handleCheckInventory,
		"POST /v1/inventory":        cm.handleAddInventory,
		"POST /v1/purchase":         cm.handlePurchase,
		"GET /v1/sales":             cm.handleSales,
	}
}

func (cm *CoffeeMaker) handleListRecipes(w http.ResponseWriter, _ *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, RecipeList{
		Capacity: cm.Capacity(),
		Recipes:  cm.GetRecipes(),
	})
}

func (cm *CoffeeMaker) handleAddRecipe(w http.ResponseWriter, r *http.Request) {
	rec, ok := decodeRecipe(w, r)
	if !ok {
		return
	}

	if !cm.AddRecipe(rec) {
		msg := "recipe book is full"
		if _, exists := cm.Recipe(rec.Name); exists {
			msg = "recipe already exists"
		}
		server.WriteError(w, r, http.StatusConflict, cmerrors.ErrCodeConflict, msg, false,
			map[string]any{"recipe": rec.Name, "capacity": cm.Capacity()})
		return
	}

	serializer.RespondJSON(w, http.StatusCreated, rec)
}

func (cm *CoffeeMaker) handleEditRecipe(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	updated, ok := decodeRecipe(w, r)
	if !ok {
		return
	}

	if !cm.EditRecipe(recipe.New(name), updated) {
		if _, exists := cm.Recipe(name); !exists {
			server.WriteError(w, r, http.StatusNotFound, cmerrors.ErrCodeNotFound,
				"recipe not found", false, map[string]any{"recipe": name})
			return
		}
		server.WriteError(w, r, http.StatusConflict, cmerrors.ErrCodeConflict,
			"another recipe already has that name", false, map[string]any{"recipe": updated.Name})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, updated)
}

func (cm *CoffeeMaker) handleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if !cm.DeleteRecipe(recipe.New(name)) {
		server.WriteError(w, r, http.StatusNotFound, cmerrors.ErrCodeNotFound,
			"recipe not found", false, map[string]any{"recipe": name})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (cm *CoffeeMaker) handleCheckInventory(w http.ResponseWriter, _ *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, cm.CheckInventory())
}

func (cm *CoffeeMaker) handleAddInventory(w http.ResponseWriter, r *http.Request) {
	req, err := serializer.DecodeRequest[InventoryRequest](w, r)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, cmerrors.ErrCodeInvalidRequest,
			err.Error(), false, nil)
		return
	}

	if err := cm.AddInventory(req.Coffee, req.Milk, req.Sugar, req.Chocolate); err != nil {
		server.WriteErrorFromErr(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, cm.CheckInventory())
}

func (cm *CoffeeMaker) handlePurchase(w http.ResponseWriter, r *http.Request) {
	req, err := serializer.DecodeRequest[PurchaseRequest](w, r)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, cmerrors.ErrCodeInvalidRequest,
			err.Error(), false, nil)
		return
	}

	if err := r.Context().Err(); err != nil {
		server.WriteError(w, r, http.StatusGatewayTimeout, cmerrors.ErrCodeTimeout,
			"request cancelled before purchase", true, nil)
		return
	}

	// Refusals are expected outcomes and still answer 200.
	serializer.RespondJSON(w, http.StatusOK, cm.Purchase(r.Context(), req.Recipe, req.Payment))
}

func (cm *CoffeeMaker) handleSales(w http.ResponseWriter, _ *http.Request) {
	sales := cm.Sales()
	if sales == nil {
		sales = []purchase.Receipt{}
	}
	serializer.RespondJSON(w, http.StatusOK, sales)
}

// decodeRecipe reads and validates a recipe body, writing the error
// response itself when it returns false.
func decodeRecipe(w http.ResponseWriter, r *http.Request) (*recipe.Recipe, bool) {
	rec, err := serializer.DecodeRequest[recipe.Recipe](w, r)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, cmerrors.ErrCodeInvalidRequest,
			err.Error(), false, nil)
		return nil, false
	}
	if err := rec.Validate(); err != nil {
		server.WriteErrorFromErr(w, r, err)
		return nil, false
	}
	return rec, true
}

