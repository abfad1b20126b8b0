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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cmerrors "github.com/vendstack/coffeemaker/pkg/errors"
	"github.com/vendstack/coffeemaker/pkg/inventory"
	"github.com/vendstack/coffeemaker/pkg/purchase"
	"github.com/vendstack/coffeemaker/pkg/server"
)

func newTestHandler(t *testing.T, opts ...Option) (*CoffeeMaker, http.Handler) {
	t.Helper()
	cm := New(opts...)
	s := server.New(server.WithHandler(cm.Routes()))
	return cm, s.Handler()
}

func do(t *testing.T, h http.Handler, method, path, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) server.ErrorResponse {
	t.Helper()
	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleListRecipes(t *testing.T) {
	_, h := newTestHandler(t, WithRecipes(coffeeRecipe()))

	rec := do(t, h, http.MethodGet, "/v1/recipes", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list RecipeList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 4, list.Capacity)
	require.Len(t, list.Recipes, 4)
	assert.Equal(t, "Coffee", list.Recipes[0].Name)
	assert.Nil(t, list.Recipes[1])
}

func TestHandleAddRecipe(t *testing.T) {
	cm, h := newTestHandler(t)

	body := `{"name":"Latte","price":100,"coffee":3,"milk":3,"sugar":1,"chocolate":0}`
	rec := do(t, h, http.MethodPost, "/v1/recipes", "application/json", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	_, ok := cm.Recipe("Latte")
	assert.True(t, ok)

	rec = do(t, h, http.MethodPost, "/v1/recipes", "application/json", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, cmerrors.ErrCodeConflict, decodeError(t, rec).Code)
}

func TestHandleAddRecipe_YAML(t *testing.T) {
	cm, h := newTestHandler(t)

	body := "name: Mocha\nprice: 75\ncoffee: 3\nmilk: 1\nsugar: 1\nchocolate: 2\n"
	rec := do(t, h, http.MethodPost, "/v1/recipes", "application/yaml", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	got, ok := cm.Recipe("Mocha")
	require.True(t, ok)
	assert.Equal(t, 2, got.AmtChocolate)
}

func TestHandleAddRecipe_Invalid(t *testing.T) {
	_, h := newTestHandler(t)

	tests := []struct {
		name     string
		body     string
		wantCode cmerrors.ErrorCode
	}{
		{"negative price", `{"name":"Bad","price":-1}`, cmerrors.ErrCodeInvalidRecipeField},
		{"empty name", `{"name":"","price":1}`, cmerrors.ErrCodeInvalidRecipeField},
		{"malformed json", `{"name":`, cmerrors.ErrCodeInvalidRequest},
		{"unknown field", `{"name":"X","size":"large"}`, cmerrors.ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/v1/recipes", "application/json", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestHandleAddRecipe_FullBook(t *testing.T) {
	_, h := newTestHandler(t, WithCapacity(1), WithRecipes(coffeeRecipe()))

	rec := do(t, h, http.MethodPost, "/v1/recipes", "application/json", `{"name":"Tea","price":5}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "recipe book is full", decodeError(t, rec).Message)
}

func TestHandleEditRecipe(t *testing.T) {
	cm, h := newTestHandler(t, WithRecipes(coffeeRecipe(), mochaRecipe()))

	rec := do(t, h, http.MethodPut, "/v1/recipes/Coffee", "application/json",
		`{"name":"Coffee","price":55,"coffee":3,"milk":1,"sugar":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got, _ := cm.Recipe("Coffee")
	assert.Equal(t, 55, got.Price)

	rec = do(t, h, http.MethodPut, "/v1/recipes/Tea", "application/json", `{"name":"Tea","price":5}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPut, "/v1/recipes/Coffee", "application/json", `{"name":"Mocha","price":5}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleEditRecipe_EscapedName(t *testing.T) {
	cm, h := newTestHandler(t, WithRecipes(hotChocolateRecipe()))

	rec := do(t, h, http.MethodPut, "/v1/recipes/Hot%20Chocolate", "application/json",
		`{"name":"Hot Chocolate","price":70,"milk":1,"sugar":1,"chocolate":4}`)
	require.Equal(t, http.StatusOK, rec.Code)

	got, _ := cm.Recipe("Hot Chocolate")
	assert.Equal(t, 70, got.Price)
}

func TestHandleDeleteRecipe(t *testing.T) {
	_, h := newTestHandler(t, WithRecipes(coffeeRecipe()))

	rec := do(t, h, http.MethodDelete, "/v1/recipes/Coffee", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodDelete, "/v1/recipes/Coffee", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleInventory(t *testing.T) {
	cm, h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/v1/inventory", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stock inventory.Stock
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stock))
	assert.Equal(t, inventory.DefaultStock(15), stock)

	rec = do(t, h, http.MethodPost, "/v1/inventory", "application/json",
		`{"coffee":5,"milk":"3","sugar":0,"chocolate":"1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, inventory.Stock{Coffee: 20, Milk: 18, Sugar: 15, Chocolate: 16}, cm.CheckInventory())
}

func TestHandleAddInventory_LargeIntegers(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"number", `{"coffee":3000000000,"milk":0,"sugar":0,"chocolate":0}`},
		{"string", `{"coffee":"3000000000","milk":0,"sugar":0,"chocolate":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm, h := newTestHandler(t)

			rec := do(t, h, http.MethodPost, "/v1/inventory", "application/json", tt.body)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, 3000000015, cm.CheckInventory().Coffee)
		})
	}
}

func TestHandleAddInventory_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode cmerrors.ErrorCode
	}{
		{"negative", `{"coffee":-1,"milk":0,"sugar":0,"chocolate":0}`, cmerrors.ErrCodeInvalidInventoryAmount},
		{"fraction", `{"coffee":1.5,"milk":0,"sugar":0,"chocolate":0}`, cmerrors.ErrCodeInvalidInventoryAmount},
		{"decimal point", `{"coffee":2.0,"milk":0,"sugar":0,"chocolate":0}`, cmerrors.ErrCodeInvalidInventoryAmount},
		{"exponent", `{"coffee":1e3,"milk":0,"sugar":0,"chocolate":0}`, cmerrors.ErrCodeInvalidInventoryAmount},
		{"text", `{"coffee":"lots","milk":0,"sugar":0,"chocolate":0}`, cmerrors.ErrCodeInvalidInventoryAmount},
		{"missing", `{"coffee":1,"milk":0,"sugar":0}`, cmerrors.ErrCodeInvalidInventoryAmount},
		{"malformed", `not json`, cmerrors.ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm, h := newTestHandler(t)
			before := cm.CheckInventory()

			rec := do(t, h, http.MethodPost, "/v1/inventory", "application/json", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			assert.Equal(t, before, cm.CheckInventory())
		})
	}
}

func TestHandlePurchase(t *testing.T) {
	cm, h := newTestHandler(t, WithRecipes(coffeeRecipe()))

	rec := do(t, h, http.MethodPost, "/v1/purchase", "application/json", `{"recipe":"Coffee","payment":100}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res purchase.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, purchase.OutcomeDispensed, res.Outcome)
	assert.Equal(t, 50, res.Change)
	require.NotNil(t, res.Receipt)

	rec = do(t, h, http.MethodPost, "/v1/purchase", "application/json", `{"recipe":"Coffee","payment":30}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var refused purchase.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &refused))
	assert.Equal(t, purchase.OutcomeInsufficientFunds, refused.Outcome)
	assert.Equal(t, 30, refused.Change)
	assert.Nil(t, refused.Receipt)

	assert.Equal(t, inventory.Stock{Coffee: 12, Milk: 14, Sugar: 14, Chocolate: 15}, cm.CheckInventory())

	rec = do(t, h, http.MethodGet, "/v1/sales", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var sales []purchase.Receipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sales))
	assert.Len(t, sales, 1)
}

func TestHandleSales_EmptyIsArray(t *testing.T) {
	_, h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/v1/sales", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	_, h := newTestHandler(t)

	rec := do(t, h, http.MethodPatch, "/v1/inventory", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRoutes_CoverEveryOperation(t *testing.T) {
	routes := New().Routes()
	for _, pattern := range []string{
		"GET /v1/recipes", "POST /v1/recipes", "PUT /v1/recipes/{name}",
		"DELETE /v1/recipes/{name}", "GET /v1/inventory", "POST /v1/inventory",
		"POST /v1/purchase", "GET /v1/sales",
	} {
		assert.Contains(t, routes, pattern)
	}
}
