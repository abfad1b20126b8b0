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

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendstack/coffeemaker/pkg/coffeemaker"
	"github.com/vendstack/coffeemaker/pkg/server"
)

// Serve blocks until a signal arrives, so these tests cover the pieces it
// wires together: build variables, machine construction and the route table
// behind the server middleware.

func TestConstants(t *testing.T) {
	assert.Equal(t, "coffeemakerd", name)
	assert.Equal(t, "dev", versionDefault)
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func TestNewCoffeeMaker_Default(t *testing.T) {
	cm, err := NewCoffeeMaker("")
	require.NoError(t, err)
	assert.Equal(t, 4, cm.Capacity())
	assert.Equal(t, 15, cm.CheckInventory().Milk)
}

func TestNewCoffeeMaker_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machine.yaml")
	content := "capacity: 2\nrecipes:\n  - name: Coffee\n    price: 50\n    coffee: 3\n    milk: 1\n    sugar: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cm, err := NewCoffeeMaker(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cm.Capacity())

	r, ok := cm.Recipe("Coffee")
	require.True(t, ok)
	assert.Equal(t, 50, r.Price)
}

func TestNewCoffeeMaker_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("capacity: -1\n"), 0o600))

	_, err := NewCoffeeMaker(path)
	assert.Error(t, err)
}

func TestServeContext_BadConfig(t *testing.T) {
	err := ServeContext(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestServeContext_KeepsCallerLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	err := ServeContext(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	assert.Same(t, logger, slog.Default())
	assert.Contains(t, buf.String(), "failed to build coffee maker")
}

func TestRoutes_BehindServer(t *testing.T) {
	cm := coffeemaker.New()
	h := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(cm.Routes()),
	).Handler()

	body := `{"name":"Coffee","price":50,"coffee":3,"milk":1,"sugar":1,"chocolate":0}`
	req := httptest.NewRequest(http.MethodPost, "/v1/recipes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/v1/purchase", strings.NewReader(`{"recipe":"Coffee","payment":75}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Outcome string `json:"outcome"`
		Change  int    `json:"change"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "dispensed", res.Outcome)
	assert.Equal(t, 25, res.Change)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
