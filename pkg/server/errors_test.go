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

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	cmerrors "github.com/vendstack/coffeemaker/pkg/errors"
)

func TestWriteError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	ctx := context.WithValue(req.Context(), contextKeyRequestID, "req-123")
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()

	WriteError(rec, req, http.StatusBadRequest, cmerrors.ErrCodeInvalidRequest,
		"bad input", false, map[string]any{"field": "price"})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Code != cmerrors.ErrCodeInvalidRequest {
		t.Errorf("expected code %s, got %s", cmerrors.ErrCodeInvalidRequest, resp.Code)
	}
	if resp.RequestID != "req-123" {
		t.Errorf("expected request ID req-123, got %s", resp.RequestID)
	}
	if resp.Details["field"] != "price" {
		t.Errorf("expected details to carry field, got %v", resp.Details)
	}
	if resp.Retryable {
		t.Error("expected retryable=false")
	}
}

func TestWriteError_GeneratesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	WriteError(rec, req, http.StatusInternalServerError, cmerrors.ErrCodeInternal, "boom", true, nil)

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.RequestID == "" {
		t.Error("expected generated request ID")
	}
}

func TestWriteErrorFromErr(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   cmerrors.ErrorCode
	}{
		{
			name:       "inventory amount",
			err:        cmerrors.New(cmerrors.ErrCodeInvalidInventoryAmount, "bad amount"),
			wantStatus: http.StatusBadRequest,
			wantCode:   cmerrors.ErrCodeInvalidInventoryAmount,
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("lookup: %w", cmerrors.New(cmerrors.ErrCodeNotFound, "missing")),
			wantStatus: http.StatusNotFound,
			wantCode:   cmerrors.ErrCodeNotFound,
		},
		{
			name:       "conflict",
			err:        cmerrors.New(cmerrors.ErrCodeConflict, "exists"),
			wantStatus: http.StatusConflict,
			wantCode:   cmerrors.ErrCodeConflict,
		},
		{
			name:       "plain error",
			err:        fmt.Errorf("plain"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   cmerrors.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/inventory", nil)
			rec := httptest.NewRecorder()

			WriteErrorFromErr(rec, req, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			var resp ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestStatusFromCode(t *testing.T) {
	tests := map[cmerrors.ErrorCode]int{
		cmerrors.ErrCodeInvalidRecipeField: http.StatusBadRequest,
		cmerrors.ErrCodeMethodNotAllowed:   http.StatusMethodNotAllowed,
		cmerrors.ErrCodeRateLimitExceeded:  http.StatusTooManyRequests,
		cmerrors.ErrCodeTimeout:            http.StatusGatewayTimeout,
		cmerrors.ErrCodeUnavailable:        http.StatusServiceUnavailable,
		cmerrors.ErrCodeInternal:           http.StatusInternalServerError,
		cmerrors.ErrorCode("UNKNOWN"):      http.StatusInternalServerError,
	}
	for code, want := range tests {
		if got := StatusFromCode(code); got != want {
			t.Errorf("StatusFromCode(%s) = %d, want %d", code, got, want)
		}
	}
}
