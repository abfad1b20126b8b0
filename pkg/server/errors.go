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
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	cmerrors "github.com/vendstack/coffeemaker/pkg/errors"
	"github.com/vendstack/coffeemaker/pkg/serializer"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Code      cmerrors.ErrorCode `json:"code"`
	Message   string             `json:"message"`
	Details   map[string]any     `json:"details,omitempty"`
	RequestID string             `json:"requestId"`
	Timestamp time.Time          `json:"timestamp"`
	Retryable bool               `json:"retryable"`
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cmerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr maps err to a status code by its error code and writes
// it. Errors without a code are reported as internal errors with a generic
// message.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error) {
	var se *cmerrors.StructuredError
	if !errors.As(err, &se) {
		WriteError(w, r, http.StatusInternalServerError, cmerrors.ErrCodeInternal,
			"Internal server error", true, nil)
		return
	}

	status := StatusFromCode(se.Code)
	WriteError(w, r, status, se.Code, se.Message, status >= http.StatusInternalServerError, se.Context)
}

// StatusFromCode returns the HTTP status for an error code.
func StatusFromCode(code cmerrors.ErrorCode) int {
	switch code {
	case cmerrors.ErrCodeInvalidRequest,
		cmerrors.ErrCodeInvalidRecipeField,
		cmerrors.ErrCodeInvalidInventoryAmount:
		return http.StatusBadRequest
	case cmerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case cmerrors.ErrCodeConflict:
		return http.StatusConflict
	case cmerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case cmerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case cmerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case cmerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
