// Copyright © 2025 jackelyj <dreamerlyj@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
//

package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFactories(t *testing.T) {
	tests := []struct {
		name           string
		err            *ServiceError
		expectedCode   string
		expectedStatus int
		expectedMsg    string
	}{
		{"validation", ErrValidation("Name is required"), ErrCodeValidation, http.StatusBadRequest, "Name is required"},
		{"not found", ErrNotFound("User"), ErrCodeNotFound, http.StatusNotFound, "User not found"},
		{"conflict", ErrConflict("Email already exists"), ErrCodeConflict, http.StatusConflict, "Email already exists"},
		{"internal", ErrInternal("boom"), ErrCodeInternal, http.StatusInternalServerError, "boom"},
		{"unavailable", ErrServiceUnavailable("down"), ErrCodeServiceUnavailable, http.StatusServiceUnavailable, "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, tt.err.Code)
			assert.Equal(t, tt.expectedStatus, tt.err.HTTPStatus)
			assert.Equal(t, tt.expectedMsg, tt.err.Message)
			assert.Equal(t, fmt.Sprintf("%s: %s", tt.expectedCode, tt.expectedMsg), tt.err.Error())
		})
	}
}

func TestServiceError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := ErrInternalWithCause("failed to create user", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, err.Unwrap())
}

func TestGetServiceError(t *testing.T) {
	se := ErrConflict("Email already exists")
	wrapped := fmt.Errorf("create user: %w", se)

	assert.True(t, IsServiceError(wrapped))
	got := GetServiceError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, ErrCodeConflict, got.Code)

	assert.False(t, IsServiceError(errors.New("plain")))
	assert.Nil(t, GetServiceError(errors.New("plain")))
}
