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

package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/innovationmech/userd/internal/userd/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockHealthService is a mock implementation of interfaces.HealthService
type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) CheckHealth(ctx context.Context) *types.HealthStatus {
	args := m.Called(ctx)
	return args.Get(0).(*types.HealthStatus)
}

func performHealthCheck(srv *MockHealthService) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(srv).RegisterHTTP(router)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_HealthCheck_Healthy(t *testing.T) {
	status := types.NewHealthStatus(types.HealthStatusHealthy, "1.0.0", "test")
	status.AddService("database", "healthy")
	status.AddService("api", "healthy")

	mockSrv := &MockHealthService{}
	mockSrv.On("CheckHealth", mock.Anything).Return(status)

	w := performHealthCheck(mockSrv)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	services := body["services"].(map[string]interface{})
	assert.Equal(t, "healthy", services["database"])
	mockSrv.AssertExpectations(t)
}

func TestHandler_HealthCheck_Degraded(t *testing.T) {
	status := types.NewHealthStatus(types.HealthStatusDegraded, "1.0.0", "test")
	status.AddService("database", "unhealthy: connection refused")
	status.AddService("api", "healthy")

	mockSrv := &MockHealthService{}
	mockSrv.On("CheckHealth", mock.Anything).Return(status)

	w := performHealthCheck(mockSrv)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body["status"])
	mockSrv.AssertExpectations(t)
}
