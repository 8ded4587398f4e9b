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
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovationmech/userd/internal/userd/interfaces"
)

// Handler handles HTTP requests for the health service.
type Handler struct {
	service interfaces.HealthService
}

// NewHandler creates a new health HTTP handler
func NewHandler(service interfaces.HealthService) *Handler {
	return &Handler{service: service}
}

// RegisterHTTP registers the health route on the root router.
func (h *Handler) RegisterHTTP(router *gin.Engine) {
	router.GET("/health", h.HealthCheck)
}

// HealthCheck handles HTTP health check requests.
//
//	@Summary		Health check
//	@Description	Reports service health with per-dependency sub-status
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	types.HealthStatus	"Service healthy"
//	@Failure		503	{object}	types.HealthStatus	"Service degraded"
//	@Router			/health [get]
func (h *Handler) HealthCheck(c *gin.Context) {
	status := h.service.CheckHealth(c.Request.Context())

	code := http.StatusOK
	if !status.IsHealthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
