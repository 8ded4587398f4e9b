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

import "time"

// Health status constants
const (
	HealthStatusHealthy  = "healthy"
	HealthStatusDegraded = "degraded"
)

// HealthStatus is the document returned by the health endpoint. Services
// carries the per-dependency sub-status ("database", "api").
type HealthStatus struct {
	Status      string            `json:"status"`
	Timestamp   string            `json:"timestamp"`
	Version     string            `json:"version"`
	Services    map[string]string `json:"services"`
	Uptime      string            `json:"uptime"`
	Environment string            `json:"environment"`
}

// NewHealthStatus creates a health status document stamped with the current UTC time.
func NewHealthStatus(status, version, environment string) *HealthStatus {
	return &HealthStatus{
		Status:      status,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Version:     version,
		Services:    make(map[string]string),
		Uptime:      "Service running",
		Environment: environment,
	}
}

// AddService records the sub-status of a single dependency.
func (h *HealthStatus) AddService(name, status string) {
	if h.Services == nil {
		h.Services = make(map[string]string)
	}
	h.Services[name] = status
}

// IsHealthy checks if the service is healthy
func (h *HealthStatus) IsHealthy() bool {
	return h.Status == HealthStatusHealthy
}
