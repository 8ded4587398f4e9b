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
	"fmt"

	"github.com/innovationmech/userd/internal/userd/interfaces"
	"github.com/innovationmech/userd/internal/userd/repository"
	"github.com/innovationmech/userd/internal/userd/types"
	"github.com/innovationmech/userd/pkg/logger"
	"go.uber.org/zap"
)

// HealthSrv is an alias for the HealthService interface
type HealthSrv = interfaces.HealthService

// HealthServiceConfig holds configuration for the health service
type HealthServiceConfig struct {
	UserRepo    repository.UserRepository
	Version     string
	Environment string
}

// Service implements health check business logic
type Service struct {
	config *HealthServiceConfig
}

// NewHealthSrvWithConfig creates a new health service instance with configuration
func NewHealthSrvWithConfig(config *HealthServiceConfig) interfaces.HealthService {
	if config.Version == "" {
		config.Version = "1.0.0"
	}
	return &Service{config: config}
}

// CheckHealth probes the persistence store and reports per-service
// sub-status. Storage being unreachable degrades the status rather than
// failing the check.
func (s *Service) CheckHealth(ctx context.Context) *types.HealthStatus {
	dbStatus := "healthy"
	if err := s.config.UserRepo.Ping(ctx); err != nil {
		dbStatus = fmt.Sprintf("unhealthy: %v", err)
		logger.GetLogger().Warn("database health check failed", zap.Error(err))
	}

	overall := types.HealthStatusHealthy
	if dbStatus != "healthy" {
		overall = types.HealthStatusDegraded
	}

	status := types.NewHealthStatus(overall, s.config.Version, s.config.Environment)
	status.AddService("database", dbStatus)
	status.AddService("api", "healthy")
	return status
}
