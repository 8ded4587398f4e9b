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

package deps

import (
	"errors"
	"fmt"

	"github.com/innovationmech/userd/internal/userd/config"
	"github.com/innovationmech/userd/internal/userd/db"
	"github.com/innovationmech/userd/internal/userd/interfaces"
	"github.com/innovationmech/userd/internal/userd/repository"
	"github.com/innovationmech/userd/internal/userd/service/health"
	userv1 "github.com/innovationmech/userd/internal/userd/service/user/v1"
	"github.com/innovationmech/userd/internal/userd/types"
	"github.com/innovationmech/userd/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialization errors
var (
	ErrDatabaseConnection    = errors.New("failed to connect to database")
	ErrServiceInitialization = errors.New("failed to initialize services")
)

// Dependencies manages all service dependencies using interface types
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	DB     *gorm.DB

	// Repository layer
	UserRepo repository.UserRepository

	// Service layer
	UserSrv   interfaces.UserService
	HealthSrv interfaces.HealthService
}

// NewDependencies opens the database, ensures schema and seed data, and
// builds the repository and service layers. A failure here is fatal: the
// process cannot start without its store.
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	database, err := db.Open(cfg)
	if err != nil {
		logger.GetLogger().Error("failed to open database", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrDatabaseConnection, err)
	}
	if err := db.Initialize(database); err != nil {
		logger.GetLogger().Error("failed to initialize database", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrDatabaseConnection, err)
	}

	userRepo := repository.NewUserRepository(database)

	userSrv, err := userv1.NewUserSrv(
		userv1.WithUserRepository(userRepo),
	)
	if err != nil {
		logger.GetLogger().Error("failed to create user service", zap.Error(err))
		return nil, fmt.Errorf("%w: user service - %v", ErrServiceInitialization, err)
	}

	healthSrv := health.NewHealthSrvWithConfig(&health.HealthServiceConfig{
		UserRepo:    userRepo,
		Version:     types.ServiceVersion,
		Environment: cfg.Env,
	})

	deps := &Dependencies{
		Config:    cfg,
		DB:        database,
		UserRepo:  userRepo,
		UserSrv:   userSrv,
		HealthSrv: healthSrv,
	}

	if err := deps.Validate(); err != nil {
		logger.GetLogger().Error("dependency validation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: validation failed - %v", ErrServiceInitialization, err)
	}

	logger.GetLogger().Info("successfully initialized all dependencies")
	return deps, nil
}

// Validate checks that every dependency is present.
func (d *Dependencies) Validate() error {
	if d.Config == nil {
		return errors.New("config is nil")
	}
	if d.DB == nil {
		return errors.New("database connection is nil")
	}
	if d.UserRepo == nil {
		return errors.New("user repository is nil")
	}
	if d.UserSrv == nil {
		return errors.New("user service is nil")
	}
	if d.HealthSrv == nil {
		return errors.New("health service is nil")
	}
	return nil
}

// Close releases the underlying database handle.
func (d *Dependencies) Close() error {
	if d.DB == nil {
		return nil
	}
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
