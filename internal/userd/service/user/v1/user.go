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

package v1

import (
	"context"
	"errors"

	"github.com/innovationmech/userd/internal/userd/interfaces"
	"github.com/innovationmech/userd/internal/userd/model"
	"github.com/innovationmech/userd/internal/userd/repository"
	"github.com/innovationmech/userd/internal/userd/types"
	"github.com/innovationmech/userd/pkg/logger"
	"go.uber.org/zap"
)

// UserSrv is an alias for the UserService interface
type UserSrv = interfaces.UserService

// UserServiceConfig user service config
type UserServiceConfig struct {
	UserRepo repository.UserRepository
}

// UserServiceOption user service option function type
type UserServiceOption func(*UserServiceConfig)

// userService is the implementation of the UserSrv interface
type userService struct {
	config *UserServiceConfig
}

// WithUserRepository set the user repository dependency
func WithUserRepository(repo repository.UserRepository) UserServiceOption {
	return func(config *UserServiceConfig) {
		config.UserRepo = repo
	}
}

// NewUserSrv creates a new user service using options pattern.
func NewUserSrv(opts ...UserServiceOption) (interfaces.UserService, error) {
	config := &UserServiceConfig{}

	for _, opt := range opts {
		opt(config)
	}

	if config.UserRepo == nil {
		return nil, types.ErrValidation("user repository is required")
	}

	return &userService{
		config: config,
	}, nil
}

// CreateUser validates the request, persists the user, and returns the
// stored record. Validation failures and the duplicate-email conflict come
// back as typed service errors so the handler can branch deterministically.
func (s *userService) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if reason := req.Validate(); reason != "" {
		return nil, types.ErrValidation(reason)
	}

	user := &model.User{
		Name:  req.Name,
		Email: req.Email,
	}
	if err := s.config.UserRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			logger.GetLogger().Warn("user creation failed, email already exists",
				zap.String("email", req.Email))
			return nil, types.ErrConflict("Email already exists")
		}
		logger.GetLogger().Error("failed to create user", zap.Error(err))
		return nil, types.ErrInternalWithCause("failed to create user", err)
	}

	logger.GetLogger().Info("created user",
		zap.Int64("user_id", user.ID),
		zap.String("name", user.Name),
		zap.String("email", user.Email))
	return user, nil
}

// ListUsers returns all users ordered newest first.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.config.UserRepo.ListUsers(ctx)
	if err != nil {
		logger.GetLogger().Error("failed to list users", zap.Error(err))
		return nil, types.ErrInternalWithCause("failed to list users", err)
	}
	return users, nil
}

// GetUserByID returns the user with the given id.
func (s *userService) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.config.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, types.ErrNotFound("User")
		}
		logger.GetLogger().Error("failed to get user", zap.Int64("user_id", id), zap.Error(err))
		return nil, types.ErrInternalWithCause("failed to get user", err)
	}
	return user, nil
}
