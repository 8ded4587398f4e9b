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

package repository

import (
	"context"
	"errors"

	"github.com/innovationmech/userd/internal/userd/model"
	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Typed repository results, so callers branch deterministically instead of
// parsing driver error strings.
var (
	// ErrDuplicateEmail reports an insert that lost to the email uniqueness constraint.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrUserNotFound reports a lookup for an id with no matching row.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository is the interface for the user repository.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	Ping(ctx context.Context) error
}

// userRepository is the implementation of the UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser inserts a new user row. The database assigns id and created_at.
// Returns ErrDuplicateEmail when the email uniqueness constraint rejects the
// insert, any other error untyped.
func (u *userRepository) CreateUser(ctx context.Context, user *model.User) error {
	result := u.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ErrDuplicateEmail
		}
		return result.Error
	}
	return nil
}

// ListUsers returns all users, most recently created first. An empty table
// yields an empty slice, never an error.
func (u *userRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	result := u.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// GetUserByID returns the user with the given id, or ErrUserNotFound.
func (u *userRepository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	result := u.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

// Ping runs a lightweight liveness query against the store.
func (u *userRepository) Ping(ctx context.Context) error {
	sqlDB, err := u.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
