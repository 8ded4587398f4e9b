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

package db

import (
	"fmt"

	"github.com/innovationmech/userd/internal/userd/config"
	"github.com/innovationmech/userd/internal/userd/model"
	"github.com/innovationmech/userd/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// seedUsers are inserted once, when the users table is created empty.
var seedUsers = []model.User{
	{Name: "John Doe", Email: "john@example.com"},
	{Name: "Jane Smith", Email: "jane@example.com"},
	{Name: "Mike Johnson", Email: "mike@example.com"},
}

// Open opens the SQLite database at the configured path.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", cfg.Database.Path, err)
	}
	return gdb, nil
}

// Initialize idempotently ensures the users table exists and seeds it with
// the sample users when it is empty. The caller treats a failure here as
// fatal; the service cannot start without its schema.
func Initialize(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&model.User{}); err != nil {
		return fmt.Errorf("failed to migrate users table: %w", err)
	}

	var count int64
	if err := gdb.Model(&model.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count == 0 {
		// Work on a copy so gorm's assigned IDs never leak into the seed table.
		seeds := make([]model.User, len(seedUsers))
		copy(seeds, seedUsers)
		if err := gdb.Create(&seeds).Error; err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
	}

	logger.GetLogger().Info("database initialized successfully")
	return nil
}
