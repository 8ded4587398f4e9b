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
	"context"
	"path/filepath"
	"testing"

	"github.com/innovationmech/userd/internal/userd/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{Env: "test"}
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")
	return cfg
}

func TestNewDependencies(t *testing.T) {
	d, err := NewDependencies(testConfig(t))
	require.NoError(t, err)
	defer d.Close()

	assert.NoError(t, d.Validate())
	assert.NotNil(t, d.Config)
	assert.NotNil(t, d.DB)
	assert.NotNil(t, d.UserRepo)
	assert.NotNil(t, d.UserSrv)
	assert.NotNil(t, d.HealthSrv)

	// The store was seeded during initialization.
	users, err := d.UserSrv.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestNewDependencies_BadDatabasePath(t *testing.T) {
	cfg := &config.Config{Env: "test"}
	cfg.Database.Path = filepath.Join(t.TempDir(), "missing", "nested", "test.db")

	_, err := NewDependencies(cfg)
	assert.ErrorIs(t, err, ErrDatabaseConnection)
}

func TestDependencies_Validate(t *testing.T) {
	d, err := NewDependencies(testConfig(t))
	require.NoError(t, err)
	defer d.Close()

	d.UserSrv = nil
	assert.Error(t, d.Validate())
}

func TestDependencies_Close(t *testing.T) {
	d, err := NewDependencies(testConfig(t))
	require.NoError(t, err)

	assert.NoError(t, d.Close())
	// Closing a nil handle is a no-op.
	assert.NoError(t, (&Dependencies{}).Close())
}
