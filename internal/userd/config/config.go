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

package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config is the application configuration. It is constructed once at startup
// by Load and passed explicitly into the components that need it; there is
// no process-global configuration state.
type Config struct {
	Env       string `mapstructure:"env"`
	SecretKey string `mapstructure:"secret_key"`
	Database  struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`
	Log struct {
		Level string `mapstructure:"level"`
		File  string `mapstructure:"file"`
	} `mapstructure:"log"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
}

// Load builds the configuration from defaults, an optional userd.yaml in the
// working directory, and environment variables (ENV, SECRET_KEY,
// DATABASE_PATH, LOG_LEVEL, LOG_FILE, PORT), later sources winning.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("env", "development")
	v.SetDefault("secret_key", "dev-secret-key-change-in-production")
	v.SetDefault("database.path", "data.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "userd.log")
	v.SetDefault("server.port", "5000")

	v.SetConfigName("userd")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// No config file is fine; defaults and environment apply.
	}

	for key, env := range map[string]string{
		"env":           "ENV",
		"secret_key":    "SECRET_KEY",
		"database.path": "DATABASE_PATH",
		"log.level":     "LOG_LEVEL",
		"log.file":      "LOG_FILE",
		"server.port":   "PORT",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
