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

package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/innovationmech/userd/internal/userd/config"
	"github.com/innovationmech/userd/internal/userd/deps"
	"github.com/innovationmech/userd/internal/userd/server"
	"github.com/innovationmech/userd/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewServeCmd creates a new serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the userd HTTP server",
		Long: `Start the userd HTTP server:
- User create/list/get API over SQLite
- Health, welcome, info and docs endpoints
- Uniform security headers and CORS on every response`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			logger.InitLogger()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	return cmd
}

// runServer runs the userd server until a shutdown signal arrives.
func runServer() error {
	logger.Logger.Info("starting userd server...")

	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Error("failed to load configuration", zap.Error(err))
		return err
	}
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		logger.Logger.Warn("invalid log level, keeping default",
			zap.String("level", cfg.Log.Level), zap.Error(err))
	}
	if err := logger.InitLoggerWithFile(cfg.Log.File); err != nil {
		logger.Logger.Warn("cannot open log file, logging to stderr only",
			zap.String("file", cfg.Log.File), zap.Error(err))
	}

	dependencies, err := deps.NewDependencies(cfg)
	if err != nil {
		logger.Logger.Error("failed to initialize dependencies", zap.Error(err))
		return err
	}

	srv := server.New(cfg, dependencies)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil {
			serverErr <- err
		}
	}()

	select {
	case <-quit:
		logger.Logger.Info("shutdown signal received, stopping server...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Logger.Error("error during server shutdown", zap.Error(err))
			return err
		}

		logger.Logger.Info("server shutdown complete")
	case err := <-serverErr:
		logger.Logger.Error("server error", zap.Error(err))
		return err
	}

	return nil
}
