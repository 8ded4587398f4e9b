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

package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/innovationmech/userd/internal/userd/adapter"
	"github.com/innovationmech/userd/internal/userd/config"
	"github.com/innovationmech/userd/internal/userd/deps"
	"github.com/innovationmech/userd/internal/userd/server"
	"github.com/innovationmech/userd/pkg/logger"
	"go.uber.org/zap"
)

// main starts the serverless runtime. The router is assembled once per
// execution environment and reused across invocations.
func main() {
	logger.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Fatal("failed to load configuration", zap.Error(err))
	}
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		logger.Logger.Warn("invalid log level, keeping default",
			zap.String("level", cfg.Log.Level), zap.Error(err))
	}
	// The execution environment's filesystem may be read-only; fall back to
	// the stock output rather than failing the cold start.
	if err := logger.InitLoggerWithFile(cfg.Log.File); err != nil {
		logger.Logger.Warn("cannot open log file, logging to stderr only",
			zap.String("file", cfg.Log.File), zap.Error(err))
	}

	dependencies, err := deps.NewDependencies(cfg)
	if err != nil {
		logger.Logger.Fatal("failed to initialize dependencies", zap.Error(err))
	}

	srv := server.New(cfg, dependencies)
	lambda.Start(adapter.New(srv.Engine()).Handle)
}
