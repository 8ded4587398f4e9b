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

package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovationmech/userd/internal/userd/config"
	"github.com/innovationmech/userd/internal/userd/deps"
	healthhandler "github.com/innovationmech/userd/internal/userd/handler/http/health"
	"github.com/innovationmech/userd/internal/userd/handler/http/meta"
	userv1 "github.com/innovationmech/userd/internal/userd/handler/http/user/v1"
	"github.com/innovationmech/userd/internal/userd/types"
	"github.com/innovationmech/userd/pkg/logger"
	"github.com/innovationmech/userd/pkg/middleware"
	"go.uber.org/zap"
)

// Server owns the HTTP engine and its lifecycle.
type Server struct {
	engine *gin.Engine
	srv    *http.Server
	deps   *deps.Dependencies
}

// New assembles the gin engine: uniform response decorators, the failure
// boundary, and every route the service exposes.
func New(cfg *config.Config, dependencies *deps.Dependencies) *Server {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		recoveryBoundary(),
		middleware.RequestLogger(),
		middleware.SecurityHeaders(),
		middleware.CORSMiddleware(),
	)

	registerRoutes(engine, dependencies)

	return &Server{
		engine: engine,
		deps:   dependencies,
		srv: &http.Server{
			Addr:    ":" + cfg.Server.Port,
			Handler: engine,
		},
	}
}

// Engine exposes the assembled router, shared by the HTTP listener and the
// invocation adapter so both dispatch through identical handling.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves HTTP until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	logger.GetLogger().Info("starting HTTP server", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the listener gracefully and closes the database handle.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		return err
	}
	return s.deps.Close()
}

// registerRoutes wires every handler onto the engine.
func registerRoutes(engine *gin.Engine, dependencies *deps.Dependencies) {
	meta.NewHandler(dependencies.Config.Env).RegisterHTTP(engine)
	healthhandler.NewHandler(dependencies.HealthSrv).RegisterHTTP(engine)

	v1 := engine.Group("/api/v1")
	userv1.NewUserHandler(dependencies.UserSrv).RegisterHTTP(v1)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Endpoint not found",
			"message":   "The requested resource does not exist",
			"timestamp": types.Timestamp(),
		})
	})
}

// recoveryBoundary converts any panic escaping a handler into the generic
// 500 body, logging the cause. Internal detail never reaches the client.
func recoveryBoundary() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.GetLogger().Error("internal server error",
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"message":   "An unexpected error occurred",
			"timestamp": types.Timestamp(),
		})
	})
}
