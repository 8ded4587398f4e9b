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

// Package meta serves the static informational endpoints: welcome,
// application info and the machine-readable route catalogue. All payloads
// are fixed; only the timestamp varies between calls.
package meta

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/innovationmech/userd/internal/userd/types"
)

// Handler serves the welcome, info and docs endpoints.
type Handler struct {
	environment string
}

// NewHandler creates a new meta handler.
func NewHandler(environment string) *Handler {
	return &Handler{environment: environment}
}

// RegisterHTTP registers the meta routes.
func (h *Handler) RegisterHTTP(router *gin.Engine) {
	router.GET("/", h.Welcome)
	v1 := router.Group("/api/v1")
	v1.GET("/info", h.Info)
	v1.GET("/docs", h.Docs)
}

// Welcome returns the API welcome payload with the endpoint map.
//
//	@Summary	Welcome message
//	@Tags		meta
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}	"Welcome information"
//	@Router		/ [get]
func (h *Handler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "Welcome to the userd API",
		"version":     types.ServiceVersion,
		"description": "Minimal user management service with a serverless adapter",
		"endpoints": gin.H{
			"health": "/health",
			"users":  "/api/v1/users",
			"info":   "/api/v1/info",
			"docs":   "/api/v1/docs",
		},
		"timestamp": types.Timestamp(),
	})
}

// Info returns application and system metadata.
//
//	@Summary	Application information
//	@Tags		meta
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}	"App metadata"
//	@Router		/api/v1/info [get]
func (h *Handler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"application": gin.H{
			"name":        "userd",
			"version":     types.ServiceVersion,
			"description": "Minimal user management service with a serverless adapter",
			"framework":   "gin",
		},
		"system": gin.H{
			"go_version":  runtime.Version(),
			"environment": h.environment,
		},
		"features": []string{
			"SQLite persistence",
			"Email uniqueness enforcement",
			"Serverless invocation adapter",
			"Health monitoring",
			"Structured logging",
		},
		"timestamp": types.Timestamp(),
	})
}

// Docs returns the machine-readable route catalogue.
//
//	@Summary	API documentation
//	@Tags		meta
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}	"OpenAPI-shaped route catalogue"
//	@Router		/api/v1/docs [get]
func (h *Handler) Docs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"openapi": "3.0.0",
		"info": gin.H{
			"title":       "userd API",
			"version":     types.ServiceVersion,
			"description": "Minimal user management API",
		},
		"paths": gin.H{
			"/": gin.H{
				"get": gin.H{
					"summary":   "Welcome message",
					"responses": gin.H{"200": gin.H{"description": "Welcome information"}},
				},
			},
			"/health": gin.H{
				"get": gin.H{
					"summary":   "Health check",
					"responses": gin.H{"200": gin.H{"description": "Service health status"}},
				},
			},
			"/api/v1/users": gin.H{
				"get": gin.H{
					"summary":   "Get all users",
					"responses": gin.H{"200": gin.H{"description": "List of users"}},
				},
				"post": gin.H{
					"summary":   "Create new user",
					"responses": gin.H{"201": gin.H{"description": "User created"}},
				},
			},
			"/api/v1/users/{id}": gin.H{
				"get": gin.H{
					"summary":   "Get user by ID",
					"responses": gin.H{"200": gin.H{"description": "User details"}},
				},
			},
			"/api/v1/info": gin.H{
				"get": gin.H{
					"summary":   "Application information",
					"responses": gin.H{"200": gin.H{"description": "App metadata"}},
				},
			},
		},
		"timestamp": types.Timestamp(),
	})
}
