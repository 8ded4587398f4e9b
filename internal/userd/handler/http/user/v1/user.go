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
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/innovationmech/userd/internal/userd/interfaces"
	"github.com/innovationmech/userd/internal/userd/model"
	"github.com/innovationmech/userd/internal/userd/types"
	"github.com/innovationmech/userd/pkg/logger"
	"go.uber.org/zap"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userSrv interfaces.UserService
}

// NewUserHandler creates a new user handler with dependency injection.
func NewUserHandler(userSrv interfaces.UserService) *UserHandler {
	return &UserHandler{userSrv: userSrv}
}

// RegisterHTTP registers the user routes on the v1 group.
func (uh *UserHandler) RegisterHTTP(rg *gin.RouterGroup) {
	rg.GET("/users", uh.ListUsers)
	rg.POST("/users", uh.CreateUser)
	rg.GET("/users/:id", uh.GetUserByID)
}

// ListUsers returns all users, newest first.
//
//	@Summary		List all users
//	@Description	Get all users ordered by creation time, newest first
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}	"Users and count"
//	@Failure		500	{object}	map[string]interface{}	"Internal server error"
//	@Router			/api/v1/users [get]
func (uh *UserHandler) ListUsers(c *gin.Context) {
	users, err := uh.userSrv.ListUsers(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":     users,
		"count":     len(users),
		"timestamp": types.Timestamp(),
	})
}

// CreateUser creates a new user.
//
//	@Summary		Create a new user
//	@Description	Create a new user with name and email
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		model.CreateUserRequest	true	"User information"
//	@Success		201		{object}	map[string]interface{}	"User created successfully"
//	@Failure		400		{object}	map[string]interface{}	"Validation failure"
//	@Failure		409		{object}	map[string]interface{}	"Email already exists"
//	@Failure		500		{object}	map[string]interface{}	"Internal server error"
//	@Router			/api/v1/users [post]
func (uh *UserHandler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unreadable or empty body is the same user-correctable defect
		// as an empty candidate.
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	user, err := uh.userSrv.CreateUser(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "User created successfully",
		"user_id":   user.ID,
		"timestamp": types.Timestamp(),
	})
}

// GetUserByID returns a single user by id.
//
//	@Summary		Get user by ID
//	@Description	Get user details by numeric ID
//	@Tags			users
//	@Produce		json
//	@Param			id	path		int						true	"User ID"
//	@Success		200	{object}	map[string]interface{}	"User details"
//	@Failure		404	{object}	map[string]interface{}	"User not found"
//	@Failure		500	{object}	map[string]interface{}	"Internal server error"
//	@Router			/api/v1/users/{id} [get]
func (uh *UserHandler) GetUserByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// A non-numeric id can never reference an entity.
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user, svcErr := uh.userSrv.GetUserByID(c.Request.Context(), id)
	if svcErr != nil {
		if se := types.GetServiceError(svcErr); se != nil && se.Code == types.ErrCodeNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		writeServiceError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":      user,
		"timestamp": types.Timestamp(),
	})
}

// writeServiceError is the handler failure boundary: typed service errors
// map to their status with their message, anything else becomes a generic
// 500 with the cause logged but never exposed.
func writeServiceError(c *gin.Context, err error) {
	if se := types.GetServiceError(err); se != nil {
		if se.HTTPStatus < http.StatusInternalServerError {
			c.JSON(se.HTTPStatus, gin.H{"error": se.Message})
			return
		}
		logger.GetLogger().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(se.HTTPStatus, gin.H{"error": "Internal server error"})
		return
	}

	logger.GetLogger().Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
