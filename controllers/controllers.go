// Package controllers exposes the store over HTTP. Reads hit the repository
// directly; writes go through the view-state layer's intents so the HTTP
// surface exercises the same path as any other observer of the live views.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rcastillo/bodega-api/repository"
	"github.com/rcastillo/bodega-api/state"
)

// Env bundles the dependencies shared by every handler.
type Env struct {
	Repo  *repository.Repository
	State *state.ViewState
}

// NewEnv creates a handler environment.
func NewEnv(repo *repository.Repository, vs *state.ViewState) *Env {
	return &Env{Repo: repo, State: vs}
}

// errorResponse writes the standard error envelope.
func errorResponse(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// validationError writes a 400 with binding details.
func validationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Invalid request data",
			"details": err.Error(),
		},
	})
}

// awaitIntent waits for a write-intent's result future and writes the
// response envelope.
func awaitIntent(c *gin.Context, result <-chan error, status int, message string) {
	if err := <-result; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": message + " failed",
				"details": err.Error(),
			},
		})
		return
	}
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
	})
}

// pathID parses a numeric path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	return parseID(c, c.Param(name), name)
}

// parseID parses a numeric identifier from a raw string, writing a 400 on
// failure.
func parseID(c *gin.Context, raw, name string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_ID", "Parameter "+name+" must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
