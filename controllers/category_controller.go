package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcastillo/bodega-api/models"
)

// CategoryRequest represents the request body for creating or updating a
// category
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListCategories handles GET /api/v1/categories
func (e *Env) ListCategories(c *gin.Context) {
	categories, err := e.Repo.Categories(c.Request.Context())
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    categories,
	})
}

// GetCategory handles GET /api/v1/categories/:id
func (e *Env) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	category, err := e.Repo.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to get category")
		return
	}
	if category == nil {
		errorResponse(c, http.StatusNotFound, "NOT_FOUND", "Category not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    category,
	})
}

// CreateCategory handles POST /api/v1/categories
func (e *Env) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	awaitIntent(c, e.State.AddCategory(req.Name), http.StatusCreated, "category created")
}

// UpdateCategory handles PUT /api/v1/categories/:id
func (e *Env) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	category := models.Category{CategoryID: id, Name: req.Name}
	awaitIntent(c, e.State.UpdateCategory(category), http.StatusOK, "category updated")
}

// DeleteCategory handles DELETE /api/v1/categories/:id. The category's
// products are deleted with it.
func (e *Env) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	awaitIntent(c, e.State.DeleteCategory(models.Category{CategoryID: id}), http.StatusOK, "category deleted")
}
