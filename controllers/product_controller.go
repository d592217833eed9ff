package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcastillo/bodega-api/models"
)

// ProductRequest represents the request body for creating or updating a
// product
type ProductRequest struct {
	Name       string   `json:"name" binding:"required"`
	Price      *float64 `json:"price" binding:"required,gte=0"`
	CategoryID uint     `json:"category_id" binding:"required"`
}

// ListProducts handles GET /api/v1/products. An optional category_id query
// parameter filters by category.
func (e *Env) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		products []models.Product
		err      error
	)
	if raw, exists := c.GetQuery("category_id"); exists {
		categoryID, ok := parseID(c, raw, "category_id")
		if !ok {
			return
		}
		products, err = e.Repo.ProductsByCategory(ctx, categoryID)
	} else {
		products, err = e.Repo.Products(ctx)
	}
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
	})
}

// GetProduct handles GET /api/v1/products/:id
func (e *Env) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := e.Repo.GetProductByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to get product")
		return
	}
	if product == nil {
		errorResponse(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
	})
}

// CreateProduct handles POST /api/v1/products
func (e *Env) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	awaitIntent(c, e.State.AddProduct(req.Name, *req.Price, req.CategoryID), http.StatusCreated, "product created")
}

// UpdateProduct handles PUT /api/v1/products/:id
func (e *Env) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	product := models.Product{ProductID: id, Name: req.Name, Price: *req.Price, CategoryID: req.CategoryID}
	awaitIntent(c, e.State.UpdateProduct(product), http.StatusOK, "product updated")
}

// DeleteProduct handles DELETE /api/v1/products/:id
func (e *Env) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	awaitIntent(c, e.State.DeleteProduct(models.Product{ProductID: id}), http.StatusOK, "product deleted")
}
