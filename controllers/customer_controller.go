package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcastillo/bodega-api/models"
)

// CustomerRequest represents the request body for creating or updating a
// customer
type CustomerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

// ListCustomers handles GET /api/v1/customers
func (e *Env) ListCustomers(c *gin.Context) {
	customers, err := e.Repo.Customers(c.Request.Context())
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customers,
	})
}

// GetCustomer handles GET /api/v1/customers/:id
func (e *Env) GetCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	customer, err := e.Repo.GetCustomerByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to get customer")
		return
	}
	if customer == nil {
		errorResponse(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customer,
	})
}

// CreateCustomer handles POST /api/v1/customers
func (e *Env) CreateCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	awaitIntent(c, e.State.AddCustomer(req.FirstName, req.LastName, req.Email), http.StatusCreated, "customer created")
}

// UpdateCustomer handles PUT /api/v1/customers/:id
func (e *Env) UpdateCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	customer := models.Customer{CustomerID: id, FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}
	awaitIntent(c, e.State.UpdateCustomer(customer), http.StatusOK, "customer updated")
}

// DeleteCustomer handles DELETE /api/v1/customers/:id
func (e *Env) DeleteCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	awaitIntent(c, e.State.DeleteCustomer(models.Customer{CustomerID: id}), http.StatusOK, "customer deleted")
}
