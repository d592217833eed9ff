package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rcastillo/bodega-api/models"
)

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	CustomerID uint `json:"customer_id" binding:"required"`
}

// UpdateOrderRequest represents the request body for updating an order
type UpdateOrderRequest struct {
	CustomerID uint      `json:"customer_id" binding:"required"`
	OrderDate  time.Time `json:"order_date" binding:"required"`
}

// OrderDetailRequest represents the request body for creating a line item
type OrderDetailRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// QuantityRequest represents the request body for updating a line item
type QuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// ListOrders handles GET /api/v1/orders
func (e *Env) ListOrders(c *gin.Context) {
	orders, err := e.Repo.Orders(c.Request.Context())
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}

// GetOrder handles GET /api/v1/orders/:id
func (e *Env) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := e.Repo.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to get order")
		return
	}
	if order == nil {
		errorResponse(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// CreateOrder handles POST /api/v1/orders. The order date is stamped by the
// intent.
func (e *Env) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	// The customer must exist before an order can reference it
	customer, err := e.Repo.GetCustomerByID(c.Request.Context(), req.CustomerID)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to look up customer")
		return
	}
	if customer == nil {
		errorResponse(c, http.StatusNotFound, "CUSTOMER_NOT_FOUND", "Customer not found")
		return
	}

	awaitIntent(c, e.State.AddOrder(req.CustomerID), http.StatusCreated, "order created")
}

// UpdateOrder handles PUT /api/v1/orders/:id
func (e *Env) UpdateOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	order := models.Order{OrderID: id, CustomerID: req.CustomerID, OrderDate: req.OrderDate}
	awaitIntent(c, e.State.UpdateOrder(order), http.StatusOK, "order updated")
}

// DeleteOrder handles DELETE /api/v1/orders/:id. The order's line items are
// deleted with it.
func (e *Env) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	awaitIntent(c, e.State.DeleteOrder(models.Order{OrderID: id}), http.StatusOK, "order deleted")
}

// ListOrderDetails handles GET /api/v1/orders/:id/details
func (e *Env) ListOrderDetails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	details, err := e.Repo.OrderDetails(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list order details")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    details,
	})
}

// GetOrderDetail handles GET /api/v1/orders/:id/details/:productId
func (e *Env) GetOrderDetail(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	detail, err := e.Repo.GetOrderDetail(c.Request.Context(), orderID, productID)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to get order detail")
		return
	}
	if detail == nil {
		errorResponse(c, http.StatusNotFound, "NOT_FOUND", "Order detail not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    detail,
	})
}

// CreateOrderDetail handles POST /api/v1/orders/:id/details. Posting an
// existing (order, product) pair replaces its quantity.
func (e *Env) CreateOrderDetail(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req OrderDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	awaitIntent(c, e.State.AddOrderDetail(orderID, req.ProductID, req.Quantity), http.StatusCreated, "order detail created")
}

// UpdateOrderDetail handles PUT /api/v1/orders/:id/details/:productId
func (e *Env) UpdateOrderDetail(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}
	var req QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	detail := models.OrderDetail{OrderID: orderID, ProductID: productID, Quantity: req.Quantity}
	awaitIntent(c, e.State.UpdateOrderDetail(detail), http.StatusOK, "order detail updated")
}

// DeleteOrderDetail handles DELETE /api/v1/orders/:id/details/:productId
func (e *Env) DeleteOrderDetail(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}
	detail := models.OrderDetail{OrderID: orderID, ProductID: productID}
	awaitIntent(c, e.State.DeleteOrderDetail(detail), http.StatusOK, "order detail deleted")
}

// ClearOrderDetails handles DELETE /api/v1/orders/:id/details
func (e *Env) ClearOrderDetails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := e.Repo.DeleteAllOrderDetails(c.Request.Context(), id); err != nil {
		errorResponse(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to clear order details")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "order details cleared",
	})
}
