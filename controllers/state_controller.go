package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SelectCategoryRequest carries the category selection; a null category_id
// clears the selection.
type SelectCategoryRequest struct {
	CategoryID *uint `json:"category_id"`
}

// SelectOrderRequest carries the order selection; a null order_id clears the
// selection.
type SelectOrderRequest struct {
	OrderID *uint `json:"order_id"`
}

// stateSnapshot collects every view-state snapshot into one payload.
func (e *Env) stateSnapshot() gin.H {
	return gin.H{
		"categories":           e.State.Categories(),
		"products":             e.State.Products(),
		"customers":            e.State.Customers(),
		"orders":               e.State.Orders(),
		"filtered_products":    e.State.FilteredProducts(),
		"order_details":        e.State.OrderDetails(),
		"selected_category_id": e.State.SelectedCategoryID(),
		"selected_order_id":    e.State.SelectedOrderID(),
	}
}

// GetState handles GET /api/v1/state - the combined view-state snapshot
func (e *Env) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    e.stateSnapshot(),
	})
}

// SelectCategory handles PUT /api/v1/selections/category. Changing the
// selection re-subscribes the filtered products view.
func (e *Env) SelectCategory(c *gin.Context) {
	var req SelectCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	e.State.SelectCategory(req.CategoryID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "category selection updated",
	})
}

// SelectOrder handles PUT /api/v1/selections/order. Changing the selection
// re-subscribes the order details view.
func (e *Env) SelectOrder(c *gin.Context) {
	var req SelectOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	e.State.SelectOrder(req.OrderID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "order selection updated",
	})
}

// LiveState handles GET /api/v1/live/state - a server-sent-event stream that
// emits the combined view-state snapshot immediately and again after every
// change, until the client disconnects.
func (e *Env) LiveState(c *gin.Context) {
	updates, cancel := e.State.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.SSEvent("state", e.stateSnapshot())
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()
	for {
		select {
		case <-clientGone:
			return
		case <-updates:
			c.SSEvent("state", e.stateSnapshot())
			c.Writer.Flush()
		}
	}
}
