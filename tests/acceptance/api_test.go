// Package acceptance exercises the public API end to end over real HTTP,
// with the full seed catalog loaded.
package acceptance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/rcastillo/bodega-api/controllers"
	"github.com/rcastillo/bodega-api/middleware"
	"github.com/rcastillo/bodega-api/services"
	"github.com/rcastillo/bodega-api/tests/testutil"
)

type APISuite struct {
	suite.Suite
	app    *testutil.App
	server *httptest.Server
	client *http.Client
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.app = testutil.NewApp(s.T())

	// No seed directory: the built-in bodega catalog loads
	seed := services.InitSeedService("does-not-exist")
	data := seed.Load()
	s.Require().NoError(<-s.app.State.LoadInitialData(data.Categories, data.Products, data.Customers))

	env := controllers.NewEnv(s.app.Repo, s.app.State)
	router := gin.New()
	router.Use(middleware.RequestID())
	v1 := router.Group("/api/v1")
	{
		v1.GET("/categories", env.ListCategories)
		v1.GET("/categories/:id", env.GetCategory)
		v1.POST("/categories", env.CreateCategory)
		v1.PUT("/categories/:id", env.UpdateCategory)
		v1.DELETE("/categories/:id", env.DeleteCategory)

		v1.GET("/products", env.ListProducts)
		v1.GET("/products/:id", env.GetProduct)
		v1.POST("/products", env.CreateProduct)
		v1.PUT("/products/:id", env.UpdateProduct)
		v1.DELETE("/products/:id", env.DeleteProduct)

		v1.GET("/customers", env.ListCustomers)
		v1.POST("/customers", env.CreateCustomer)

		v1.GET("/orders", env.ListOrders)
		v1.POST("/orders", env.CreateOrder)
		v1.DELETE("/orders/:id", env.DeleteOrder)
		v1.GET("/orders/:id/details", env.ListOrderDetails)
		v1.POST("/orders/:id/details", env.CreateOrderDetail)

		v1.GET("/state", env.GetState)
		v1.PUT("/selections/category", env.SelectCategory)
		v1.PUT("/selections/order", env.SelectOrder)
	}

	s.server = httptest.NewServer(router)
	s.client = s.server.Client()
}

func (s *APISuite) TearDownTest() {
	s.server.Close()
}

func (s *APISuite) url(path string) string {
	return s.server.URL + "/api/v1" + path
}

func (s *APISuite) getJSON(path string) map[string]any {
	resp, err := s.client.Get(s.url(path))
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func (s *APISuite) send(method, path string, payload any) *http.Response {
	raw, err := json.Marshal(payload)
	s.Require().NoError(err)

	req, err := http.NewRequest(method, s.url(path), bytes.NewReader(raw))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	return resp
}

func (s *APISuite) TestSeededCatalogIsServed() {
	body := s.getJSON("/categories")
	s.Len(body["data"].([]any), 6)

	body = s.getJSON("/products")
	s.Len(body["data"].([]any), 24)

	body = s.getJSON("/customers")
	s.Len(body["data"].([]any), 5)

	// Category 1 is Bebidas with four drinks
	body = s.getJSON("/products?category_id=1")
	products := body["data"].([]any)
	s.Len(products, 4)
	s.Equal("Coca Cola 1.5L", products[0].(map[string]any)["name"])
}

func (s *APISuite) TestPlaceAnOrder() {
	resp := s.send(http.MethodPost, "/orders", map[string]any{"customer_id": 1})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	body := s.getJSON("/orders")
	orders := body["data"].([]any)
	s.Require().Len(orders, 1)
	orderID := int(orders[0].(map[string]any)["order_id"].(float64))

	resp = s.send(http.MethodPost, fmt.Sprintf("/orders/%d/details", orderID), map[string]any{"product_id": 1, "quantity": 2})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = s.send(http.MethodPost, fmt.Sprintf("/orders/%d/details", orderID), map[string]any{"product_id": 5, "quantity": 1})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	body = s.getJSON(fmt.Sprintf("/orders/%d/details", orderID))
	s.Len(body["data"].([]any), 2)

	// Deleting the order takes its line items with it
	resp = s.send(http.MethodDelete, fmt.Sprintf("/orders/%d", orderID), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	body = s.getJSON(fmt.Sprintf("/orders/%d/details", orderID))
	s.Empty(body["data"])
}

func (s *APISuite) TestSelectionDrivesState() {
	resp := s.send(http.MethodPut, "/selections/category", map[string]any{"category_id": 3})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	s.eventually(func() bool {
		data := s.getJSON("/state")["data"].(map[string]any)
		filtered, ok := data["filtered_products"].([]any)
		return ok && len(filtered) == 4 && data["selected_category_id"] == float64(3)
	})

	// Clearing the selection restores the unfiltered list
	resp = s.send(http.MethodPut, "/selections/category", map[string]any{"category_id": nil})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	s.eventually(func() bool {
		data := s.getJSON("/state")["data"].(map[string]any)
		filtered, ok := data["filtered_products"].([]any)
		return ok && len(filtered) == 24
	})
}

func (s *APISuite) TestDeleteCategoryCleansCatalog() {
	resp := s.send(http.MethodDelete, "/categories/1", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	body := s.getJSON("/categories")
	s.Len(body["data"].([]any), 5)

	body = s.getJSON("/products")
	s.Len(body["data"].([]any), 20, "the deleted category's products go with it")
}

// eventually polls cond until it holds or the deadline passes.
func (s *APISuite) eventually(cond func() bool) {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	s.FailNow("condition never held")
}
