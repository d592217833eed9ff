// Package repository exposes every storage accessor behind a single facade,
// so callers never depend on the per-entity store types. It forwards 1:1
// except for two deliberate additions: parent deletes clean up their
// children, and the initial bulk load runs in one transaction.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rcastillo/bodega-api/models"
	"github.com/rcastillo/bodega-api/store"
)

// Repository aggregates all entity accessors.
type Repository struct {
	stores *store.Stores
}

// New creates a repository over the given accessor bundle.
func New(stores *store.Stores) *Repository {
	return &Repository{stores: stores}
}

// ========== CATEGORIES ==========

// WatchCategories returns a live view of all categories.
func (r *Repository) WatchCategories(ctx context.Context) <-chan []models.Category {
	return r.stores.Categories.WatchAll(ctx)
}

// Categories returns a snapshot of all categories.
func (r *Repository) Categories(ctx context.Context) ([]models.Category, error) {
	return r.stores.Categories.All(ctx)
}

// GetCategoryByID returns the category with the given id, or nil when absent.
func (r *Repository) GetCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	return r.stores.Categories.GetByID(ctx, id)
}

// AddCategory upserts a category.
func (r *Repository) AddCategory(ctx context.Context, c *models.Category) error {
	return r.stores.Categories.Insert(ctx, c)
}

// UpdateCategory updates a category in place.
func (r *Repository) UpdateCategory(ctx context.Context, c *models.Category) error {
	return r.stores.Categories.Update(ctx, c)
}

// DeleteCategory deletes a category. Products referencing it are deleted
// first so no orphaned rows remain.
func (r *Repository) DeleteCategory(ctx context.Context, c *models.Category) error {
	if err := r.stores.Products.DeleteByCategory(ctx, c.CategoryID); err != nil {
		return err
	}
	return r.stores.Categories.Delete(ctx, c)
}

// DeleteAllCategories removes every category. Seed-loading path only.
func (r *Repository) DeleteAllCategories(ctx context.Context) error {
	return r.stores.Categories.DeleteAll(ctx)
}

// ========== PRODUCTS ==========

// WatchProducts returns a live view of all products.
func (r *Repository) WatchProducts(ctx context.Context) <-chan []models.Product {
	return r.stores.Products.WatchAll(ctx)
}

// WatchProductsByCategory returns a live view of the products in one category.
func (r *Repository) WatchProductsByCategory(ctx context.Context, categoryID uint) <-chan []models.Product {
	return r.stores.Products.WatchByCategory(ctx, categoryID)
}

// Products returns a snapshot of all products.
func (r *Repository) Products(ctx context.Context) ([]models.Product, error) {
	return r.stores.Products.All(ctx)
}

// ProductsByCategory returns a snapshot of the products in one category.
func (r *Repository) ProductsByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	return r.stores.Products.ByCategory(ctx, categoryID)
}

// GetProductByID returns the product with the given id, or nil when absent.
func (r *Repository) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	return r.stores.Products.GetByID(ctx, id)
}

// AddProduct upserts a product.
func (r *Repository) AddProduct(ctx context.Context, p *models.Product) error {
	return r.stores.Products.Insert(ctx, p)
}

// UpdateProduct updates a product in place.
func (r *Repository) UpdateProduct(ctx context.Context, p *models.Product) error {
	return r.stores.Products.Update(ctx, p)
}

// DeleteProduct deletes a product.
func (r *Repository) DeleteProduct(ctx context.Context, p *models.Product) error {
	return r.stores.Products.Delete(ctx, p)
}

// ========== CUSTOMERS ==========

// WatchCustomers returns a live view of all customers.
func (r *Repository) WatchCustomers(ctx context.Context) <-chan []models.Customer {
	return r.stores.Customers.WatchAll(ctx)
}

// Customers returns a snapshot of all customers.
func (r *Repository) Customers(ctx context.Context) ([]models.Customer, error) {
	return r.stores.Customers.All(ctx)
}

// GetCustomerByID returns the customer with the given id, or nil when absent.
func (r *Repository) GetCustomerByID(ctx context.Context, id uint) (*models.Customer, error) {
	return r.stores.Customers.GetByID(ctx, id)
}

// AddCustomer upserts a customer.
func (r *Repository) AddCustomer(ctx context.Context, c *models.Customer) error {
	return r.stores.Customers.Insert(ctx, c)
}

// UpdateCustomer updates a customer in place.
func (r *Repository) UpdateCustomer(ctx context.Context, c *models.Customer) error {
	return r.stores.Customers.Update(ctx, c)
}

// DeleteCustomer deletes a customer.
func (r *Repository) DeleteCustomer(ctx context.Context, c *models.Customer) error {
	return r.stores.Customers.Delete(ctx, c)
}

// ========== ORDERS ==========

// WatchOrders returns a live view of all orders.
func (r *Repository) WatchOrders(ctx context.Context) <-chan []models.Order {
	return r.stores.Orders.WatchAll(ctx)
}

// Orders returns a snapshot of all orders.
func (r *Repository) Orders(ctx context.Context) ([]models.Order, error) {
	return r.stores.Orders.All(ctx)
}

// GetOrderByID returns the order with the given id, or nil when absent.
func (r *Repository) GetOrderByID(ctx context.Context, id uint) (*models.Order, error) {
	return r.stores.Orders.GetByID(ctx, id)
}

// AddOrder upserts an order.
func (r *Repository) AddOrder(ctx context.Context, o *models.Order) error {
	return r.stores.Orders.Insert(ctx, o)
}

// UpdateOrder updates an order in place.
func (r *Repository) UpdateOrder(ctx context.Context, o *models.Order) error {
	return r.stores.Orders.Update(ctx, o)
}

// DeleteOrder deletes an order. Its line items are deleted first so no
// orphaned rows remain.
func (r *Repository) DeleteOrder(ctx context.Context, o *models.Order) error {
	if err := r.stores.OrderDetails.DeleteAllFromOrder(ctx, o.OrderID); err != nil {
		return err
	}
	return r.stores.Orders.Delete(ctx, o)
}

// ========== ORDER DETAILS ==========

// WatchOrderDetails returns a live view of one order's line items.
func (r *Repository) WatchOrderDetails(ctx context.Context, orderID uint) <-chan []models.OrderDetail {
	return r.stores.OrderDetails.WatchByOrder(ctx, orderID)
}

// OrderDetails returns a snapshot of one order's line items.
func (r *Repository) OrderDetails(ctx context.Context, orderID uint) ([]models.OrderDetail, error) {
	return r.stores.OrderDetails.ByOrder(ctx, orderID)
}

// GetOrderDetail returns the line item for (orderID, productID), or nil when
// absent.
func (r *Repository) GetOrderDetail(ctx context.Context, orderID, productID uint) (*models.OrderDetail, error) {
	return r.stores.OrderDetails.GetDetail(ctx, orderID, productID)
}

// AddOrderDetail upserts a line item; an existing (order, product) pair is
// replaced.
func (r *Repository) AddOrderDetail(ctx context.Context, d *models.OrderDetail) error {
	return r.stores.OrderDetails.Insert(ctx, d)
}

// UpdateOrderDetail updates a line item in place.
func (r *Repository) UpdateOrderDetail(ctx context.Context, d *models.OrderDetail) error {
	return r.stores.OrderDetails.Update(ctx, d)
}

// DeleteOrderDetail deletes a line item.
func (r *Repository) DeleteOrderDetail(ctx context.Context, d *models.OrderDetail) error {
	return r.stores.OrderDetails.Delete(ctx, d)
}

// DeleteAllOrderDetails removes every line item of an order.
func (r *Repository) DeleteAllOrderDetails(ctx context.Context, orderID uint) error {
	return r.stores.OrderDetails.DeleteAllFromOrder(ctx, orderID)
}

// ========== SETTINGS ==========

// GetSetting returns the value stored under key and whether it exists.
func (r *Repository) GetSetting(ctx context.Context, key string) (string, bool, error) {
	return r.stores.Settings.Get(ctx, key)
}

// SetSetting stores value under key.
func (r *Repository) SetSetting(ctx context.Context, key, value string) error {
	return r.stores.Settings.Set(ctx, key, value)
}

// ========== BULK LOAD ==========

// LoadInitialData clears all categories and inserts the given categories,
// products, and customers in one transaction. On failure nothing is applied.
// Change notifications fire once, after commit.
func (r *Repository) LoadInitialData(ctx context.Context, categories []models.Category, products []models.Product, customers []models.Customer) error {
	err := r.stores.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cats := r.stores.Categories.WithTx(tx)
		prods := r.stores.Products.WithTx(tx)
		custs := r.stores.Customers.WithTx(tx)

		if err := cats.DeleteAll(ctx); err != nil {
			return err
		}
		for i := range categories {
			if err := cats.Insert(ctx, &categories[i]); err != nil {
				return err
			}
		}
		for i := range products {
			if err := prods.Insert(ctx, &products[i]); err != nil {
				return err
			}
		}
		for i := range customers {
			if err := custs.Insert(ctx, &customers[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("initial data load failed: %w", err)
	}

	r.stores.Notifier.Notify(store.TableCategories, store.TableProducts, store.TableCustomers)
	return nil
}
