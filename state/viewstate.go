// Package state bridges the repository's live read streams and the
// presentation layer. It caches the latest snapshot of every live view,
// owns the two selection values, and dispatches write-intents
// asynchronously on its own lifetime.
package state

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/rcastillo/bodega-api/models"
	"github.com/rcastillo/bodega-api/repository"
)

// ViewState holds the UI-facing state: four table views, two selections and
// their derived views. All snapshot getters are safe for concurrent use;
// returned slices are replaced wholesale on change and must not be mutated.
type ViewState struct {
	repo *repository.Repository

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu               sync.RWMutex
	categories       []models.Category
	products         []models.Product
	customers        []models.Customer
	orders           []models.Order
	filteredProducts []models.Product
	orderDetails     []models.OrderDetail

	selectedCategoryID *uint
	selectedOrderID    *uint

	// generation counters guard the derived-view slots: a collector whose
	// generation is stale stops writing, so a rapid selection change can
	// never surface data for a previous selection.
	filteredGen    int
	filteredCancel context.CancelFunc
	detailsGen     int
	detailsCancel  context.CancelFunc

	subMu   sync.Mutex
	subs    map[int]chan struct{}
	subNext int
}

// New creates a ViewState over repo and starts the four table collectors.
// The derived views start unselected: filtered products mirror the full
// product list, order details are empty. Call Close to tear everything down.
func New(repo *repository.Repository) *ViewState {
	ctx, cancel := context.WithCancel(context.Background())
	vs := &ViewState{
		repo:   repo,
		ctx:    ctx,
		cancel: cancel,
		subs:   make(map[int]chan struct{}),
	}

	collect(vs, repo.WatchCategories(ctx), func(rows []models.Category) { vs.categories = rows })
	collect(vs, repo.WatchProducts(ctx), func(rows []models.Product) { vs.products = rows })
	collect(vs, repo.WatchCustomers(ctx), func(rows []models.Customer) { vs.customers = rows })
	collect(vs, repo.WatchOrders(ctx), func(rows []models.Order) { vs.orders = rows })

	vs.SelectCategory(nil)
	vs.SelectOrder(nil)
	return vs
}

// Close cancels every live subscription and waits for in-flight intents.
func (vs *ViewState) Close() {
	vs.cancel()
	vs.wg.Wait()
}

// Subscribe returns a coalesced change signal: it receives after any view
// snapshot changes. Observers re-read the getters on each signal. The cancel
// function removes the subscription.
func (vs *ViewState) Subscribe() (<-chan struct{}, func()) {
	vs.subMu.Lock()
	defer vs.subMu.Unlock()

	id := vs.subNext
	vs.subNext++
	ch := make(chan struct{}, 1)
	vs.subs[id] = ch

	cancel := func() {
		vs.subMu.Lock()
		defer vs.subMu.Unlock()
		delete(vs.subs, id)
	}
	return ch, cancel
}

func (vs *ViewState) signalUpdate() {
	vs.subMu.Lock()
	defer vs.subMu.Unlock()
	for _, ch := range vs.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// collect drains one live stream into a snapshot field until the stream
// closes.
func collect[T any](vs *ViewState, ch <-chan []T, set func([]T)) {
	vs.wg.Add(1)
	go func() {
		defer vs.wg.Done()
		for rows := range ch {
			vs.mu.Lock()
			set(rows)
			vs.mu.Unlock()
			vs.signalUpdate()
		}
	}()
}

// ========== SNAPSHOTS ==========

// Categories returns the latest categories snapshot.
func (vs *ViewState) Categories() []models.Category {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	return vs.categories
}

// Products returns the latest products snapshot.
func (vs *ViewState) Products() []models.Product {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	return vs.products
}

// Customers returns the latest customers snapshot.
func (vs *ViewState) Customers() []models.Customer {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	return vs.customers
}

// Orders returns the latest orders snapshot.
func (vs *ViewState) Orders() []models.Order {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	return vs.orders
}

// FilteredProducts returns the products of the selected category, or all
// products when no category is selected.
func (vs *ViewState) FilteredProducts() []models.Product {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	return vs.filteredProducts
}

// OrderDetails returns the line items of the selected order, or an empty
// list when no order is selected.
func (vs *ViewState) OrderDetails() []models.OrderDetail {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	return vs.orderDetails
}

// SelectedCategoryID returns the current category selection, nil when unset.
func (vs *ViewState) SelectedCategoryID() *uint {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	return vs.selectedCategoryID
}

// SelectedOrderID returns the current order selection, nil when unset.
func (vs *ViewState) SelectedOrderID() *uint {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	return vs.selectedOrderID
}

// ========== SELECTIONS ==========

// SelectCategory changes the category selection driving FilteredProducts.
// The previous subscription is cancelled before the new one starts; at most
// one is active at a time and the last selection wins.
func (vs *ViewState) SelectCategory(categoryID *uint) {
	vs.mu.Lock()
	vs.selectedCategoryID = categoryID
	vs.filteredGen++
	gen := vs.filteredGen
	if vs.filteredCancel != nil {
		vs.filteredCancel()
	}
	subCtx, cancel := context.WithCancel(vs.ctx)
	vs.filteredCancel = cancel

	var ch <-chan []models.Product
	if categoryID != nil {
		ch = vs.repo.WatchProductsByCategory(subCtx, *categoryID)
	} else {
		ch = vs.repo.WatchProducts(subCtx)
	}
	vs.mu.Unlock()

	vs.wg.Add(1)
	go func() {
		defer vs.wg.Done()
		for rows := range ch {
			vs.mu.Lock()
			if vs.filteredGen != gen {
				vs.mu.Unlock()
				return
			}
			vs.filteredProducts = rows
			vs.mu.Unlock()
			vs.signalUpdate()
		}
	}()
}

// SelectOrder changes the order selection driving OrderDetails. A nil
// selection yields an empty list without any upstream subscription.
func (vs *ViewState) SelectOrder(orderID *uint) {
	vs.mu.Lock()
	vs.selectedOrderID = orderID
	vs.detailsGen++
	gen := vs.detailsGen
	if vs.detailsCancel != nil {
		vs.detailsCancel()
		vs.detailsCancel = nil
	}

	if orderID == nil {
		vs.orderDetails = []models.OrderDetail{}
		vs.mu.Unlock()
		vs.signalUpdate()
		return
	}

	subCtx, cancel := context.WithCancel(vs.ctx)
	vs.detailsCancel = cancel
	ch := vs.repo.WatchOrderDetails(subCtx, *orderID)
	vs.mu.Unlock()

	vs.wg.Add(1)
	go func() {
		defer vs.wg.Done()
		for rows := range ch {
			vs.mu.Lock()
			if vs.detailsGen != gen {
				vs.mu.Unlock()
				return
			}
			vs.orderDetails = rows
			vs.mu.Unlock()
			vs.signalUpdate()
		}
	}()
}

// ========== WRITE INTENTS ==========

// dispatch runs op asynchronously on the view-state lifetime and returns a
// result future. Callers may await the single error value or drop the
// channel for fire-and-forget use.
func (vs *ViewState) dispatch(op func(ctx context.Context) error) <-chan error {
	result := make(chan error, 1)
	vs.wg.Add(1)
	go func() {
		defer vs.wg.Done()
		err := op(vs.ctx)
		if err != nil {
			log.Printf("write intent failed: %v", err)
		}
		result <- err
		close(result)
	}()
	return result
}

// AddCategory creates a category with the given name.
func (vs *ViewState) AddCategory(name string) <-chan error {
	return vs.dispatch(func(ctx context.Context) error {
		return vs.repo.AddCategory(ctx, &models.Category{Name: name})
	})
}

// UpdateCategory updates an existing category.
func (vs *ViewState) UpdateCategory(c models.Category) <-chan error {
	return vs.dispatch(func(ctx context.Context) error {
		return vs.repo.UpdateCategory(ctx, &c)
	})
}

// DeleteCategory deletes a category and its products.
func (vs *ViewState) DeleteCategory(c models.Category) <-chan error {
	return vs.dispatch(func(ctx context.Context) error {
		return vs.repo.DeleteCategory(ctx, &c)
	})
}

// AddProduct creates a product with the given fields.
func (vs *ViewState) AddProduct(name string, price float64, categoryID uint) <-chan error {
	return vs.dispatch(func(ctx context.Context) error {
		return vs.repo.AddProduct(ctx, &models.Product{Name: name, Price: price, CategoryID: categoryID})
	})
}

// UpdateProduct updates an existing product.
func (vs *ViewState) UpdateProduct(p models.Product) <-chan error {
	return vs.dispatch(func(ctx context.Context) error {
		return vs.repo.UpdateProduct(ctx, &p)
	})
}

// DeleteProduct deletes a product.
func (vs *ViewState) DeleteProduct(p models.Product) <-chan error {
	return vs.dispatch(func(ctx context.Context) error {
		return vs.repo.DeleteProduct(ctx, &p)
	})
}

// AddCustomer creates a customer with the given fields.
func (vs *ViewState) AddCustomer(firstName, lastName, email string) <-chan error {
	return vs.dispatch(func(ctx context.Context) error {
		return vs.repo.AddCustomer(ctx, &models.Customer{FirstName: firstName, LastName: lastName, Email: email})
	})
}

// UpdateCustomer updates an existing customer.
func (vs *ViewState) UpdateCustomer(c models.Customer) <-chan error {
	return vs.dispatch(func(ctx context.Context) error {
		return vs.repo.UpdateCustomer(ctx, &c)
	})
}

// DeleteCustomer deletes a customer.
func (vs *ViewState) DeleteCustomer(c models.Customer) <-chan error {
	return vs.dispatch(func(ctx context.Context) error {
		return vs.repo.DeleteCustomer(ctx, &c)
	})
}

// AddOrder creates an order for the given customer, dated now.
func (vs *ViewState) AddOrder(customerID uint) <-chan error {
	return vs.dispatch(func(ctx context.Context) error {
		return vs.repo.AddOrder(ctx, &models.Order{CustomerID: customerID, OrderDate: time.Now()})
	})
}

// UpdateOrder updates an existing order.
func (vs *ViewState) UpdateOrder(o models.Order) <-chan error {
	return vs.dispatch(func(ctx context.Context) error {
		return vs.repo.UpdateOrder(ctx, &o)
	})
}

// DeleteOrder deletes an order and its line items.
func (vs *ViewState) DeleteOrder(o models.Order) <-chan error {
	return vs.dispatch(func(ctx context.Context) error {
		return vs.repo.DeleteOrder(ctx, &o)
	})
}

// AddOrderDetail creates or replaces the line item for the given
// (order, product) pair.
func (vs *ViewState) AddOrderDetail(orderID, productID uint, quantity int) <-chan error {
	return vs.dispatch(func(ctx context.Context) error {
		return vs.repo.AddOrderDetail(ctx, &models.OrderDetail{OrderID: orderID, ProductID: productID, Quantity: quantity})
	})
}

// UpdateOrderDetail updates an existing line item.
func (vs *ViewState) UpdateOrderDetail(d models.OrderDetail) <-chan error {
	return vs.dispatch(func(ctx context.Context) error {
		return vs.repo.UpdateOrderDetail(ctx, &d)
	})
}

// DeleteOrderDetail deletes a line item.
func (vs *ViewState) DeleteOrderDetail(d models.OrderDetail) <-chan error {
	return vs.dispatch(func(ctx context.Context) error {
		return vs.repo.DeleteOrderDetail(ctx, &d)
	})
}

// LoadInitialData replaces all categories and inserts the given seed rows in
// one transaction.
func (vs *ViewState) LoadInitialData(categories []models.Category, products []models.Product, customers []models.Customer) <-chan error {
	return vs.dispatch(func(ctx context.Context) error {
		return vs.repo.LoadInitialData(ctx, categories, products, customers)
	})
}
