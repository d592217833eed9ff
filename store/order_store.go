package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rcastillo/bodega-api/models"
)

// OrderStore provides access to the orders table.
type OrderStore struct {
	db       *gorm.DB
	notifier *Notifier
}

// NewOrderStore creates an order accessor backed by db.
func NewOrderStore(db *gorm.DB, notifier *Notifier) *OrderStore {
	return &OrderStore{db: db, notifier: notifier}
}

// WithTx returns a copy of the store bound to tx. The copy is silent: it
// emits no change notifications, the transaction owner notifies after commit.
func (s *OrderStore) WithTx(tx *gorm.DB) *OrderStore {
	return &OrderStore{db: tx}
}

func (s *OrderStore) notify() {
	if s.notifier != nil {
		s.notifier.Notify(TableOrders)
	}
}

// Insert upserts an order by primary key.
func (s *OrderStore) Insert(ctx context.Context, o *models.Order) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(o).Error
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	s.notify()
	return nil
}

// Update updates the row matching the order's primary key. Updating a
// missing row silently succeeds.
func (s *OrderStore) Update(ctx context.Context, o *models.Order) error {
	result := s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("order_id = ?", o.OrderID).
		Updates(map[string]interface{}{
			"customer_id": o.CustomerID,
			"order_date":  o.OrderDate,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update order: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		s.notify()
	}
	return nil
}

// Delete removes the row matching the order's primary key.
func (s *OrderStore) Delete(ctx context.Context, o *models.Order) error {
	result := s.db.WithContext(ctx).Delete(&models.Order{}, o.OrderID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		s.notify()
	}
	return nil
}

// All returns a snapshot of every order in insertion order.
func (s *OrderStore) All(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).Order("order_id").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetByID returns the order with the given identifier, or nil when no such
// row exists.
func (s *OrderStore) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var o models.Order
	err := s.db.WithContext(ctx).First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order %d: %w", id, err)
	}
	return &o, nil
}

// WatchAll returns a live view of the orders table.
func (s *OrderStore) WatchAll(ctx context.Context) <-chan []models.Order {
	return watch(ctx, s.notifier, TableOrders, func() ([]models.Order, error) {
		return s.All(ctx)
	})
}
