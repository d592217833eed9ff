package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rcastillo/bodega-api/models"
)

// OrderDetailStore provides access to the order_details table. Rows are
// keyed by the (order, product) pair, so re-inserting a pair replaces its
// quantity instead of adding a duplicate line item.
type OrderDetailStore struct {
	db       *gorm.DB
	notifier *Notifier
}

// NewOrderDetailStore creates an order-detail accessor backed by db.
func NewOrderDetailStore(db *gorm.DB, notifier *Notifier) *OrderDetailStore {
	return &OrderDetailStore{db: db, notifier: notifier}
}

// WithTx returns a copy of the store bound to tx. The copy is silent: it
// emits no change notifications, the transaction owner notifies after commit.
func (s *OrderDetailStore) WithTx(tx *gorm.DB) *OrderDetailStore {
	return &OrderDetailStore{db: tx}
}

func (s *OrderDetailStore) notify() {
	if s.notifier != nil {
		s.notifier.Notify(TableOrderDetails)
	}
}

// Insert upserts a line item by its composite key. Rejects quantities of
// zero or less.
func (s *OrderDetailStore) Insert(ctx context.Context, d *models.OrderDetail) error {
	if d.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(d).Error
	if err != nil {
		return fmt.Errorf("failed to insert order detail: %w", err)
	}
	s.notify()
	return nil
}

// Update updates the row matching the line item's composite key. Updating a
// missing row silently succeeds.
func (s *OrderDetailStore) Update(ctx context.Context, d *models.OrderDetail) error {
	if d.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	result := s.db.WithContext(ctx).
		Model(&models.OrderDetail{}).
		Where("order_id = ? AND product_id = ?", d.OrderID, d.ProductID).
		Update("quantity", d.Quantity)
	if result.Error != nil {
		return fmt.Errorf("failed to update order detail: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		s.notify()
	}
	return nil
}

// Delete removes the row matching the line item's composite key.
func (s *OrderDetailStore) Delete(ctx context.Context, d *models.OrderDetail) error {
	result := s.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", d.OrderID, d.ProductID).
		Delete(&models.OrderDetail{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete order detail: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		s.notify()
	}
	return nil
}

// DeleteAllFromOrder removes every line item of the given order.
func (s *OrderDetailStore) DeleteAllFromOrder(ctx context.Context, orderID uint) error {
	result := s.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&models.OrderDetail{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete details of order %d: %w", orderID, result.Error)
	}
	if result.RowsAffected > 0 {
		s.notify()
	}
	return nil
}

// ByOrder returns a snapshot of the line items belonging to orderID.
func (s *OrderDetailStore) ByOrder(ctx context.Context, orderID uint) ([]models.OrderDetail, error) {
	var details []models.OrderDetail
	err := s.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("product_id").
		Find(&details).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list details of order %d: %w", orderID, err)
	}
	return details, nil
}

// GetDetail returns the line item for the given (order, product) pair, or
// nil when no such row exists.
func (s *OrderDetailStore) GetDetail(ctx context.Context, orderID, productID uint) (*models.OrderDetail, error) {
	var d models.OrderDetail
	err := s.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get detail (%d, %d): %w", orderID, productID, err)
	}
	return &d, nil
}

// WatchByOrder returns a live view of the line items belonging to orderID.
func (s *OrderDetailStore) WatchByOrder(ctx context.Context, orderID uint) <-chan []models.OrderDetail {
	return watch(ctx, s.notifier, TableOrderDetails, func() ([]models.OrderDetail, error) {
		return s.ByOrder(ctx, orderID)
	})
}
