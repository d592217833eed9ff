package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rcastillo/bodega-api/models"
)

// CustomerStore provides access to the customers table.
type CustomerStore struct {
	db       *gorm.DB
	notifier *Notifier
}

// NewCustomerStore creates a customer accessor backed by db.
func NewCustomerStore(db *gorm.DB, notifier *Notifier) *CustomerStore {
	return &CustomerStore{db: db, notifier: notifier}
}

// WithTx returns a copy of the store bound to tx. The copy is silent: it
// emits no change notifications, the transaction owner notifies after commit.
func (s *CustomerStore) WithTx(tx *gorm.DB) *CustomerStore {
	return &CustomerStore{db: tx}
}

func (s *CustomerStore) notify() {
	if s.notifier != nil {
		s.notifier.Notify(TableCustomers)
	}
}

// Insert upserts a customer by primary key.
func (s *CustomerStore) Insert(ctx context.Context, c *models.Customer) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(c).Error
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	s.notify()
	return nil
}

// Update updates the row matching the customer's primary key. Updating a
// missing row silently succeeds.
func (s *CustomerStore) Update(ctx context.Context, c *models.Customer) error {
	result := s.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("customer_id = ?", c.CustomerID).
		Updates(map[string]interface{}{
			"first_name": c.FirstName,
			"last_name":  c.LastName,
			"email":      c.Email,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		s.notify()
	}
	return nil
}

// Delete removes the row matching the customer's primary key.
func (s *CustomerStore) Delete(ctx context.Context, c *models.Customer) error {
	result := s.db.WithContext(ctx).Delete(&models.Customer{}, c.CustomerID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		s.notify()
	}
	return nil
}

// All returns a snapshot of every customer in insertion order.
func (s *CustomerStore) All(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.WithContext(ctx).Order("customer_id").Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// GetByID returns the customer with the given identifier, or nil when no
// such row exists.
func (s *CustomerStore) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	err := s.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %d: %w", id, err)
	}
	return &c, nil
}

// WatchAll returns a live view of the customers table.
func (s *CustomerStore) WatchAll(ctx context.Context) <-chan []models.Customer {
	return watch(ctx, s.notifier, TableCustomers, func() ([]models.Customer, error) {
		return s.All(ctx)
	})
}
