package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rcastillo/bodega-api/models"
)

// ProductStore provides access to the products table, including the
// category-filtered reads used by the filtered product view.
type ProductStore struct {
	db       *gorm.DB
	notifier *Notifier
}

// NewProductStore creates a product accessor backed by db.
func NewProductStore(db *gorm.DB, notifier *Notifier) *ProductStore {
	return &ProductStore{db: db, notifier: notifier}
}

// WithTx returns a copy of the store bound to tx. The copy is silent: it
// emits no change notifications, the transaction owner notifies after commit.
func (s *ProductStore) WithTx(tx *gorm.DB) *ProductStore {
	return &ProductStore{db: tx}
}

func (s *ProductStore) notify() {
	if s.notifier != nil {
		s.notifier.Notify(TableProducts)
	}
}

// Insert upserts a product by primary key. Rejects negative prices.
func (s *ProductStore) Insert(ctx context.Context, p *models.Product) error {
	if p.Price < 0 {
		return ErrNegativePrice
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(p).Error
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	s.notify()
	return nil
}

// Update updates the row matching the product's primary key. Updating a
// missing row silently succeeds.
func (s *ProductStore) Update(ctx context.Context, p *models.Product) error {
	if p.Price < 0 {
		return ErrNegativePrice
	}
	result := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("product_id = ?", p.ProductID).
		Updates(map[string]interface{}{
			"name":        p.Name,
			"price":       p.Price,
			"category_id": p.CategoryID,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		s.notify()
	}
	return nil
}

// Delete removes the row matching the product's primary key.
func (s *ProductStore) Delete(ctx context.Context, p *models.Product) error {
	result := s.db.WithContext(ctx).Delete(&models.Product{}, p.ProductID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		s.notify()
	}
	return nil
}

// DeleteByCategory removes every product belonging to the given category.
func (s *ProductStore) DeleteByCategory(ctx context.Context, categoryID uint) error {
	result := s.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Delete(&models.Product{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete products of category %d: %w", categoryID, result.Error)
	}
	if result.RowsAffected > 0 {
		s.notify()
	}
	return nil
}

// All returns a snapshot of every product in insertion order.
func (s *ProductStore) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).Order("product_id").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ByCategory returns a snapshot of the products belonging to categoryID.
func (s *ProductStore) ByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("product_id").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products of category %d: %w", categoryID, err)
	}
	return products, nil
}

// GetByID returns the product with the given identifier, or nil when no such
// row exists.
func (s *ProductStore) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	err := s.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &p, nil
}

// WatchAll returns a live view of the products table.
func (s *ProductStore) WatchAll(ctx context.Context) <-chan []models.Product {
	return watch(ctx, s.notifier, TableProducts, func() ([]models.Product, error) {
		return s.All(ctx)
	})
}

// WatchByCategory returns a live view of the products belonging to
// categoryID.
func (s *ProductStore) WatchByCategory(ctx context.Context, categoryID uint) <-chan []models.Product {
	return watch(ctx, s.notifier, TableProducts, func() ([]models.Product, error) {
		return s.ByCategory(ctx, categoryID)
	})
}
