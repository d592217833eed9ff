package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rcastillo/bodega-api/models"
)

// CategoryStore provides access to the categories table.
type CategoryStore struct {
	db       *gorm.DB
	notifier *Notifier
}

// NewCategoryStore creates a category accessor backed by db.
func NewCategoryStore(db *gorm.DB, notifier *Notifier) *CategoryStore {
	return &CategoryStore{db: db, notifier: notifier}
}

// WithTx returns a copy of the store bound to tx. The copy is silent: it
// emits no change notifications, the transaction owner notifies after commit.
func (s *CategoryStore) WithTx(tx *gorm.DB) *CategoryStore {
	return &CategoryStore{db: tx}
}

func (s *CategoryStore) notify() {
	if s.notifier != nil {
		s.notifier.Notify(TableCategories)
	}
}

// Insert upserts a category by primary key. A zero CategoryID gets an
// identifier assigned by the database; an existing identifier replaces that
// row wholesale.
func (s *CategoryStore) Insert(ctx context.Context, c *models.Category) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(c).Error
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	s.notify()
	return nil
}

// Update updates the row matching the category's primary key. Updating a
// missing row silently succeeds.
func (s *CategoryStore) Update(ctx context.Context, c *models.Category) error {
	result := s.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("category_id = ?", c.CategoryID).
		Update("name", c.Name)
	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		s.notify()
	}
	return nil
}

// Delete removes the row matching the category's primary key.
func (s *CategoryStore) Delete(ctx context.Context, c *models.Category) error {
	result := s.db.WithContext(ctx).Delete(&models.Category{}, c.CategoryID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		s.notify()
	}
	return nil
}

// DeleteAll removes every category. Used by the seed-loading path.
func (s *CategoryStore) DeleteAll(ctx context.Context) error {
	err := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Category{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete all categories: %w", err)
	}
	s.notify()
	return nil
}

// All returns a snapshot of every category in insertion order.
func (s *CategoryStore) All(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).Order("category_id").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetByID returns the category with the given identifier, or nil when no
// such row exists.
func (s *CategoryStore) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var c models.Category
	err := s.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return &c, nil
}

// WatchAll returns a live view of the categories table. The channel emits
// the current contents immediately and again after every write, and closes
// when ctx is cancelled.
func (s *CategoryStore) WatchAll(ctx context.Context) <-chan []models.Category {
	return watch(ctx, s.notifier, TableCategories, func() ([]models.Category, error) {
		return s.All(ctx)
	})
}
