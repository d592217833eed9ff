package store

import (
	"gorm.io/gorm"

	"github.com/rcastillo/bodega-api/models"
)

// Stores bundles every accessor over one database handle and one change
// notifier.
type Stores struct {
	DB       *gorm.DB
	Notifier *Notifier

	Categories   *CategoryStore
	Products     *ProductStore
	Customers    *CustomerStore
	Orders       *OrderStore
	OrderDetails *OrderDetailStore
	Settings     *SettingStore
}

// New creates the accessor bundle for db with a fresh notifier.
func New(db *gorm.DB) *Stores {
	notifier := NewNotifier()
	return &Stores{
		DB:           db,
		Notifier:     notifier,
		Categories:   NewCategoryStore(db, notifier),
		Products:     NewProductStore(db, notifier),
		Customers:    NewCustomerStore(db, notifier),
		Orders:       NewOrderStore(db, notifier),
		OrderDetails: NewOrderDetailStore(db, notifier),
		Settings:     NewSettingStore(db),
	}
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Customer{},
		&models.Order{},
		&models.OrderDetail{},
		&models.Setting{},
	)
}
