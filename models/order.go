package models

import "time"

// Order is a customer purchase. Line items live in order_details.
type Order struct {
	OrderID    uint      `gorm:"primaryKey" json:"order_id"`
	CustomerID uint      `gorm:"index" json:"customer_id"`
	OrderDate  time.Time `gorm:"not null" json:"order_date"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
