package models

// Customer represents a store customer
type Customer struct {
	CustomerID uint   `gorm:"primaryKey" json:"customer_id"`
	FirstName  string `gorm:"not null" json:"first_name"`
	LastName   string `gorm:"not null" json:"last_name"`
	Email      string `gorm:"not null" json:"email"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
