package models

// OrderDetail is one line item of an order. The composite primary key
// (order_id, product_id) means inserting the same pair again replaces the
// existing row instead of duplicating it.
type OrderDetail struct {
	OrderID   uint `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	ProductID uint `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	Quantity  int  `gorm:"not null" json:"quantity"`
}

// TableName specifies the table name for the OrderDetail model
func (OrderDetail) TableName() string {
	return "order_details"
}
