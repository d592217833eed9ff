package models

// Product is a single sellable item. CategoryID references the categories
// table; the relation is not enforced by the schema, the repository cleans up
// products when their category is deleted.
type Product struct {
	ProductID  uint    `gorm:"primaryKey" json:"product_id"`
	Name       string  `gorm:"not null" json:"name"`
	Price      float64 `gorm:"not null" json:"price"`
	CategoryID uint    `gorm:"index" json:"category_id"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}
