package models

// Category groups products on the store shelf (e.g. "Bebidas", "Abarrotes")
type Category struct {
	CategoryID uint   `gorm:"primaryKey" json:"category_id"`
	Name       string `gorm:"not null" json:"name"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
