package model

import "time"

// ProductModel is the GORM-specific struct for the 'products' table.
// Category is nullable; rows without one surface as "Uncategorized" at the
// domain boundary.
type ProductModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	StoreID   int64   `gorm:"not null;index:idx_products_on_store"`
	Name      string  `gorm:"type:varchar(255);not null"`
	SKU       string  `gorm:"type:varchar(100);not null"`
	Price     float64 `gorm:"type:decimal(10,2);not null;default:0"`
	Category  *string `gorm:"type:varchar(100)"`
	Stock     int     `gorm:"not null;default:0"`
	Supplier  string  `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
