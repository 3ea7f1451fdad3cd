// Package model contains the GORM-specific structs mapping the database tables.
package model

import "time"

// StoreModel is the GORM-specific struct for the 'stores' table.
type StoreModel struct {
	ID        int64    `gorm:"primaryKey;autoIncrement"`
	Name      string   `gorm:"type:varchar(255);not null;uniqueIndex:idx_stores_on_lower_name,expression:lower(name)"`
	Address   string   `gorm:"type:text"`
	Location  string   `gorm:"type:varchar(255)"`
	Hours     string   `gorm:"type:varchar(255)"`
	Latitude  *float64 `gorm:"type:decimal(10,8)"`
	Longitude *float64 `gorm:"type:decimal(11,8)"`
	Revenue   float64  `gorm:"type:decimal(12,2);not null;default:0"`
	Customers int      `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
