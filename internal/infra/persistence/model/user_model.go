package model

import "time"

// UserModel is the GORM-specific struct for the 'users' table.
// Accounts are provisioned upstream; this service only reads and removes them.
type UserModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
