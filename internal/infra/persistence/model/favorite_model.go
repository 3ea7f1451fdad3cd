package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel is the GORM-specific struct for the 'favorites' table.
// The composite unique index makes concurrent adds of the same
// (user, product) pair converge on a single row.
type FavoriteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_favorites_on_user_product;index"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_favorites_on_user_product;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
