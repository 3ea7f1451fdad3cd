package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a user-scoped saved reference to a product.
// The (UserID, ProductID) pair is a set member: at most one edge exists
// per pair, and re-adding an existing favorite is a no-op.
type Favorite struct {
	ID        uuid.UUID
	UserID    int64
	ProductID int64
	CreatedAt time.Time
}
