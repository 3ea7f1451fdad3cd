package entity

import "time"

// User is a registered customer account. Authentication lives upstream;
// the service only needs the identity for favorites ownership.
type User struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}
