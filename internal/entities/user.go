package entities

import "time"

// User carries no credentials: authentication happens outside of this
// service, operations receive an already-authenticated user id.
type User struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
}
