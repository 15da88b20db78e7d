package model

import "time"

// User is a registered account. PasswordHash is a bcrypt digest and never
// leaves the persistence and application layers.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
