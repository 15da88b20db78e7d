package model

import "time"

// Task is a unit of work owned by a single user. Status is the only field
// that may change after creation. OwnerEmail is captured at creation time
// alongside the owner id, mirroring what the credential carried.
type Task struct {
	ID          string
	Name        string
	Description string
	Status      TaskStatus
	OwnerID     string
	OwnerEmail  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
