package models

import "time"

// Admin is the single account type of the system. There is one flat admin
// role; no permission hierarchy.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"` // unique login key
	PasswordHash string    `json:"-"`     // don’t expose hash
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
