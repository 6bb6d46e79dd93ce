package models

import "time"

// DefaultMenuImage is used when a menu item is created without an uploaded image.
const DefaultMenuImage = "/uploads/sample.jpg"

// Menu is a single orderable item on the restaurant menu.
type Menu struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`          // public path under /uploads
	TimeMinutes int       `json:"time"`           // preparation time in minutes
	Slot        int       `json:"slot"`           // available order slots
	Category    *Category `json:"category,omitempty"` // populated on reads
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
