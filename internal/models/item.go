package models

import "time"

// Item is a wished-for entry on an event's list. Only the host can add items;
// items are removed by cascade when their event is deleted.
type Item struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EventID     uint      `gorm:"not null;index" json:"eventId"`
	Name        string    `gorm:"not null" json:"name"`
	Link        *string   `json:"link,omitempty"`
	Description *string   `json:"description,omitempty"`
	Quantity    *int      `json:"quantity,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Claims []Claim `gorm:"constraint:OnDelete:CASCADE" json:"claims,omitempty"`
}
