package models

import "time"

// Event is a wishlist gathering created by a host. Access is gated by the two
// generated codes; there are no user accounts. Events are immutable after
// creation apart from their item list.
type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Date      string    `gorm:"not null" json:"date"`
	HostEmail string    `gorm:"not null" json:"hostEmail"`
	HostCode  string    `gorm:"uniqueIndex;not null" json:"hostCode,omitempty"`
	GuestCode string    `gorm:"uniqueIndex;not null" json:"guestCode,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Items []Item `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}
