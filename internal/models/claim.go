package models

import "time"

// ClaimStatus is the state a guest records against an item.
type ClaimStatus string

const (
	ClaimStatusPlanning ClaimStatus = "PLANNING"
	ClaimStatusBought   ClaimStatus = "BOUGHT"
)

// Valid reports whether the status is one of the accepted values.
func (s ClaimStatus) Valid() bool {
	return s == ClaimStatusPlanning || s == ClaimStatusBought
}

// Claim records a guest's intent against an item. Claims are append-only:
// updating an item's state inserts a new row, and the newest claim decides
// the item's effective status.
type Claim struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	ItemID      uint        `gorm:"not null;index" json:"itemId"`
	Status      ClaimStatus `gorm:"type:varchar(16);not null" json:"status"`
	GuestName   string      `json:"guestName,omitempty"`
	GuestEmail  string      `json:"guestEmail,omitempty"`
	IsAnonymous bool        `json:"isAnonymous"`
	CreatedAt   time.Time   `gorm:"index" json:"createdAt"`
}
