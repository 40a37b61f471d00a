package services

import (
	"strings"

	"github.com/danaholt/giftwish/internal/auth"
	"github.com/danaholt/giftwish/internal/models"
)

// ItemStatus is the display status derived from an item's claim log.
type ItemStatus string

const (
	ItemStatusAvailable ItemStatus = "AVAILABLE"
	ItemStatusPlanned   ItemStatus = "PLANNED"
	ItemStatusBought    ItemStatus = "BOUGHT"
)

// AnonymousGuestName is shown whenever a claimant's real name must be hidden.
const AnonymousGuestName = "Anonymous Guest"

// DerivedStatus is the role-independent result of walking an item's claims.
type DerivedStatus struct {
	Status ItemStatus
	// HostDisplayName is what the host sees: the claimant's name, or
	// AnonymousGuestName when the claim is anonymous. Empty when AVAILABLE.
	HostDisplayName string
	// GuestDisplayName is what other guests see: never a real name.
	GuestDisplayName string
}

// DeriveStatus folds an item's claim log into a display status. Only the
// newest claim counts; older rows are history. Ties on CreatedAt go to the
// highest ID, the later insert.
func DeriveStatus(claims []models.Claim) DerivedStatus {
	latest, ok := latestClaim(claims)
	if !ok {
		return DerivedStatus{Status: ItemStatusAvailable}
	}

	status := ItemStatusPlanned
	if latest.Status == models.ClaimStatusBought {
		status = ItemStatusBought
	}

	hostName := strings.TrimSpace(latest.GuestName)
	if latest.IsAnonymous || hostName == "" {
		hostName = AnonymousGuestName
	}

	return DerivedStatus{
		Status:           status,
		HostDisplayName:  hostName,
		GuestDisplayName: AnonymousGuestName,
	}
}

func latestClaim(claims []models.Claim) (models.Claim, bool) {
	if len(claims) == 0 {
		return models.Claim{}, false
	}

	latest := claims[0]
	for _, c := range claims[1:] {
		if c.CreatedAt.After(latest.CreatedAt) {
			latest = c
			continue
		}
		if c.CreatedAt.Equal(latest.CreatedAt) && c.ID > latest.ID {
			latest = c
		}
	}
	return latest, true
}

// ItemWithStatus is an item decorated with its derived status for one viewer.
type ItemWithStatus struct {
	models.Item
	Status    ItemStatus `json:"status"`
	GuestName *string    `json:"guestName"`
}

// ItemForViewer renders an item for the given role. Hosts see claimant names
// unless the claim was anonymous; guests never see a real name.
func ItemForViewer(item models.Item, claims []models.Claim, viewer auth.Role) ItemWithStatus {
	derived := DeriveStatus(claims)

	view := ItemWithStatus{
		Item:   item,
		Status: derived.Status,
	}
	view.Claims = nil

	if derived.Status == ItemStatusAvailable {
		return view
	}

	name := derived.GuestDisplayName
	if viewer == auth.RoleHost {
		name = derived.HostDisplayName
	}
	view.GuestName = &name

	return view
}
