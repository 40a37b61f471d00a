package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danaholt/giftwish/internal/database/testutil"
	"github.com/danaholt/giftwish/internal/models"
)

func TestAddItem(t *testing.T) {
	db := testutil.MustOpenTestDB(t)

	event := models.Event{Name: "Picnic", Date: "2026-07-04", HostEmail: "host@example.com", HostCode: "hc-add-item", GuestCode: "ADDIT1"}
	require.NoError(t, db.Create(&event).Error)

	svc, err := NewItemService(db)
	require.NoError(t, err)

	link := "https://shop.example.com/blanket"
	qty := 2
	item, err := svc.AddItem(context.Background(), event.ID, AddItemInput{
		Name:     "Picnic blanket",
		Link:     &link,
		Quantity: &qty,
	})
	require.NoError(t, err)
	require.NotZero(t, item.ID)
	require.Equal(t, event.ID, item.EventID)
	require.Equal(t, "Picnic blanket", item.Name)
	require.Equal(t, 2, *item.Quantity)
}

func TestAddItemRequiresName(t *testing.T) {
	db := testutil.MustOpenTestDB(t)

	event := models.Event{Name: "Picnic", Date: "2026-07-04", HostEmail: "host@example.com", HostCode: "hc-name-req", GuestCode: "NAMER1"}
	require.NoError(t, db.Create(&event).Error)

	svc, err := NewItemService(db)
	require.NoError(t, err)

	_, err = svc.AddItem(context.Background(), event.ID, AddItemInput{Name: "  "})
	require.ErrorIs(t, err, ErrMissingFields)

	var count int64
	require.NoError(t, db.Model(&models.Item{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestAddItemUnknownEvent(t *testing.T) {
	db := testutil.MustOpenTestDB(t)

	svc, err := NewItemService(db)
	require.NoError(t, err)

	_, err = svc.AddItem(context.Background(), 12345, AddItemInput{Name: "Kite"})
	require.ErrorIs(t, err, ErrEventNotFound)
}

func TestItemGetByID(t *testing.T) {
	db := testutil.MustOpenTestDB(t)

	event := models.Event{Name: "Picnic", Date: "2026-07-04", HostEmail: "host@example.com", HostCode: "hc-get-item", GuestCode: "GETIT1"}
	require.NoError(t, db.Create(&event).Error)
	item := models.Item{EventID: event.ID, Name: "Thermos"}
	require.NoError(t, db.Create(&item).Error)

	svc, err := NewItemService(db)
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	require.Equal(t, "Thermos", got.Name)

	_, err = svc.GetByID(context.Background(), 999)
	require.ErrorIs(t, err, ErrItemNotFound)
}
