package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/danaholt/giftwish/internal/models"
)

// ItemService manages the host's wishlist entries.
type ItemService struct {
	db *gorm.DB
}

// NewItemService constructs an ItemService.
func NewItemService(db *gorm.DB) (*ItemService, error) {
	if db == nil {
		return nil, errors.New("item service: db is required")
	}
	return &ItemService{db: db}, nil
}

// AddItemInput carries the fields a host may set on a new item.
type AddItemInput struct {
	Name        string
	Link        *string
	Description *string
	Quantity    *int
}

// AddItem inserts an item under the event. The event must exist; role checks
// belong to the handler, which owns the session.
func (s *ItemService) AddItem(ctx context.Context, eventID uint, input AddItemInput) (*models.Item, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrMissingFields
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Event{}).
		Where("id = ?", eventID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("item service: check event: %w", err)
	}
	if count == 0 {
		return nil, ErrEventNotFound
	}

	item := models.Item{
		EventID:     eventID,
		Name:        name,
		Link:        input.Link,
		Description: input.Description,
		Quantity:    input.Quantity,
	}

	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("item service: create item: %w", err)
	}

	return &item, nil
}

// GetByID loads a single item row.
func (s *ItemService) GetByID(ctx context.Context, itemID uint) (*models.Item, error) {
	var item models.Item
	err := s.db.WithContext(ctx).First(&item, itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("item service: get item: %w", err)
	}
	return &item, nil
}
