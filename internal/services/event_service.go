package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/danaholt/giftwish/internal/auth"
	"github.com/danaholt/giftwish/internal/models"
	"github.com/danaholt/giftwish/pkg/crypto"
	"github.com/danaholt/giftwish/pkg/logger"
	"github.com/danaholt/giftwish/pkg/mail"
)

const maxCodeAttempts = 10

// EventOption customises EventService behaviour.
type EventOption func(*EventService)

// WithBaseURL sets the public URL included in notification emails.
func WithBaseURL(url string) EventOption {
	return func(s *EventService) {
		s.baseURL = strings.TrimRight(url, "/")
	}
}

// EventService manages event creation, code login and detail assembly.
type EventService struct {
	db      *gorm.DB
	mailer  mail.Mailer
	baseURL string
	log     *zap.Logger
}

// NewEventService constructs an EventService. The mailer may be nil in tests.
func NewEventService(db *gorm.DB, mailer mail.Mailer, opts ...EventOption) (*EventService, error) {
	if db == nil {
		return nil, errors.New("event service: db is required")
	}

	service := &EventService{
		db:     db,
		mailer: mailer,
		log:    logger.WithModule("events"),
	}

	for _, opt := range opts {
		opt(service)
	}

	return service, nil
}

// CreateEventInput carries the host-supplied event fields.
type CreateEventInput struct {
	Name      string
	Date      string
	HostEmail string
}

// CreateEvent validates input, generates both access codes and inserts the
// event. The creation email carrying the codes is sent after the insert; a
// delivery failure is logged and does not roll the event back.
func (s *EventService) CreateEvent(ctx context.Context, input CreateEventInput) (*models.Event, error) {
	name := strings.TrimSpace(input.Name)
	date := strings.TrimSpace(input.Date)
	hostEmail := strings.TrimSpace(input.HostEmail)

	if name == "" || date == "" || hostEmail == "" {
		return nil, ErrMissingFields
	}

	hostCode, guestCode, err := s.generateCodes(ctx)
	if err != nil {
		return nil, err
	}

	event := models.Event{
		Name:      name,
		Date:      date,
		HostEmail: hostEmail,
		HostCode:  hostCode,
		GuestCode: guestCode,
	}

	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return nil, fmt.Errorf("event service: create event: %w", err)
	}

	s.sendCreationEmail(ctx, &event)

	return &event, nil
}

// generateCodes produces a fresh host/guest code pair, retrying guest codes
// that are already taken. Host codes carry enough entropy that collisions are
// not worth checking for; the 6-symbol guest code is not.
func (s *EventService) generateCodes(ctx context.Context) (string, string, error) {
	hostCode, err := crypto.GenerateHostCode()
	if err != nil {
		return "", "", fmt.Errorf("event service: generate host code: %w", err)
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		guestCode, err := crypto.GenerateGuestCode()
		if err != nil {
			return "", "", fmt.Errorf("event service: generate guest code: %w", err)
		}
		if guestCode == hostCode {
			continue
		}

		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Event{}).
			Where("guest_code = ?", guestCode).
			Count(&count).Error; err != nil {
			return "", "", fmt.Errorf("event service: check guest code: %w", err)
		}
		if count == 0 {
			return hostCode, guestCode, nil
		}
	}

	return "", "", errors.New("event service: could not allocate a unique guest code")
}

func (s *EventService) sendCreationEmail(ctx context.Context, event *models.Event) {
	if s.mailer == nil {
		return
	}

	lines := []string{
		fmt.Sprintf("Event: %s", event.Name),
		fmt.Sprintf("Date: %s", event.Date),
		"",
		fmt.Sprintf("Host code: %s", event.HostCode),
		fmt.Sprintf("Guest code: %s", event.GuestCode),
	}
	if s.baseURL != "" {
		lines = append(lines, "", fmt.Sprintf("Access the wishlist by using host or guest code at: %s", s.baseURL))
	}

	msg := mail.Message{
		To:      []string{event.HostEmail},
		Subject: fmt.Sprintf("Your event %q has been created", event.Name),
		Body:    strings.Join(lines, "\n"),
	}

	if err := s.mailer.Send(ctx, msg); err != nil && !errors.Is(err, mail.ErrSMTPDisabled) {
		s.log.Error("creation email failed", zap.Uint("event_id", event.ID), zap.Error(err))
	}
}

// LookupByCode finds an event by either code and reports the matched role.
func (s *EventService) LookupByCode(ctx context.Context, code string) (*models.Event, auth.Role, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, "", ErrMissingFields
	}

	var event models.Event
	err := s.db.WithContext(ctx).
		Where("host_code = ? OR guest_code = ?", code, code).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrEventNotFound
		}
		return nil, "", fmt.Errorf("event service: lookup by code: %w", err)
	}

	role := auth.RoleGuest
	if code == event.HostCode {
		role = auth.RoleHost
	}

	return &event, role, nil
}

// GetByID loads a single event row.
func (s *EventService) GetByID(ctx context.Context, eventID uint) (*models.Event, error) {
	var event models.Event
	err := s.db.WithContext(ctx).First(&event, eventID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("event service: get event: %w", err)
	}
	return &event, nil
}

// EventDetail is the role-aware payload for the event page.
type EventDetail struct {
	Event models.Event     `json:"event"`
	Items []ItemWithStatus `json:"items"`
	Role  auth.Role        `json:"role"`
}

// GetDetail assembles the event, its items and each item's derived status for
// the given viewer. Access codes are redacted unless the viewer is the host.
func (s *EventService) GetDetail(ctx context.Context, eventID uint, viewer auth.Role) (*EventDetail, error) {
	event, err := s.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	var items []models.Item
	if err := s.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("id").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("event service: load items: %w", err)
	}

	claimsByItem := map[uint][]models.Claim{}
	if len(items) > 0 {
		itemIDs := make([]uint, 0, len(items))
		for _, item := range items {
			itemIDs = append(itemIDs, item.ID)
		}

		var claims []models.Claim
		if err := s.db.WithContext(ctx).
			Where("item_id IN ?", itemIDs).
			Find(&claims).Error; err != nil {
			return nil, fmt.Errorf("event service: load claims: %w", err)
		}

		for _, claim := range claims {
			claimsByItem[claim.ItemID] = append(claimsByItem[claim.ItemID], claim)
		}
	}

	views := make([]ItemWithStatus, 0, len(items))
	for _, item := range items {
		views = append(views, ItemForViewer(item, claimsByItem[item.ID], viewer))
	}

	redacted := *event
	if viewer != auth.RoleHost {
		redacted.HostCode = ""
		redacted.GuestCode = ""
	}

	return &EventDetail{
		Event: redacted,
		Items: views,
		Role:  viewer,
	}, nil
}

// DeleteEvent removes the event; items and claims go with it by cascade.
func (s *EventService) DeleteEvent(ctx context.Context, eventID uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Event{}, eventID)
	if result.Error != nil {
		return fmt.Errorf("event service: delete event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}
