package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/danaholt/giftwish/internal/models"
	"github.com/danaholt/giftwish/pkg/logger"
	"github.com/danaholt/giftwish/pkg/mail"
	"github.com/danaholt/giftwish/pkg/metrics"
)

// ClaimService records, undoes and clears claims against items.
type ClaimService struct {
	db     *gorm.DB
	mailer mail.Mailer
	log    *zap.Logger
}

// NewClaimService constructs a ClaimService. The mailer may be nil in tests.
func NewClaimService(db *gorm.DB, mailer mail.Mailer) (*ClaimService, error) {
	if db == nil {
		return nil, errors.New("claim service: db is required")
	}
	return &ClaimService{
		db:     db,
		mailer: mailer,
		log:    logger.WithModule("claims"),
	}, nil
}

// ClaimItemInput carries a guest's claim submission.
type ClaimItemInput struct {
	Status    models.ClaimStatus
	Name      string
	Email     string
	Anonymous bool
}

// ClaimItem appends a claim row for the item. The item's owning event must
// match the caller's session event; that binding is re-derived from the item
// here, never taken from the request. A BOUGHT claim notifies the host.
func (s *ClaimService) ClaimItem(ctx context.Context, itemID, callerEventID uint, input ClaimItemInput) (*models.Claim, error) {
	if !input.Status.Valid() {
		return nil, ErrMissingFields
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrMissingFields
	}

	item, event, err := s.loadItemWithEvent(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if event.ID != callerEventID {
		return nil, ErrEventMismatch
	}

	claim := models.Claim{
		ItemID:      item.ID,
		Status:      input.Status,
		GuestName:   name,
		GuestEmail:  strings.TrimSpace(input.Email),
		IsAnonymous: input.Anonymous,
	}

	if err := s.db.WithContext(ctx).Create(&claim).Error; err != nil {
		return nil, fmt.Errorf("claim service: create claim: %w", err)
	}

	metrics.ClaimsCreated.WithLabelValues(string(claim.Status)).Inc()

	if claim.Status == models.ClaimStatusBought {
		s.sendBoughtEmail(ctx, event, item, &claim)
	}

	return &claim, nil
}

func (s *ClaimService) sendBoughtEmail(ctx context.Context, event *models.Event, item *models.Item, claim *models.Claim) {
	if s.mailer == nil {
		return
	}

	displayName := claim.GuestName
	if claim.IsAnonymous {
		displayName = AnonymousGuestName
	}

	msg := mail.Message{
		To:      []string{event.HostEmail},
		Subject: fmt.Sprintf("An item was bought for %q", event.Name),
		Body:    fmt.Sprintf("%s marked %q as bought.", displayName, item.Name),
	}

	if err := s.mailer.Send(ctx, msg); err != nil && !errors.Is(err, mail.ErrSMTPDisabled) {
		s.log.Error("bought notification failed", zap.Uint("item_id", item.ID), zap.Error(err))
	}
}

// UndoClaim deletes the most recent claim for the item, provided the
// submitted name matches the latest claimant's stored name case-insensitively.
func (s *ClaimService) UndoClaim(ctx context.Context, itemID, callerEventID uint, submittedName string) error {
	submittedName = strings.TrimSpace(submittedName)
	if submittedName == "" {
		return ErrMissingFields
	}

	_, event, err := s.loadItemWithEvent(ctx, itemID)
	if err != nil {
		return err
	}
	if event.ID != callerEventID {
		return ErrEventMismatch
	}

	var latest models.Claim
	err = s.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at DESC").
		Order("id DESC").
		First(&latest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoClaims
		}
		return fmt.Errorf("claim service: load latest claim: %w", err)
	}

	if !strings.EqualFold(submittedName, strings.TrimSpace(latest.GuestName)) {
		return ErrClaimantMismatch
	}

	if err := s.db.WithContext(ctx).Delete(&models.Claim{}, latest.ID).Error; err != nil {
		return fmt.Errorf("claim service: delete claim: %w", err)
	}

	return nil
}

// ClearClaims removes every claim for the item. Host-only; the role check
// lives in the handler, the event binding is verified here.
func (s *ClaimService) ClearClaims(ctx context.Context, itemID, callerEventID uint) error {
	_, event, err := s.loadItemWithEvent(ctx, itemID)
	if err != nil {
		return err
	}
	if event.ID != callerEventID {
		return ErrEventMismatch
	}

	if err := s.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Delete(&models.Claim{}).Error; err != nil {
		return fmt.Errorf("claim service: clear claims: %w", err)
	}

	return nil
}

func (s *ClaimService) loadItemWithEvent(ctx context.Context, itemID uint) (*models.Item, *models.Event, error) {
	var item models.Item
	if err := s.db.WithContext(ctx).First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrItemNotFound
		}
		return nil, nil, fmt.Errorf("claim service: get item: %w", err)
	}

	var event models.Event
	if err := s.db.WithContext(ctx).First(&event, item.EventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrEventNotFound
		}
		return nil, nil, fmt.Errorf("claim service: get owning event: %w", err)
	}

	return &item, &event, nil
}
