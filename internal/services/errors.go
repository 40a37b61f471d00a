package services

import "errors"

var (
	// ErrEventNotFound indicates no event matches the identifier or code.
	ErrEventNotFound = errors.New("event: not found")
	// ErrItemNotFound indicates the referenced item does not exist.
	ErrItemNotFound = errors.New("item: not found")
	// ErrNoClaims signals an undo against an item with no recorded claims.
	ErrNoClaims = errors.New("claim: none recorded for item")
	// ErrEventMismatch signals the caller's session is bound to another event.
	ErrEventMismatch = errors.New("session not bound to this event")
	// ErrClaimantMismatch signals the submitted name does not match the latest claimant.
	ErrClaimantMismatch = errors.New("claimant name does not match latest claim")
	// ErrMissingFields signals required creation fields were absent.
	ErrMissingFields = errors.New("required fields missing")
)
