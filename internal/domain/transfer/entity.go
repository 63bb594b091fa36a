package transfer

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"pawhaven/internal/domain/user"
)

// TTL is a fixed policy: a claim link is valid for exactly seven days.
const TTL = 7 * 24 * time.Hour

var (
	ErrInvalidStatus    = errors.New("invalid transfer status")
	ErrNotPending       = errors.New("transfer is not pending")
	ErrAlreadyCompleted = errors.New("transfer already completed")
	ErrCancelled        = errors.New("transfer was cancelled")
	ErrExpired          = errors.New("transfer has expired")
	ErrEmailMismatch    = errors.New("authenticated email does not match recipient")
)

// PendingTransfer is the durable record of an in-flight deferred hand-off and
// its terminal outcome. Terminal records are immutable; the repository layer
// additionally enforces that with conditional writes.
type PendingTransfer struct {
	id              uuid.UUID
	animalID        uuid.UUID
	shelterID       uuid.UUID
	recipientEmail  user.Email
	claimToken      ClaimToken
	snapshot        AnimalSnapshot
	status          Status
	recipientUserID *uuid.UUID
	createdAt       time.Time
	expiresAt       time.Time
	processedAt     *time.Time
}

func NewPendingTransfer(
	animalID, shelterID uuid.UUID,
	recipientEmail user.Email,
	snapshot AnimalSnapshot,
	now time.Time,
) (*PendingTransfer, error) {
	token, err := NewClaimToken()
	if err != nil {
		return nil, err
	}

	return &PendingTransfer{
		id:             uuid.New(),
		animalID:       animalID,
		shelterID:      shelterID,
		recipientEmail: recipientEmail,
		claimToken:     token,
		snapshot:       snapshot,
		status:         StatusPending,
		createdAt:      now,
		expiresAt:      now.Add(TTL),
	}, nil
}

func ReconstructPendingTransfer(
	id, animalID, shelterID uuid.UUID,
	recipientEmail user.Email,
	claimToken ClaimToken,
	snapshot AnimalSnapshot,
	status Status,
	recipientUserID *uuid.UUID,
	createdAt, expiresAt time.Time,
	processedAt *time.Time,
) *PendingTransfer {
	return &PendingTransfer{
		id:              id,
		animalID:        animalID,
		shelterID:       shelterID,
		recipientEmail:  recipientEmail,
		claimToken:      claimToken,
		snapshot:        snapshot,
		status:          status,
		recipientUserID: recipientUserID,
		createdAt:       createdAt,
		expiresAt:       expiresAt,
		processedAt:     processedAt,
	}
}

// CheckClaimable runs the resolver state table in order. The first terminal
// condition wins; lazily-detected expiry is reported via ErrExpired and the
// caller persists the transition.
func (t *PendingTransfer) CheckClaimable(claimantEmail user.Email, now time.Time) error {
	switch t.status {
	case StatusCompleted:
		return ErrAlreadyCompleted
	case StatusCancelled:
		return ErrCancelled
	case StatusExpired:
		return ErrExpired
	}
	if t.IsExpiredAt(now) {
		return ErrExpired
	}
	if !t.recipientEmail.Equals(claimantEmail) {
		return ErrEmailMismatch
	}
	return nil
}

func (t *PendingTransfer) IsExpiredAt(now time.Time) bool {
	return t.status == StatusPending && now.After(t.expiresAt)
}

// EffectiveStatus is what dashboards display: an overdue pending record reads
// as expired even before the flip is persisted.
func (t *PendingTransfer) EffectiveStatus(now time.Time) Status {
	if t.IsExpiredAt(now) {
		return StatusExpired
	}
	return t.status
}

func (t *PendingTransfer) Complete(recipientUserID uuid.UUID, now time.Time) error {
	if t.status != StatusPending {
		return ErrNotPending
	}
	if now.After(t.expiresAt) {
		return ErrExpired
	}
	t.status = StatusCompleted
	t.recipientUserID = &recipientUserID
	t.processedAt = &now
	return nil
}

func (t *PendingTransfer) Cancel(now time.Time) error {
	if t.status != StatusPending {
		return ErrNotPending
	}
	t.status = StatusCancelled
	t.processedAt = &now
	return nil
}

func (t *PendingTransfer) Expire(now time.Time) error {
	if t.status != StatusPending {
		return ErrNotPending
	}
	t.status = StatusExpired
	t.processedAt = &now
	return nil
}

func (t *PendingTransfer) ID() uuid.UUID               { return t.id }
func (t *PendingTransfer) AnimalID() uuid.UUID         { return t.animalID }
func (t *PendingTransfer) ShelterID() uuid.UUID        { return t.shelterID }
func (t *PendingTransfer) RecipientEmail() user.Email  { return t.recipientEmail }
func (t *PendingTransfer) ClaimToken() ClaimToken      { return t.claimToken }
func (t *PendingTransfer) Snapshot() AnimalSnapshot    { return t.snapshot }
func (t *PendingTransfer) Status() Status              { return t.status }
func (t *PendingTransfer) RecipientUserID() *uuid.UUID { return t.recipientUserID }
func (t *PendingTransfer) CreatedAt() time.Time        { return t.createdAt }
func (t *PendingTransfer) ExpiresAt() time.Time        { return t.expiresAt }
func (t *PendingTransfer) ProcessedAt() *time.Time     { return t.processedAt }
