package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"pawhaven/internal/domain/animal"
	"pawhaven/internal/domain/transfer"
	"pawhaven/internal/domain/user"
	"pawhaven/internal/infra"
	"pawhaven/internal/pkg/clock"
	"pawhaven/internal/pkg/errs"
	"pawhaven/internal/usecase/shared"
)

var (
	ErrInvalidRecipientEmail    = errs.New("invalid recipient email")
	ErrAnimalNotFound           = errs.New("animal not found")
	ErrTransferNotFound         = errs.New("transfer not found")
	ErrTransferConflict         = errs.New("transfer conflict")
	ErrEmailMismatch            = errs.New("authenticated email does not match recipient")
	ErrTransferAlreadyCompleted = errs.New("transfer already completed")
	ErrTransferCancelled        = errs.New("transfer cancelled")
	ErrTransferExpired          = errs.New("transfer expired")
	ErrStoreOperationFailed     = errs.New("store operation failed")
)

// claimMaxAttempts bounds the re-check loop a resolver runs when its
// conditional write loses a race.
const claimMaxAttempts = 3

type TransferMode string

const (
	ModeImmediate TransferMode = "immediate"
	ModeDeferred  TransferMode = "deferred"
)

type TransferOutcome struct {
	Mode            TransferMode
	AnimalID        uuid.UUID
	RecipientUserID *uuid.UUID // immediate mode
	TransferID      *uuid.UUID // deferred mode
	ClaimToken      string     // deferred mode
	ExpiresAt       *time.Time // deferred mode
}

type ClaimOutcome struct {
	TransferID  uuid.UUID
	Animal      transfer.AnimalSnapshot
	OwnerUserID uuid.UUID
	CompletedAt time.Time
}

type TransferCommands interface {
	Initiate(ctx context.Context, animalID uuid.UUID, recipientEmail string, shelterID uuid.UUID) (*TransferOutcome, error)
	ResolveClaim(ctx context.Context, claimToken string, accountID uuid.UUID, accountEmail string) (*ClaimOutcome, error)
	Cancel(ctx context.Context, transferID, shelterID uuid.UUID) error
	ExpireOverdue(ctx context.Context, shelterID uuid.UUID) (int, error)
}

type transferCommandsImpl struct {
	uow    shared.UnitOfWork
	mailer Mailer
	clock  clock.Clock
}

func NewTransferCommands(uow shared.UnitOfWork, mailer Mailer, clk clock.Clock) TransferCommands {
	return &transferCommandsImpl{
		uow:    uow,
		mailer: mailer,
		clock:  clk,
	}
}

// Initiate decides immediate vs. deferred mode by resolving the recipient
// email against the identity directory.
func (c *transferCommandsImpl) Initiate(
	ctx context.Context,
	animalID uuid.UUID,
	recipientEmail string,
	shelterID uuid.UUID,
) (*TransferOutcome, error) {
	email, err := user.NewEmail(recipientEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRecipientEmail)
	}

	a, err := c.loadTransferableAnimal(ctx, animalID, shelterID)
	if err != nil {
		return nil, err
	}

	recipient, err := c.uow.Reads().DirectoryEntryByEmail(ctx, email)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	if recipient != nil {
		return c.initiateImmediate(ctx, a, shelterID, recipient)
	}
	return c.initiateDeferred(ctx, a, shelterID, email)
}

func (c *transferCommandsImpl) loadTransferableAnimal(
	ctx context.Context,
	animalID, shelterID uuid.UUID,
) (*animal.Animal, error) {
	a, err := c.uow.Reads().AnimalByID(ctx, animalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAnimalNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	if err := a.Transferable(shelterID); err != nil {
		if errors.Is(err, animal.ErrNotShelterOwned) {
			// Ownership mismatch is indistinguishable from absence to the caller.
			return nil, ErrAnimalNotFound
		}
		return nil, errs.Mark(err, ErrTransferConflict)
	}
	return a, nil
}

func (c *transferCommandsImpl) initiateImmediate(
	ctx context.Context,
	a *animal.Animal,
	shelterID uuid.UUID,
	recipient *shared.DirectoryEntry,
) (*TransferOutcome, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Animals().TransferOwnership(ctx, a.ID(), shelterID, recipient.ID)
		if err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		if !ok {
			// Lost a race: the animal changed hands or went mid-transfer
			// between the precondition read and this write.
			return ErrTransferConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The notification is a convenience signal, not a correctness
	// requirement: the ownership write stands even when this fails.
	c.writeDogReceivedNotification(ctx, recipient.ID, a.ID(), a.Name())

	recipientID := recipient.ID
	return &TransferOutcome{
		Mode:            ModeImmediate,
		AnimalID:        a.ID(),
		RecipientUserID: &recipientID,
	}, nil
}

func (c *transferCommandsImpl) initiateDeferred(
	ctx context.Context,
	a *animal.Animal,
	shelterID uuid.UUID,
	email user.Email,
) (*TransferOutcome, error) {
	now := c.clock.Now()

	pt, err := transfer.NewPendingTransfer(a.ID(), shelterID, email, transfer.SnapshotOf(a), now)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Transfers().Create(ctx, pt); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrTransferConflict
			}
			return errs.Mark(err, ErrStoreOperationFailed)
		}

		ok, err := tx.Animals().HoldForTransfer(ctx, a.ID(), shelterID)
		if err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		if !ok {
			return ErrTransferConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.dispatchClaimInvite(ctx, pt)

	transferID := pt.ID()
	expiresAt := pt.ExpiresAt()
	return &TransferOutcome{
		Mode:       ModeDeferred,
		AnimalID:   a.ID(),
		TransferID: &transferID,
		ClaimToken: pt.ClaimToken().Value(),
		ExpiresAt:  &expiresAt,
	}, nil
}

// dispatchClaimInvite is fire-and-forget: the transfer record is already
// durable and the claim link can be reconstructed from the token, so mail
// failures are logged and swallowed.
func (c *transferCommandsImpl) dispatchClaimInvite(ctx context.Context, pt *transfer.PendingTransfer) {
	invite := ClaimInvite{
		AnimalName:     pt.Snapshot().Name,
		AnimalPhotoURL: pt.Snapshot().PhotoURL,
		ClaimToken:     pt.ClaimToken().Value(),
		ExpiresInDays:  int(transfer.TTL.Hours() / 24),
	}
	recipient := pt.RecipientEmail().Value()

	go func(ctx context.Context) {
		if err := c.mailer.SendClaimInvite(ctx, recipient, invite); err != nil {
			slog.Warn("claim invite delivery failed",
				"transfer_id", pt.ID(),
				"error", err.Error())
		}
	}(context.WithoutCancel(ctx))
}

// ResolveClaim converts a claim token plus an authenticated identity into a
// finalized ownership change. Safe under concurrent invocation: the
// conditional write on the pending record admits exactly one winner, and
// losers re-run the state checks instead of re-finalizing.
func (c *transferCommandsImpl) ResolveClaim(
	ctx context.Context,
	claimToken string,
	accountID uuid.UUID,
	accountEmail string,
) (*ClaimOutcome, error) {
	token, err := transfer.ParseClaimToken(claimToken)
	if err != nil {
		// A malformed token cannot name a record.
		return nil, ErrTransferNotFound
	}

	email, err := user.NewEmail(accountEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRecipientEmail)
	}

	for attempt := 0; attempt < claimMaxAttempts; attempt++ {
		pt, err := c.uow.Reads().TransferByToken(ctx, token)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrTransferNotFound
			}
			return nil, errs.Mark(err, ErrStoreOperationFailed)
		}

		now := c.clock.Now()
		if err := pt.CheckClaimable(email, now); err != nil {
			return nil, c.mapClaimCheck(ctx, pt, err, now)
		}

		if err := c.ensureDirectoryEntry(ctx, accountID, email); err != nil {
			return nil, err
		}

		completed, err := c.finalizeClaim(ctx, pt, accountID, now)
		if err != nil {
			return nil, err
		}
		if !completed {
			// A concurrent resolver or the sweeper got there first;
			// re-read and report the terminal state.
			continue
		}

		return &ClaimOutcome{
			TransferID:  pt.ID(),
			Animal:      pt.Snapshot(),
			OwnerUserID: accountID,
			CompletedAt: now,
		}, nil
	}

	return nil, errs.Mark(errs.New("claim re-check attempts exhausted"), ErrStoreOperationFailed)
}

// mapClaimCheck turns a domain state-check failure into the user-facing
// terminal error, persisting lazy expiry as a side effect.
func (c *transferCommandsImpl) mapClaimCheck(ctx context.Context, pt *transfer.PendingTransfer, checkErr error, now time.Time) error {
	switch {
	case errors.Is(checkErr, transfer.ErrAlreadyCompleted):
		return ErrTransferAlreadyCompleted
	case errors.Is(checkErr, transfer.ErrCancelled):
		return ErrTransferCancelled
	case errors.Is(checkErr, transfer.ErrExpired):
		if pt.Status() == transfer.StatusPending {
			if err := c.persistExpiry(ctx, pt.ID(), pt.AnimalID(), now); err != nil {
				slog.Warn("lazy expiry persistence failed",
					"transfer_id", pt.ID(),
					"error", err.Error())
			}
		}
		return ErrTransferExpired
	case errors.Is(checkErr, transfer.ErrEmailMismatch):
		return ErrEmailMismatch
	default:
		return errs.Mark(checkErr, ErrStoreOperationFailed)
	}
}

// ensureDirectoryEntry bridges accounts that exist at the authentication
// layer but have not materialized a directory entry yet.
func (c *transferCommandsImpl) ensureDirectoryEntry(ctx context.Context, accountID uuid.UUID, email user.Email) error {
	entry, err := c.uow.Reads().DirectoryEntryByID(ctx, accountID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrStoreOperationFailed)
	}
	if entry != nil {
		return nil
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		displayName, _, found := strings.Cut(email.Value(), "@")
		if !found || displayName == "" {
			displayName = email.Value()
		}
		if err := tx.Users().EnsureDirectoryEntry(ctx, accountID, email, displayName); err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		return nil
	})
}

// finalizeClaim applies the ownership change and the pending→completed flip
// in one transaction keyed on the record still being pending. Returns false
// when the conditional write admitted someone else.
func (c *transferCommandsImpl) finalizeClaim(ctx context.Context, pt *transfer.PendingTransfer, accountID uuid.UUID, now time.Time) (bool, error) {
	completed := false
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Transfers().CompletePending(ctx, pt.ID(), accountID, now)
		if err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		if !ok {
			return nil
		}

		adopted, err := tx.Animals().Adopt(ctx, pt.AnimalID(), accountID)
		if err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		if !adopted {
			// The hold was released underneath a still-pending transfer;
			// roll everything back rather than adopt out a freed animal.
			return errs.Mark(errs.New("animal hold lost while transfer pending"), ErrStoreOperationFailed)
		}

		payload, err := dogReceivedPayload(pt.AnimalID(), pt.Snapshot().Name)
		if err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		if err := tx.Notifications().Create(ctx, accountID, NotificationTypeDogReceived, payload); err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}

		completed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return completed, nil
}

func (c *transferCommandsImpl) persistExpiry(ctx context.Context, transferID, animalID uuid.UUID, now time.Time) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Transfers().MarkExpired(ctx, transferID, now)
		if err != nil {
			return err
		}
		if !ok {
			// Already terminal; nothing to restore.
			return nil
		}
		if _, err := tx.Animals().ReleaseHold(ctx, animalID); err != nil {
			return err
		}
		return nil
	})
}

// Cancel is the shelter-side revocation extension point: a conditional
// pending→cancelled flip that can never race a completed claim into an
// inconsistent state.
func (c *transferCommandsImpl) Cancel(ctx context.Context, transferID, shelterID uuid.UUID) error {
	pt, err := c.uow.Reads().TransferByID(ctx, transferID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTransferNotFound
		}
		return errs.Mark(err, ErrStoreOperationFailed)
	}
	if pt.ShelterID() != shelterID {
		return ErrTransferNotFound
	}
	if pt.Status() != transfer.StatusPending {
		return ErrTransferConflict
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Transfers().MarkCancelled(ctx, transferID, c.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		if !ok {
			return ErrTransferConflict
		}
		if _, err := tx.Animals().ReleaseHold(ctx, pt.AnimalID()); err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		return nil
	})
}

// ExpireOverdue persists the expired state for every overdue pending transfer
// of a shelter. Invoked opportunistically from dashboard reads; there is no
// background sweeper.
func (c *transferCommandsImpl) ExpireOverdue(ctx context.Context, shelterID uuid.UUID) (int, error) {
	now := c.clock.Now()
	overdue, err := c.uow.Reads().OverduePendingTransfers(ctx, shelterID, now)
	if err != nil {
		return 0, errs.Mark(err, ErrStoreOperationFailed)
	}

	expired := 0
	for _, pt := range overdue {
		if err := c.persistExpiry(ctx, pt.ID(), pt.AnimalID(), now); err != nil {
			slog.Warn("opportunistic expiry failed",
				"transfer_id", pt.ID(),
				"error", err.Error())
			continue
		}
		expired++
	}
	return expired, nil
}

func dogReceivedPayload(animalID uuid.UUID, animalName string) ([]byte, error) {
	return json.Marshal(map[string]any{
		"animal_id":   animalID,
		"animal_name": animalName,
	})
}

// writeDogReceivedNotification covers the immediate-mode path where the
// ownership write has already committed and the signal is strictly best-effort.
func (c *transferCommandsImpl) writeDogReceivedNotification(ctx context.Context, userID, animalID uuid.UUID, animalName string) {
	payload, err := dogReceivedPayload(animalID, animalName)
	if err != nil {
		slog.Warn("notification payload marshal failed", "animal_id", animalID, "error", err.Error())
		return
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().Create(ctx, userID, NotificationTypeDogReceived, payload)
	})
	if err != nil {
		slog.Warn("dog_received notification write failed",
			"user_id", userID,
			"animal_id", animalID,
			"error", err.Error())
	}
}
