package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pawhaven/internal/domain/animal"
	"pawhaven/internal/domain/transfer"
	"pawhaven/internal/domain/user"
)

// UnitOfWork is the sole synchronization point of the service: every
// correctness property (one pending transfer per animal, at-most-once claim
// completion) rests on the conditional writes its repositories expose, never
// on in-process locking.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: validation reads outside transactions
	Reads() CommandReads
}

type Tx interface {
	Animals() AnimalRepository
	Transfers() TransferRepository
	Notifications() NotificationRepository
	Users() UserRepository
}

type CommandReads interface {
	AnimalByID(ctx context.Context, id uuid.UUID) (*animal.Animal, error)
	TransferByToken(ctx context.Context, token transfer.ClaimToken) (*transfer.PendingTransfer, error)
	TransferByID(ctx context.Context, id uuid.UUID) (*transfer.PendingTransfer, error)
	OverduePendingTransfers(ctx context.Context, shelterID uuid.UUID, now time.Time) ([]*transfer.PendingTransfer, error)
	DirectoryEntryByEmail(ctx context.Context, email user.Email) (*DirectoryEntry, error)
	DirectoryEntryByID(ctx context.Context, id uuid.UUID) (*DirectoryEntry, error)
}

// DirectoryEntry is the write-side snapshot of an identity-directory row.
type DirectoryEntry struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	Role        string
}

type AnimalRepository interface {
	Create(ctx context.Context, a *animal.Animal) error

	// TransferOwnership is the immediate-mode write: owner set, shelter
	// cleared, status adopted, keyed on the shelter still owning a
	// not-yet-adopted, not-mid-transfer animal. False means the
	// precondition no longer held.
	TransferOwnership(ctx context.Context, animalID, shelterID, ownerUserID uuid.UUID) (bool, error)

	// HoldForTransfer flips adoption_status to pending_transfer without
	// touching ownership.
	HoldForTransfer(ctx context.Context, animalID, shelterID uuid.UUID) (bool, error)

	// Adopt finalizes a claim: conditional on the animal still being held
	// for transfer.
	Adopt(ctx context.Context, animalID, ownerUserID uuid.UUID) (bool, error)

	// ReleaseHold returns a held animal to the adoptable pool.
	ReleaseHold(ctx context.Context, animalID uuid.UUID) (bool, error)
}

type TransferRepository interface {
	Create(ctx context.Context, t *transfer.PendingTransfer) error

	// CompletePending is the at-most-once gate: it succeeds for exactly one
	// caller per record, conditional on status = pending and the expiry not
	// having passed.
	CompletePending(ctx context.Context, id, recipientUserID uuid.UUID, now time.Time) (bool, error)

	MarkCancelled(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	MarkExpired(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, userID uuid.UUID, notificationType string, payload []byte) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	// EnsureDirectoryEntry materializes a directory row for an account that
	// exists at the authentication layer but has no entry yet. Existing
	// entries are left untouched.
	EnsureDirectoryEntry(ctx context.Context, id uuid.UUID, email user.Email, displayName string) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
