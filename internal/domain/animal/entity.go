package animal

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("animal name cannot be empty")
	ErrInvalidStatus      = errors.New("invalid adoption status")
	ErrAlreadyAdopted     = errors.New("animal is already adopted")
	ErrTransferInFlight   = errors.New("animal has a transfer in flight")
	ErrNotShelterOwned    = errors.New("animal is not owned by a shelter")
	ErrOwnershipUndefined = errors.New("exactly one of shelter or owner must be set")
)

// Animal is the transferable resource. Ownership is always defined: exactly
// one of shelterID / ownerUserID is set, even while a deferred transfer is in
// flight (the shelter stays owner of record until the claim completes).
type Animal struct {
	id             uuid.UUID
	name           string
	breed          string
	photoURL       *string
	shelterID      *uuid.UUID
	ownerUserID    *uuid.UUID
	adoptionStatus AdoptionStatus
	createdAt      time.Time
	updatedAt      time.Time
}

func NewAnimal(name, breed string, photoURL *string, shelterID uuid.UUID) (*Animal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Animal{
		id:             uuid.New(),
		name:           name,
		breed:          strings.TrimSpace(breed),
		photoURL:       photoURL,
		shelterID:      &shelterID,
		adoptionStatus: StatusAvailable,
	}, nil
}

func ReconstructAnimal(
	id uuid.UUID,
	name, breed string,
	photoURL *string,
	shelterID, ownerUserID *uuid.UUID,
	adoptionStatus AdoptionStatus,
	createdAt, updatedAt time.Time,
) (*Animal, error) {
	a := &Animal{
		id:             id,
		name:           name,
		breed:          breed,
		photoURL:       photoURL,
		shelterID:      shelterID,
		ownerUserID:    ownerUserID,
		adoptionStatus: adoptionStatus,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
	if err := a.checkOwnership(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Animal) checkOwnership() error {
	if (a.shelterID == nil) == (a.ownerUserID == nil) {
		return ErrOwnershipUndefined
	}
	return nil
}

// Transferable reports whether a shelter-side transfer may start.
func (a *Animal) Transferable(shelterID uuid.UUID) error {
	if a.shelterID == nil || *a.shelterID != shelterID {
		return ErrNotShelterOwned
	}
	switch a.adoptionStatus {
	case StatusAdopted:
		return ErrAlreadyAdopted
	case StatusPendingTransfer:
		return ErrTransferInFlight
	}
	return nil
}

// BeginDeferredTransfer flips the display status only; the shelter remains
// the owner of record until the claim completes.
func (a *Animal) BeginDeferredTransfer(shelterID uuid.UUID) error {
	if err := a.Transferable(shelterID); err != nil {
		return err
	}
	a.adoptionStatus = StatusPendingTransfer
	return nil
}

// CompleteTransfer moves ownership to the individual account.
func (a *Animal) CompleteTransfer(ownerUserID uuid.UUID) error {
	if a.adoptionStatus == StatusAdopted {
		return ErrAlreadyAdopted
	}
	a.ownerUserID = &ownerUserID
	a.shelterID = nil
	a.adoptionStatus = StatusAdopted
	return a.checkOwnership()
}

// ReleaseTransfer returns an animal to the adoptable pool after its deferred
// transfer expired or was cancelled.
func (a *Animal) ReleaseTransfer() error {
	if a.adoptionStatus != StatusPendingTransfer {
		return ErrInvalidStatus
	}
	a.adoptionStatus = StatusAvailable
	return nil
}

func (a *Animal) ID() uuid.UUID                  { return a.id }
func (a *Animal) Name() string                   { return a.name }
func (a *Animal) Breed() string                  { return a.breed }
func (a *Animal) PhotoURL() *string              { return a.photoURL }
func (a *Animal) ShelterID() *uuid.UUID          { return a.shelterID }
func (a *Animal) OwnerUserID() *uuid.UUID        { return a.ownerUserID }
func (a *Animal) AdoptionStatus() AdoptionStatus { return a.adoptionStatus }
func (a *Animal) CreatedAt() time.Time           { return a.createdAt }
func (a *Animal) UpdatedAt() time.Time           { return a.updatedAt }
