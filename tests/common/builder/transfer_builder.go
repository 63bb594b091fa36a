//go:build unit || e2e

package builder

import (
	"time"

	"pawhaven/internal/domain/transfer"
	"pawhaven/internal/domain/user"
	"pawhaven/internal/usecase/queries"

	"github.com/google/uuid"
)

type TransferBuilder struct {
	ID              uuid.UUID
	AnimalID        uuid.UUID
	ShelterID       uuid.UUID
	RecipientEmail  string
	ClaimToken      string
	AnimalName      string
	AnimalBreed     string
	AnimalPhotoURL  *string
	Status          string
	RecipientUserID *uuid.UUID
	CreatedAt       time.Time
	ExpiresAt       time.Time
	ProcessedAt     *time.Time
}

func NewTransferBuilder() *TransferBuilder {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &TransferBuilder{
		ID:             uuid.New(),
		AnimalID:       uuid.New(),
		ShelterID:      uuid.New(),
		RecipientEmail: "adopter@example.com",
		ClaimToken:     "ABCDEFG23456",
		AnimalName:     "Biscuit",
		AnimalBreed:    "Shiba Inu",
		Status:         "pending",
		CreatedAt:      created,
		ExpiresAt:      created.Add(transfer.TTL),
	}
}

func (b *TransferBuilder) WithStatus(status string) *TransferBuilder {
	b.Status = status
	return b
}

func (b *TransferBuilder) WithRecipientEmail(email string) *TransferBuilder {
	b.RecipientEmail = email
	return b
}

func (b *TransferBuilder) WithExpiresAt(t time.Time) *TransferBuilder {
	b.ExpiresAt = t
	return b
}

func (b *TransferBuilder) With(mutate func(*TransferBuilder)) *TransferBuilder {
	mutate(b)
	return b
}

func (b *TransferBuilder) BuildDomain() (*transfer.PendingTransfer, error) {
	email, err := user.NewEmail(b.RecipientEmail)
	if err != nil {
		return nil, err
	}
	token, err := transfer.ParseClaimToken(b.ClaimToken)
	if err != nil {
		return nil, err
	}
	status, err := transfer.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}

	snapshot := transfer.AnimalSnapshot{
		AnimalID: b.AnimalID,
		Name:     b.AnimalName,
		Breed:    b.AnimalBreed,
		PhotoURL: b.AnimalPhotoURL,
	}
	return transfer.ReconstructPendingTransfer(
		b.ID, b.AnimalID, b.ShelterID,
		email, token, snapshot, status,
		b.RecipientUserID, b.CreatedAt, b.ExpiresAt, b.ProcessedAt,
	), nil
}

func (b *TransferBuilder) BuildView() *queries.TransferView {
	return &queries.TransferView{
		ID:             b.ID,
		ShelterID:      b.ShelterID,
		AnimalID:       b.AnimalID,
		AnimalName:     b.AnimalName,
		RecipientEmail: b.RecipientEmail,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
		ExpiresAt:      b.ExpiresAt,
		ProcessedAt:    b.ProcessedAt,
	}
}
