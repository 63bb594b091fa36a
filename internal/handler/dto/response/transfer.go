package response

import (
	"time"

	"github.com/google/uuid"

	"pawhaven/internal/usecase/commands"
	"pawhaven/internal/usecase/queries"
)

type TransferInitiatedResponse struct {
	Mode            string     `json:"mode"`
	AnimalID        uuid.UUID  `json:"animalId"`
	RecipientUserID *uuid.UUID `json:"recipientUserId,omitempty"`
	TransferID      *uuid.UUID `json:"transferId,omitempty"`
	ClaimToken      string     `json:"claimToken,omitempty"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
}

func FromTransferOutcome(outcome *commands.TransferOutcome) *TransferInitiatedResponse {
	return &TransferInitiatedResponse{
		Mode:            string(outcome.Mode),
		AnimalID:        outcome.AnimalID,
		RecipientUserID: outcome.RecipientUserID,
		TransferID:      outcome.TransferID,
		ClaimToken:      outcome.ClaimToken,
		ExpiresAt:       outcome.ExpiresAt,
	}
}

type ClaimResponse struct {
	TransferID  uuid.UUID `json:"transferId"`
	AnimalID    uuid.UUID `json:"animalId"`
	AnimalName  string    `json:"animalName"`
	AnimalBreed string    `json:"animalBreed"`
	PhotoURL    *string   `json:"photoUrl,omitempty"`
	OwnerUserID uuid.UUID `json:"ownerUserId"`
	CompletedAt time.Time `json:"completedAt"`
}

func FromClaimOutcome(outcome *commands.ClaimOutcome) *ClaimResponse {
	return &ClaimResponse{
		TransferID:  outcome.TransferID,
		AnimalID:    outcome.Animal.AnimalID,
		AnimalName:  outcome.Animal.Name,
		AnimalBreed: outcome.Animal.Breed,
		PhotoURL:    outcome.Animal.PhotoURL,
		OwnerUserID: outcome.OwnerUserID,
		CompletedAt: outcome.CompletedAt,
	}
}

type TransferResponse struct {
	ID             uuid.UUID  `json:"id"`
	AnimalID       uuid.UUID  `json:"animalId"`
	AnimalName     string     `json:"animalName"`
	RecipientEmail string     `json:"recipientEmail"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	ExpiresAt      time.Time  `json:"expiresAt"`
	ProcessedAt    *time.Time `json:"processedAt,omitempty"`
}

func FromTransferView(view *queries.TransferView) *TransferResponse {
	return &TransferResponse{
		ID:             view.ID,
		AnimalID:       view.AnimalID,
		AnimalName:     view.AnimalName,
		RecipientEmail: view.RecipientEmail,
		Status:         view.Status,
		CreatedAt:      view.CreatedAt,
		ExpiresAt:      view.ExpiresAt,
		ProcessedAt:    view.ProcessedAt,
	}
}
