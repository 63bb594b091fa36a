package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AnimalView struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Breed          string     `json:"breed"`
	PhotoURL       *string    `json:"photo_url,omitempty"`
	ShelterID      *uuid.UUID `json:"shelter_id,omitempty"`
	OwnerUserID    *uuid.UUID `json:"owner_user_id,omitempty"`
	AdoptionStatus string     `json:"adoption_status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type TransferView struct {
	ID             uuid.UUID  `json:"id"`
	ShelterID      uuid.UUID  `json:"-"`
	AnimalID       uuid.UUID  `json:"animal_id"`
	AnimalName     string     `json:"animal_name"`
	RecipientEmail string     `json:"recipient_email"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	ExpiresAt      time.Time  `json:"expires_at"`
	ProcessedAt    *time.Time `json:"processed_at,omitempty"`
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Payload   []byte    `json:"payload"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
}

// AuthUserView carries the password hash and never leaves the usecase layer.
type AuthUserView struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	DisplayName  string
	Role         string
	IsActive     bool
}
