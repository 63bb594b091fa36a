package response

import (
	"time"

	"github.com/google/uuid"

	"pawhaven/internal/usecase/queries"
)

type AnimalResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Breed          string     `json:"breed"`
	PhotoURL       *string    `json:"photoUrl,omitempty"`
	ShelterID      *uuid.UUID `json:"shelterId,omitempty"`
	OwnerUserID    *uuid.UUID `json:"ownerUserId,omitempty"`
	AdoptionStatus string     `json:"adoptionStatus"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func FromAnimalView(view *queries.AnimalView) *AnimalResponse {
	return &AnimalResponse{
		ID:             view.ID,
		Name:           view.Name,
		Breed:          view.Breed,
		PhotoURL:       view.PhotoURL,
		ShelterID:      view.ShelterID,
		OwnerUserID:    view.OwnerUserID,
		AdoptionStatus: view.AdoptionStatus,
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
	}
}

type CreateAnimalResponse struct {
	ID uuid.UUID `json:"id"`
}
