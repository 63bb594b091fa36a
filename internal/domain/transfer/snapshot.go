package transfer

import (
	"github.com/google/uuid"

	"pawhaven/internal/domain/animal"
)

// AnimalSnapshot is the denormalized copy of the animal's public attributes
// taken at initiation time. Claim screens render from it without touching the
// animal record again.
type AnimalSnapshot struct {
	AnimalID uuid.UUID `json:"animal_id"`
	Name     string    `json:"name"`
	Breed    string    `json:"breed"`
	PhotoURL *string   `json:"photo_url,omitempty"`
}

func SnapshotOf(a *animal.Animal) AnimalSnapshot {
	return AnimalSnapshot{
		AnimalID: a.ID(),
		Name:     a.Name(),
		Breed:    a.Breed(),
		PhotoURL: a.PhotoURL(),
	}
}
