//go:build unit || e2e

package builder

import (
	"time"

	"pawhaven/internal/domain/animal"
	reqdto "pawhaven/internal/handler/dto/request"
	"pawhaven/internal/usecase/queries"

	"github.com/google/uuid"
)

type AnimalBuilder struct {
	ID             uuid.UUID
	Name           string
	Breed          string
	PhotoURL       *string
	ShelterID      *uuid.UUID
	OwnerUserID    *uuid.UUID
	AdoptionStatus string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewAnimalBuilder() *AnimalBuilder {
	shelterID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &AnimalBuilder{
		ID:             uuid.New(),
		Name:           "Biscuit",
		Breed:          "Shiba Inu",
		ShelterID:      &shelterID,
		AdoptionStatus: "available",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (a *AnimalBuilder) WithName(name string) *AnimalBuilder {
	a.Name = name
	return a
}

func (a *AnimalBuilder) WithShelterID(id uuid.UUID) *AnimalBuilder {
	a.ShelterID = &id
	return a
}

func (a *AnimalBuilder) WithOwner(userID uuid.UUID) *AnimalBuilder {
	a.ShelterID = nil
	a.OwnerUserID = &userID
	return a
}

func (a *AnimalBuilder) WithStatus(status string) *AnimalBuilder {
	a.AdoptionStatus = status
	return a
}

func (a *AnimalBuilder) With(mutate func(*AnimalBuilder)) *AnimalBuilder {
	mutate(a)
	return a
}

// BuildDomain reconstructs the entity as the readstore would, so tests can
// start from any ownership and status combination.
func (a *AnimalBuilder) BuildDomain() (*animal.Animal, error) {
	status, err := animal.NewAdoptionStatus(a.AdoptionStatus)
	if err != nil {
		return nil, err
	}
	return animal.ReconstructAnimal(
		a.ID, a.Name, a.Breed, a.PhotoURL,
		a.ShelterID, a.OwnerUserID,
		status, a.CreatedAt, a.UpdatedAt,
	)
}

func (a *AnimalBuilder) BuildView() *queries.AnimalView {
	return &queries.AnimalView{
		ID:             a.ID,
		Name:           a.Name,
		Breed:          a.Breed,
		PhotoURL:       a.PhotoURL,
		ShelterID:      a.ShelterID,
		OwnerUserID:    a.OwnerUserID,
		AdoptionStatus: a.AdoptionStatus,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func (a *AnimalBuilder) BuildCreateRequestDTO() reqdto.CreateAnimalRequest {
	return reqdto.CreateAnimalRequest{
		Name:     a.Name,
		Breed:    a.Breed,
		PhotoURL: a.PhotoURL,
	}
}
