package queries

import (
	"context"

	"github.com/google/uuid"

	"pawhaven/internal/infra"
	"pawhaven/internal/pkg/errs"
)

var (
	ErrAnimalViewNotFound = errs.New("animal not found")
)

type AnimalQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AnimalView, error)
	ListByShelter(ctx context.Context, shelterID uuid.UUID) ([]*AnimalView, error)
}

type AnimalReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AnimalView, error)
	FindByShelterID(ctx context.Context, shelterID uuid.UUID) ([]*AnimalView, error)
}

type animalQueriesImpl struct {
	store AnimalReadStore
}

func NewAnimalQueries(store AnimalReadStore) AnimalQueries {
	return &animalQueriesImpl{store: store}
}

func (q *animalQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AnimalView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAnimalViewNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *animalQueriesImpl) ListByShelter(ctx context.Context, shelterID uuid.UUID) ([]*AnimalView, error) {
	return q.store.FindByShelterID(ctx, shelterID)
}
