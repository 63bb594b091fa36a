package commands

import (
	"context"

	"github.com/google/uuid"

	"pawhaven/internal/domain/animal"
	"pawhaven/internal/infra"
	"pawhaven/internal/pkg/errs"
	"pawhaven/internal/usecase/shared"
)

var (
	ErrInvalidAnimal = errs.New("invalid animal")
)

type CreateAnimalResult struct {
	AnimalID uuid.UUID
}

type AnimalCommands interface {
	Create(ctx context.Context, name, breed string, photoURL *string, shelterID uuid.UUID) (*CreateAnimalResult, error)
}

type animalCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewAnimalCommands(uow shared.UnitOfWork) AnimalCommands {
	return &animalCommandsImpl{uow: uow}
}

func (c *animalCommandsImpl) Create(
	ctx context.Context,
	name, breed string,
	photoURL *string,
	shelterID uuid.UUID,
) (*CreateAnimalResult, error) {
	a, err := animal.NewAnimal(name, breed, photoURL, shelterID)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAnimal)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Animals().Create(ctx, a); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrInvalidAnimal)
			}
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateAnimalResult{AnimalID: a.ID()}, nil
}
