package repository

import (
	"context"

	"github.com/google/uuid"

	"pawhaven/internal/domain/animal"
	"pawhaven/internal/infra"
	"pawhaven/internal/infra/db"
	"pawhaven/internal/pkg/pgconv"
)

type AnimalRepository struct {
	db db.DBTX
}

func NewAnimalRepository(dbtx db.DBTX) *AnimalRepository {
	return &AnimalRepository{db: dbtx}
}

func (r *AnimalRepository) Create(ctx context.Context, a *animal.Animal) error {
	const query = `
		INSERT INTO animals (id, name, breed, photo_url, shelter_id, owner_user_id, adoption_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		a.ID(),
		a.Name(),
		a.Breed(),
		pgconv.StringPtrToPgtype(a.PhotoURL()),
		pgconv.UUIDPtrToPgtype(a.ShelterID()),
		pgconv.UUIDPtrToPgtype(a.OwnerUserID()),
		a.AdoptionStatus().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create animal", err, classifyConstraint(err))
	}

	return nil
}

// TransferOwnership performs the immediate-mode hand-off. The WHERE clause is
// the whole concurrency story: the write applies only while the shelter still
// owns an animal with no claim in flight.
func (r *AnimalRepository) TransferOwnership(ctx context.Context, animalID, shelterID, ownerUserID uuid.UUID) (bool, error) {
	const query = `
		UPDATE animals
		SET owner_user_id = $3,
		    shelter_id = NULL,
		    adoption_status = 'adopted',
		    updated_at = now()
		WHERE id = $1
		  AND shelter_id = $2
		  AND adoption_status IN ('available', 'pending')
	`

	tag, err := r.db.Exec(ctx, query, animalID, shelterID, ownerUserID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to transfer animal ownership", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *AnimalRepository) HoldForTransfer(ctx context.Context, animalID, shelterID uuid.UUID) (bool, error) {
	const query = `
		UPDATE animals
		SET adoption_status = 'pending_transfer',
		    updated_at = now()
		WHERE id = $1
		  AND shelter_id = $2
		  AND adoption_status IN ('available', 'pending')
	`

	tag, err := r.db.Exec(ctx, query, animalID, shelterID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to hold animal for transfer", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *AnimalRepository) Adopt(ctx context.Context, animalID, ownerUserID uuid.UUID) (bool, error) {
	const query = `
		UPDATE animals
		SET owner_user_id = $2,
		    shelter_id = NULL,
		    adoption_status = 'adopted',
		    updated_at = now()
		WHERE id = $1
		  AND adoption_status = 'pending_transfer'
	`

	tag, err := r.db.Exec(ctx, query, animalID, ownerUserID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to adopt animal", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *AnimalRepository) ReleaseHold(ctx context.Context, animalID uuid.UUID) (bool, error) {
	const query = `
		UPDATE animals
		SET adoption_status = 'available',
		    updated_at = now()
		WHERE id = $1
		  AND adoption_status = 'pending_transfer'
	`

	tag, err := r.db.Exec(ctx, query, animalID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to release animal hold", err)
	}

	return tag.RowsAffected() > 0, nil
}
