package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"pawhaven/internal/domain/animal"
	"pawhaven/internal/infra"
	"pawhaven/internal/infra/db"
	"pawhaven/internal/pkg/pgconv"
	"pawhaven/internal/usecase/queries"
)

type AnimalReadStore struct {
	db db.DBTX
}

func NewAnimalReadStore(dbtx db.DBTX) *AnimalReadStore {
	return &AnimalReadStore{db: dbtx}
}

const animalColumns = `
	id, name, breed, photo_url, shelter_id, owner_user_id,
	adoption_status, created_at, updated_at
`

type animalRow struct {
	ID             uuid.UUID
	Name           string
	Breed          string
	PhotoURL       pgtype.Text
	ShelterID      pgtype.UUID
	OwnerUserID    pgtype.UUID
	AdoptionStatus string
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

func (s *AnimalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AnimalView, error) {
	row, err := s.scanOne(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return toAnimalView(row), nil
}

func (s *AnimalReadStore) FindByShelterID(ctx context.Context, shelterID uuid.UUID) ([]*queries.AnimalView, error) {
	query := `SELECT ` + animalColumns + ` FROM animals WHERE shelter_id = $1 ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, shelterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list animals by shelter", err)
	}
	defer rows.Close()

	var result []*queries.AnimalView
	for rows.Next() {
		row, err := scanAnimalRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan animal row", err)
		}
		result = append(result, toAnimalView(row))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate animal rows", err)
	}

	return result, nil
}

// FindEntityByID reconstructs the domain entity for the write side.
func (s *AnimalReadStore) FindEntityByID(ctx context.Context, id uuid.UUID) (*animal.Animal, error) {
	row, err := s.scanOne(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	status, err := animal.NewAdoptionStatus(row.AdoptionStatus)
	if err != nil {
		return nil, infra.WrapRepoErr("stored adoption status is invalid", err)
	}

	a, err := animal.ReconstructAnimal(
		row.ID,
		row.Name,
		row.Breed,
		pgconv.StringPtrFromPgtype(row.PhotoURL),
		pgconv.UUIDPtrFromPgtype(row.ShelterID),
		pgconv.UUIDPtrFromPgtype(row.OwnerUserID),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("stored animal violates ownership invariant", err)
	}

	return a, nil
}

func (s *AnimalReadStore) scanOne(ctx context.Context, query string, args ...any) (*animalRow, error) {
	var row animalRow
	err := s.db.QueryRow(ctx, query, args...).Scan(
		&row.ID,
		&row.Name,
		&row.Breed,
		&row.PhotoURL,
		&row.ShelterID,
		&row.OwnerUserID,
		&row.AdoptionStatus,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("animal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find animal", err)
	}
	return &row, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimalRow(rs rowScanner) (*animalRow, error) {
	var row animalRow
	err := rs.Scan(
		&row.ID,
		&row.Name,
		&row.Breed,
		&row.PhotoURL,
		&row.ShelterID,
		&row.OwnerUserID,
		&row.AdoptionStatus,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func toAnimalView(row *animalRow) *queries.AnimalView {
	return &queries.AnimalView{
		ID:             row.ID,
		Name:           row.Name,
		Breed:          row.Breed,
		PhotoURL:       pgconv.StringPtrFromPgtype(row.PhotoURL),
		ShelterID:      pgconv.UUIDPtrFromPgtype(row.ShelterID),
		OwnerUserID:    pgconv.UUIDPtrFromPgtype(row.OwnerUserID),
		AdoptionStatus: row.AdoptionStatus,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
