package readstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"pawhaven/internal/domain/transfer"
	"pawhaven/internal/domain/user"
	"pawhaven/internal/infra"
	"pawhaven/internal/infra/db"
	"pawhaven/internal/pkg/pgconv"
	"pawhaven/internal/usecase/queries"
)

type TransferReadStore struct {
	db db.DBTX
}

func NewTransferReadStore(dbtx db.DBTX) *TransferReadStore {
	return &TransferReadStore{db: dbtx}
}

const transferColumns = `
	id, animal_id, shelter_id, recipient_email, claim_token,
	animal_snapshot, status, recipient_user_id, created_at, expires_at, processed_at
`

type transferRow struct {
	ID              uuid.UUID
	AnimalID        uuid.UUID
	ShelterID       uuid.UUID
	RecipientEmail  string
	ClaimToken      string
	AnimalSnapshot  []byte
	Status          string
	RecipientUserID pgtype.UUID
	CreatedAt       pgtype.Timestamptz
	ExpiresAt       pgtype.Timestamptz
	ProcessedAt     pgtype.Timestamptz
}

func (s *TransferReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TransferView, error) {
	row, err := s.scanOne(ctx, `SELECT `+transferColumns+` FROM pending_transfers WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return toTransferView(row)
}

func (s *TransferReadStore) FindByShelterID(ctx context.Context, shelterID uuid.UUID) ([]*queries.TransferView, error) {
	query := `SELECT ` + transferColumns + ` FROM pending_transfers WHERE shelter_id = $1 ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, shelterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transfers by shelter", err)
	}
	defer rows.Close()

	var result []*queries.TransferView
	for rows.Next() {
		row, err := scanTransferRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan transfer row", err)
		}
		view, err := toTransferView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate transfer rows", err)
	}

	return result, nil
}

func (s *TransferReadStore) FindEntityByToken(ctx context.Context, token transfer.ClaimToken) (*transfer.PendingTransfer, error) {
	row, err := s.scanOne(ctx, `SELECT `+transferColumns+` FROM pending_transfers WHERE claim_token = $1`, token.Value())
	if err != nil {
		return nil, err
	}
	return toTransferEntity(row)
}

func (s *TransferReadStore) FindEntityByID(ctx context.Context, id uuid.UUID) (*transfer.PendingTransfer, error) {
	row, err := s.scanOne(ctx, `SELECT `+transferColumns+` FROM pending_transfers WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return toTransferEntity(row)
}

// FindOverdueEntities returns a shelter's pending transfers whose claim
// window has closed but whose expiry has not been persisted yet.
func (s *TransferReadStore) FindOverdueEntities(ctx context.Context, shelterID uuid.UUID, now time.Time) ([]*transfer.PendingTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM pending_transfers
		WHERE shelter_id = $1 AND status = 'pending' AND expires_at < $2`

	rows, err := s.db.Query(ctx, query, shelterID, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue transfers", err)
	}
	defer rows.Close()

	var result []*transfer.PendingTransfer
	for rows.Next() {
		row, err := scanTransferRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan transfer row", err)
		}
		entity, err := toTransferEntity(row)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate transfer rows", err)
	}

	return result, nil
}

func (s *TransferReadStore) scanOne(ctx context.Context, query string, args ...any) (*transferRow, error) {
	var row transferRow
	err := s.db.QueryRow(ctx, query, args...).Scan(
		&row.ID,
		&row.AnimalID,
		&row.ShelterID,
		&row.RecipientEmail,
		&row.ClaimToken,
		&row.AnimalSnapshot,
		&row.Status,
		&row.RecipientUserID,
		&row.CreatedAt,
		&row.ExpiresAt,
		&row.ProcessedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("transfer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find transfer", err)
	}
	return &row, nil
}

func scanTransferRow(rs rowScanner) (*transferRow, error) {
	var row transferRow
	err := rs.Scan(
		&row.ID,
		&row.AnimalID,
		&row.ShelterID,
		&row.RecipientEmail,
		&row.ClaimToken,
		&row.AnimalSnapshot,
		&row.Status,
		&row.RecipientUserID,
		&row.CreatedAt,
		&row.ExpiresAt,
		&row.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func toTransferView(row *transferRow) (*queries.TransferView, error) {
	var snapshot transfer.AnimalSnapshot
	if err := json.Unmarshal(row.AnimalSnapshot, &snapshot); err != nil {
		return nil, infra.WrapRepoErr("stored animal snapshot is invalid", err)
	}

	return &queries.TransferView{
		ID:             row.ID,
		ShelterID:      row.ShelterID,
		AnimalID:       row.AnimalID,
		AnimalName:     snapshot.Name,
		RecipientEmail: row.RecipientEmail,
		Status:         row.Status,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		ExpiresAt:      pgconv.TimeFromPgtype(row.ExpiresAt),
		ProcessedAt:    pgconv.TimePtrFromPgtype(row.ProcessedAt),
	}, nil
}

func toTransferEntity(row *transferRow) (*transfer.PendingTransfer, error) {
	email, err := user.NewEmail(row.RecipientEmail)
	if err != nil {
		return nil, infra.WrapRepoErr("stored recipient email is invalid", err)
	}

	token, err := transfer.ParseClaimToken(row.ClaimToken)
	if err != nil {
		return nil, infra.WrapRepoErr("stored claim token is invalid", err)
	}

	status, err := transfer.NewStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored transfer status is invalid", err)
	}

	var snapshot transfer.AnimalSnapshot
	if err := json.Unmarshal(row.AnimalSnapshot, &snapshot); err != nil {
		return nil, infra.WrapRepoErr("stored animal snapshot is invalid", err)
	}

	return transfer.ReconstructPendingTransfer(
		row.ID,
		row.AnimalID,
		row.ShelterID,
		email,
		token,
		snapshot,
		status,
		pgconv.UUIDPtrFromPgtype(row.RecipientUserID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimePtrFromPgtype(row.ProcessedAt),
	), nil
}
