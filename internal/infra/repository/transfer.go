package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"pawhaven/internal/domain/transfer"
	"pawhaven/internal/infra"
	"pawhaven/internal/infra/db"
	"pawhaven/internal/pkg/pgconv"
)

// onePendingPerAnimalIndex backs the invariant that an animal carries at most
// one live claim. Violating it means a concurrent Initiate won.
const onePendingPerAnimalIndex = "pending_transfers_one_pending_per_animal"

type TransferRepository struct {
	db db.DBTX
}

func NewTransferRepository(dbtx db.DBTX) *TransferRepository {
	return &TransferRepository{db: dbtx}
}

func (r *TransferRepository) Create(ctx context.Context, t *transfer.PendingTransfer) error {
	snapshot, err := json.Marshal(t.Snapshot())
	if err != nil {
		return infra.WrapRepoErr("failed to marshal animal snapshot", err)
	}

	const query = `
		INSERT INTO pending_transfers
			(id, animal_id, shelter_id, recipient_email, claim_token,
			 animal_snapshot, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.db.Exec(ctx, query,
		t.ID(),
		t.AnimalID(),
		t.ShelterID(),
		t.RecipientEmail().Value(),
		t.ClaimToken().Value(),
		snapshot,
		t.Status().String(),
		pgconv.TimeToPgtype(t.CreatedAt()),
		pgconv.TimeToPgtype(t.ExpiresAt()),
	)
	if err != nil {
		kind := classifyConstraint(err)
		if kind == infra.KindDuplicateKey && constraintName(err) == onePendingPerAnimalIndex {
			kind = infra.KindConflict
		}
		return infra.WrapRepoErr("failed to create pending transfer", err, kind)
	}

	return nil
}

// CompletePending admits exactly one caller per record: the flip applies only
// while the row is still pending and inside its claim window.
func (r *TransferRepository) CompletePending(ctx context.Context, id, recipientUserID uuid.UUID, now time.Time) (bool, error) {
	const query = `
		UPDATE pending_transfers
		SET status = 'completed',
		    recipient_user_id = $2,
		    processed_at = $3
		WHERE id = $1
		  AND status = 'pending'
		  AND expires_at >= $3
	`

	tag, err := r.db.Exec(ctx, query, id, recipientUserID, pgconv.TimeToPgtype(now))
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete pending transfer", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *TransferRepository) MarkCancelled(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	return r.markTerminal(ctx, id, transfer.StatusCancelled, now)
}

func (r *TransferRepository) MarkExpired(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	return r.markTerminal(ctx, id, transfer.StatusExpired, now)
}

func (r *TransferRepository) markTerminal(ctx context.Context, id uuid.UUID, status transfer.Status, now time.Time) (bool, error) {
	const query = `
		UPDATE pending_transfers
		SET status = $2,
		    processed_at = $3
		WHERE id = $1
		  AND status = 'pending'
	`

	tag, err := r.db.Exec(ctx, query, id, status.String(), pgconv.TimeToPgtype(now))
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark transfer "+status.String(), err)
	}

	return tag.RowsAffected() > 0, nil
}
