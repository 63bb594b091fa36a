package queries

import (
	"context"

	"github.com/google/uuid"

	"pawhaven/internal/infra"
	"pawhaven/internal/pkg/clock"
	"pawhaven/internal/pkg/errs"
)

var (
	ErrTransferViewNotFound = errs.New("transfer not found")
)

type TransferQueries interface {
	GetByID(ctx context.Context, shelterID, id uuid.UUID) (*TransferView, error)
	ListByShelter(ctx context.Context, shelterID uuid.UUID) ([]*TransferView, error)
}

type TransferReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TransferView, error)
	FindByShelterID(ctx context.Context, shelterID uuid.UUID) ([]*TransferView, error)
}

type transferQueriesImpl struct {
	store TransferReadStore
	clock clock.Clock
}

func NewTransferQueries(store TransferReadStore, clk clock.Clock) TransferQueries {
	return &transferQueriesImpl{store: store, clock: clk}
}

func (q *transferQueriesImpl) GetByID(ctx context.Context, shelterID, id uuid.UUID) (*TransferView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTransferViewNotFound
		}
		return nil, err
	}
	if view == nil || view.ShelterID != shelterID {
		// Another shelter's transfer is indistinguishable from absence.
		return nil, ErrTransferViewNotFound
	}
	q.applyDisplayExpiry(view)
	return view, nil
}

func (q *transferQueriesImpl) ListByShelter(ctx context.Context, shelterID uuid.UUID) ([]*TransferView, error) {
	views, err := q.store.FindByShelterID(ctx, shelterID)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		q.applyDisplayExpiry(v)
	}
	return views, nil
}

// applyDisplayExpiry keeps displayed state ahead of persisted state: an
// overdue pending row reads as expired even before a write-capable access
// persists the flip.
func (q *transferQueriesImpl) applyDisplayExpiry(v *TransferView) {
	if v.Status == "pending" && q.clock.Now().After(v.ExpiresAt) {
		v.Status = "expired"
	}
}
