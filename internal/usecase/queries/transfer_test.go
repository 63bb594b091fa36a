//go:build unit

package queries_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pawhaven/internal/domain/transfer"
	"pawhaven/internal/infra"
	"pawhaven/internal/pkg/clock"
	"pawhaven/internal/usecase/queries"
	"pawhaven/tests/common/builder"
	queriesmock "pawhaven/tests/mock/queries"
)

func newTransferQueries(t *testing.T) (queries.TransferQueries, *queriesmock.MockTransferReadStore, *clock.MockClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockTransferReadStore(ctrl)
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return queries.NewTransferQueries(store, clk), store, clk
}

func TestTransferQueries_GetByID(t *testing.T) {
	t.Run("returns the shelter's transfer", func(t *testing.T) {
		q, store, _ := newTransferQueries(t)
		view := builder.NewTransferBuilder().BuildView()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.GetByID(t.Context(), view.ShelterID, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)
		assert.Equal(t, "pending", got.Status)
	})

	t.Run("another shelter's transfer reads as absent", func(t *testing.T) {
		q, store, _ := newTransferQueries(t)
		view := builder.NewTransferBuilder().BuildView()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := q.GetByID(t.Context(), uuid.New(), view.ID)
		assert.ErrorIs(t, err, queries.ErrTransferViewNotFound)
	})

	t.Run("missing row", func(t *testing.T) {
		q, store, _ := newTransferQueries(t)
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("transfer not found", nil, infra.KindNotFound))

		_, err := q.GetByID(t.Context(), uuid.New(), id)
		assert.ErrorIs(t, err, queries.ErrTransferViewNotFound)
	})

	t.Run("overdue pending row displays as expired", func(t *testing.T) {
		q, store, clk := newTransferQueries(t)
		view := builder.NewTransferBuilder().BuildView()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		clk.Set(view.ExpiresAt.Add(time.Minute))

		got, err := q.GetByID(t.Context(), view.ShelterID, view.ID)
		require.NoError(t, err)
		assert.Equal(t, "expired", got.Status)
	})

	t.Run("pending row exactly at the deadline stays pending", func(t *testing.T) {
		q, store, clk := newTransferQueries(t)
		view := builder.NewTransferBuilder().BuildView()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		clk.Set(view.ExpiresAt)

		got, err := q.GetByID(t.Context(), view.ShelterID, view.ID)
		require.NoError(t, err)
		assert.Equal(t, "pending", got.Status)
	})

	t.Run("terminal status is never rewritten", func(t *testing.T) {
		q, store, clk := newTransferQueries(t)
		view := builder.NewTransferBuilder().WithStatus("completed").BuildView()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		clk.Set(view.ExpiresAt.Add(time.Hour))

		got, err := q.GetByID(t.Context(), view.ShelterID, view.ID)
		require.NoError(t, err)
		assert.Equal(t, "completed", got.Status)
	})
}

func TestTransferQueries_ListByShelter(t *testing.T) {
	t.Run("applies display expiry per row", func(t *testing.T) {
		q, store, clk := newTransferQueries(t)
		shelterID := uuid.New()

		overdue := builder.NewTransferBuilder().BuildView()
		overdue.ShelterID = shelterID
		fresh := builder.NewTransferBuilder().
			WithExpiresAt(overdue.ExpiresAt.Add(transfer.TTL)).
			BuildView()
		fresh.ShelterID = shelterID
		cancelled := builder.NewTransferBuilder().WithStatus("cancelled").BuildView()
		cancelled.ShelterID = shelterID

		store.EXPECT().FindByShelterID(gomock.Any(), shelterID).
			Return([]*queries.TransferView{overdue, fresh, cancelled}, nil)

		clk.Set(overdue.ExpiresAt.Add(time.Minute))

		got, err := q.ListByShelter(t.Context(), shelterID)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "expired", got[0].Status)
		assert.Equal(t, "pending", got[1].Status)
		assert.Equal(t, "cancelled", got[2].Status)
	})

	t.Run("empty dashboard", func(t *testing.T) {
		q, store, _ := newTransferQueries(t)
		shelterID := uuid.New()
		store.EXPECT().FindByShelterID(gomock.Any(), shelterID).Return(nil, nil)

		got, err := q.ListByShelter(t.Context(), shelterID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
