//go:build unit

package animal_test

import (
	"testing"

	"pawhaven/internal/domain/animal"
	"pawhaven/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnimal(t *testing.T) {
	shelterID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		a, err := animal.NewAnimal("  Biscuit  ", " Shiba Inu ", nil, shelterID)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, a.ID())
		assert.Equal(t, "Biscuit", a.Name())
		assert.Equal(t, "Shiba Inu", a.Breed())
		require.NotNil(t, a.ShelterID())
		assert.Equal(t, shelterID, *a.ShelterID())
		assert.Nil(t, a.OwnerUserID())
		assert.Equal(t, animal.StatusAvailable, a.AdoptionStatus())
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := animal.NewAnimal("   ", "Shiba Inu", nil, shelterID)
		assert.ErrorIs(t, err, animal.ErrEmptyName)
	})
}

func TestReconstructAnimal(t *testing.T) {
	t.Run("exactly one owner side must be set", func(t *testing.T) {
		both := uuid.New()
		cases := []struct {
			name   string
			mutate func(*builder.AnimalBuilder)
			errIs  error
		}{
			{
				name:   "shelter-owned",
				mutate: func(b *builder.AnimalBuilder) {},
			},
			{
				name:   "individual-owned",
				mutate: func(b *builder.AnimalBuilder) { b.WithOwner(both).WithStatus("adopted") },
			},
			{
				name: "both set",
				mutate: func(b *builder.AnimalBuilder) {
					b.OwnerUserID = &both
				},
				errIs: animal.ErrOwnershipUndefined,
			},
			{
				name: "neither set",
				mutate: func(b *builder.AnimalBuilder) {
					b.ShelterID = nil
					b.OwnerUserID = nil
				},
				errIs: animal.ErrOwnershipUndefined,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := builder.NewAnimalBuilder().With(tc.mutate).BuildDomain()
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})
}

func TestTransferable(t *testing.T) {
	cases := []struct {
		name   string
		status string
		errIs  error
	}{
		{name: "available", status: "available"},
		{name: "pending adoption still transferable", status: "pending"},
		{name: "mid-transfer", status: "pending_transfer", errIs: animal.ErrTransferInFlight},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := builder.NewAnimalBuilder().WithStatus(tc.status).BuildDomain()
			require.NoError(t, err)

			err = a.Transferable(*a.ShelterID())
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("adopted animals are no longer shelter-owned", func(t *testing.T) {
		a, err := builder.NewAnimalBuilder().WithStatus("adopted").WithOwner(uuid.New()).BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, a.Transferable(uuid.New()), animal.ErrNotShelterOwned)
	})

	t.Run("wrong shelter", func(t *testing.T) {
		a, err := builder.NewAnimalBuilder().BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, a.Transferable(uuid.New()), animal.ErrNotShelterOwned)
	})
}

func TestTransferLifecycle(t *testing.T) {
	t.Run("deferred hold keeps the shelter as owner", func(t *testing.T) {
		a, err := builder.NewAnimalBuilder().BuildDomain()
		require.NoError(t, err)
		shelterID := *a.ShelterID()

		require.NoError(t, a.BeginDeferredTransfer(shelterID))
		assert.Equal(t, animal.StatusPendingTransfer, a.AdoptionStatus())
		require.NotNil(t, a.ShelterID())
		assert.Nil(t, a.OwnerUserID())

		// A second transfer cannot start while one is in flight.
		assert.ErrorIs(t, a.BeginDeferredTransfer(shelterID), animal.ErrTransferInFlight)
	})

	t.Run("completing moves ownership to the individual", func(t *testing.T) {
		a, err := builder.NewAnimalBuilder().WithStatus("pending_transfer").BuildDomain()
		require.NoError(t, err)

		ownerID := uuid.New()
		require.NoError(t, a.CompleteTransfer(ownerID))
		assert.Equal(t, animal.StatusAdopted, a.AdoptionStatus())
		assert.Nil(t, a.ShelterID())
		require.NotNil(t, a.OwnerUserID())
		assert.Equal(t, ownerID, *a.OwnerUserID())

		assert.ErrorIs(t, a.CompleteTransfer(uuid.New()), animal.ErrAlreadyAdopted)
	})

	t.Run("release returns a held animal to the pool", func(t *testing.T) {
		a, err := builder.NewAnimalBuilder().WithStatus("pending_transfer").BuildDomain()
		require.NoError(t, err)

		require.NoError(t, a.ReleaseTransfer())
		assert.Equal(t, animal.StatusAvailable, a.AdoptionStatus())

		assert.ErrorIs(t, a.ReleaseTransfer(), animal.ErrInvalidStatus)
	})
}
