//go:build unit

package commands_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawhaven/internal/domain/animal"
	"pawhaven/internal/domain/transfer"
	"pawhaven/internal/domain/user"
	"pawhaven/internal/infra"
	"pawhaven/internal/pkg/clock"
	"pawhaven/internal/usecase/commands"
	"pawhaven/internal/usecase/shared"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// fakeStore is an in-memory stand-in for the persistence layer. Within holds
// the store lock for the whole callback, so transactions are serialized and
// the conditional writes behave like their SQL counterparts.
type fakeStore struct {
	mu            sync.Mutex
	animals       map[uuid.UUID]*animalRow
	transfers     map[uuid.UUID]*transferRow
	directory     map[uuid.UUID]shared.DirectoryEntry
	notifications []notificationRow
}

type animalRow struct {
	id          uuid.UUID
	name        string
	breed       string
	photoURL    *string
	shelterID   *uuid.UUID
	ownerUserID *uuid.UUID
	status      animal.AdoptionStatus
}

type transferRow struct {
	id              uuid.UUID
	animalID        uuid.UUID
	shelterID       uuid.UUID
	recipientEmail  user.Email
	claimToken      transfer.ClaimToken
	snapshot        transfer.AnimalSnapshot
	status          transfer.Status
	recipientUserID *uuid.UUID
	createdAt       time.Time
	expiresAt       time.Time
	processedAt     *time.Time
}

type notificationRow struct {
	userID           uuid.UUID
	notificationType string
	payload          []byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		animals:   make(map[uuid.UUID]*animalRow),
		transfers: make(map[uuid.UUID]*transferRow),
		directory: make(map[uuid.UUID]shared.DirectoryEntry),
	}
}

func (s *fakeStore) seedShelterAnimal(t *testing.T, shelterID uuid.UUID) uuid.UUID {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.animals[id] = &animalRow{
		id:        id,
		name:      "Biscuit",
		breed:     "Shiba Inu",
		shelterID: &shelterID,
		status:    animal.StatusAvailable,
	}
	return id
}

func (s *fakeStore) seedAccount(t *testing.T, email string) shared.DirectoryEntry {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := shared.DirectoryEntry{
		ID:          uuid.New(),
		Email:       user.NormalizeEmail(email),
		DisplayName: "Adopter",
		Role:        "individual",
	}
	s.directory[entry.ID] = entry
	return entry
}

func (s *fakeStore) animalRow(t *testing.T, id uuid.UUID) animalRow {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.animals[id]
	require.True(t, ok, "animal %s not in store", id)
	return *row
}

func (s *fakeStore) transferRow(t *testing.T, id uuid.UUID) transferRow {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.transfers[id]
	require.True(t, ok, "transfer %s not in store", id)
	return *row
}

func (s *fakeStore) notificationsFor(userID uuid.UUID) []notificationRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []notificationRow
	for _, n := range s.notifications {
		if n.userID == userID {
			out = append(out, n)
		}
	}
	return out
}

// UnitOfWork implementation.

func (s *fakeStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	backup := s.snapshotLocked()
	if err := fn(ctx, &fakeTx{store: s}); err != nil {
		s.restoreLocked(backup)
		return err
	}
	return nil
}

func (s *fakeStore) Reads() shared.CommandReads { return &fakeReads{store: s} }

type storeSnapshot struct {
	animals       map[uuid.UUID]animalRow
	transfers     map[uuid.UUID]transferRow
	directory     map[uuid.UUID]shared.DirectoryEntry
	notifications []notificationRow
}

func (s *fakeStore) snapshotLocked() storeSnapshot {
	snap := storeSnapshot{
		animals:       make(map[uuid.UUID]animalRow, len(s.animals)),
		transfers:     make(map[uuid.UUID]transferRow, len(s.transfers)),
		directory:     make(map[uuid.UUID]shared.DirectoryEntry, len(s.directory)),
		notifications: append([]notificationRow(nil), s.notifications...),
	}
	for id, row := range s.animals {
		snap.animals[id] = *row
	}
	for id, row := range s.transfers {
		snap.transfers[id] = *row
	}
	for id, entry := range s.directory {
		snap.directory[id] = entry
	}
	return snap
}

func (s *fakeStore) restoreLocked(snap storeSnapshot) {
	s.animals = make(map[uuid.UUID]*animalRow, len(snap.animals))
	for id, row := range snap.animals {
		r := row
		s.animals[id] = &r
	}
	s.transfers = make(map[uuid.UUID]*transferRow, len(snap.transfers))
	for id, row := range snap.transfers {
		r := row
		s.transfers[id] = &r
	}
	s.directory = snap.directory
	s.notifications = snap.notifications
}

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) AnimalByID(_ context.Context, id uuid.UUID) (*animal.Animal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	row, ok := r.store.animals[id]
	if !ok {
		return nil, infra.WrapRepoErr("animal not found", nil, infra.KindNotFound)
	}
	return rebuildAnimal(*row)
}

func (r *fakeReads) TransferByToken(_ context.Context, token transfer.ClaimToken) (*transfer.PendingTransfer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, row := range r.store.transfers {
		if row.claimToken.Value() == token.Value() {
			return rebuildTransfer(*row), nil
		}
	}
	return nil, infra.WrapRepoErr("transfer not found", nil, infra.KindNotFound)
}

func (r *fakeReads) TransferByID(_ context.Context, id uuid.UUID) (*transfer.PendingTransfer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	row, ok := r.store.transfers[id]
	if !ok {
		return nil, infra.WrapRepoErr("transfer not found", nil, infra.KindNotFound)
	}
	return rebuildTransfer(*row), nil
}

func (r *fakeReads) OverduePendingTransfers(_ context.Context, shelterID uuid.UUID, now time.Time) ([]*transfer.PendingTransfer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*transfer.PendingTransfer
	for _, row := range r.store.transfers {
		if row.shelterID == shelterID && row.status == transfer.StatusPending && now.After(row.expiresAt) {
			out = append(out, rebuildTransfer(*row))
		}
	}
	return out, nil
}

func (r *fakeReads) DirectoryEntryByEmail(_ context.Context, email user.Email) (*shared.DirectoryEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, entry := range r.store.directory {
		if entry.Email == email.Value() {
			e := entry
			return &e, nil
		}
	}
	return nil, infra.WrapRepoErr("directory entry not found", nil, infra.KindNotFound)
}

func (r *fakeReads) DirectoryEntryByID(_ context.Context, id uuid.UUID) (*shared.DirectoryEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	entry, ok := r.store.directory[id]
	if !ok {
		return nil, infra.WrapRepoErr("directory entry not found", nil, infra.KindNotFound)
	}
	e := entry
	return &e, nil
}

func rebuildAnimal(row animalRow) (*animal.Animal, error) {
	return animal.ReconstructAnimal(
		row.id, row.name, row.breed, row.photoURL,
		row.shelterID, row.ownerUserID, row.status,
		baseTime, baseTime,
	)
}

func rebuildTransfer(row transferRow) *transfer.PendingTransfer {
	return transfer.ReconstructPendingTransfer(
		row.id, row.animalID, row.shelterID,
		row.recipientEmail, row.claimToken, row.snapshot,
		row.status, row.recipientUserID,
		row.createdAt, row.expiresAt, row.processedAt,
	)
}

// fakeTx runs inside Within with the store lock already held.
type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Animals() shared.AnimalRepository             { return &fakeAnimalRepo{store: t.store} }
func (t *fakeTx) Transfers() shared.TransferRepository         { return &fakeTransferRepo{store: t.store} }
func (t *fakeTx) Notifications() shared.NotificationRepository { return &fakeNotificationRepo{store: t.store} }
func (t *fakeTx) Users() shared.UserRepository                 { return &fakeUserRepo{store: t.store} }

type fakeAnimalRepo struct {
	store *fakeStore
}

func (r *fakeAnimalRepo) Create(_ context.Context, a *animal.Animal) error {
	r.store.animals[a.ID()] = &animalRow{
		id:          a.ID(),
		name:        a.Name(),
		breed:       a.Breed(),
		photoURL:    a.PhotoURL(),
		shelterID:   a.ShelterID(),
		ownerUserID: a.OwnerUserID(),
		status:      a.AdoptionStatus(),
	}
	return nil
}

func (r *fakeAnimalRepo) TransferOwnership(_ context.Context, animalID, shelterID, ownerUserID uuid.UUID) (bool, error) {
	row, ok := r.store.animals[animalID]
	if !ok || row.shelterID == nil || *row.shelterID != shelterID {
		return false, nil
	}
	if row.status == animal.StatusAdopted || row.status == animal.StatusPendingTransfer {
		return false, nil
	}
	row.ownerUserID = &ownerUserID
	row.shelterID = nil
	row.status = animal.StatusAdopted
	return true, nil
}

func (r *fakeAnimalRepo) HoldForTransfer(_ context.Context, animalID, shelterID uuid.UUID) (bool, error) {
	row, ok := r.store.animals[animalID]
	if !ok || row.shelterID == nil || *row.shelterID != shelterID {
		return false, nil
	}
	if row.status == animal.StatusAdopted || row.status == animal.StatusPendingTransfer {
		return false, nil
	}
	row.status = animal.StatusPendingTransfer
	return true, nil
}

func (r *fakeAnimalRepo) Adopt(_ context.Context, animalID, ownerUserID uuid.UUID) (bool, error) {
	row, ok := r.store.animals[animalID]
	if !ok || row.status != animal.StatusPendingTransfer {
		return false, nil
	}
	row.ownerUserID = &ownerUserID
	row.shelterID = nil
	row.status = animal.StatusAdopted
	return true, nil
}

func (r *fakeAnimalRepo) ReleaseHold(_ context.Context, animalID uuid.UUID) (bool, error) {
	row, ok := r.store.animals[animalID]
	if !ok || row.status != animal.StatusPendingTransfer {
		return false, nil
	}
	row.status = animal.StatusAvailable
	return true, nil
}

type fakeTransferRepo struct {
	store *fakeStore
}

func (r *fakeTransferRepo) Create(_ context.Context, pt *transfer.PendingTransfer) error {
	for _, row := range r.store.transfers {
		if row.animalID == pt.AnimalID() && row.status == transfer.StatusPending {
			return infra.WrapRepoErr("pending transfer exists for animal", nil, infra.KindConflict)
		}
	}
	r.store.transfers[pt.ID()] = &transferRow{
		id:             pt.ID(),
		animalID:       pt.AnimalID(),
		shelterID:      pt.ShelterID(),
		recipientEmail: pt.RecipientEmail(),
		claimToken:     pt.ClaimToken(),
		snapshot:       pt.Snapshot(),
		status:         pt.Status(),
		createdAt:      pt.CreatedAt(),
		expiresAt:      pt.ExpiresAt(),
	}
	return nil
}

func (r *fakeTransferRepo) CompletePending(_ context.Context, id, recipientUserID uuid.UUID, now time.Time) (bool, error) {
	row, ok := r.store.transfers[id]
	if !ok || row.status != transfer.StatusPending || now.After(row.expiresAt) {
		return false, nil
	}
	row.status = transfer.StatusCompleted
	row.recipientUserID = &recipientUserID
	row.processedAt = &now
	return true, nil
}

func (r *fakeTransferRepo) MarkCancelled(_ context.Context, id uuid.UUID, now time.Time) (bool, error) {
	return r.markTerminal(id, transfer.StatusCancelled, now)
}

func (r *fakeTransferRepo) MarkExpired(_ context.Context, id uuid.UUID, now time.Time) (bool, error) {
	return r.markTerminal(id, transfer.StatusExpired, now)
}

func (r *fakeTransferRepo) markTerminal(id uuid.UUID, status transfer.Status, now time.Time) (bool, error) {
	row, ok := r.store.transfers[id]
	if !ok || row.status != transfer.StatusPending {
		return false, nil
	}
	row.status = status
	row.processedAt = &now
	return true, nil
}

type fakeNotificationRepo struct {
	store *fakeStore
}

func (r *fakeNotificationRepo) Create(_ context.Context, userID uuid.UUID, notificationType string, payload []byte) error {
	r.store.notifications = append(r.store.notifications, notificationRow{
		userID:           userID,
		notificationType: notificationType,
		payload:          payload,
	})
	return nil
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	r.store.directory[u.ID()] = shared.DirectoryEntry{
		ID:          u.ID(),
		Email:       u.Email().Value(),
		DisplayName: u.DisplayName(),
		Role:        u.Role().String(),
	}
	return nil
}

func (r *fakeUserRepo) EnsureDirectoryEntry(_ context.Context, id uuid.UUID, email user.Email, displayName string) error {
	if _, ok := r.store.directory[id]; ok {
		return nil
	}
	r.store.directory[id] = shared.DirectoryEntry{
		ID:          id,
		Email:       email.Value(),
		DisplayName: displayName,
		Role:        "individual",
	}
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ uuid.UUID) error { return nil }

type sentInvite struct {
	recipient string
	invite    commands.ClaimInvite
}

type fakeMailer struct {
	mu      sync.Mutex
	invites []sentInvite
}

func (m *fakeMailer) SendClaimInvite(_ context.Context, recipientEmail string, invite commands.ClaimInvite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invites = append(m.invites, sentInvite{recipient: recipientEmail, invite: invite})
	return nil
}

func (m *fakeMailer) sent() []sentInvite {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentInvite(nil), m.invites...)
}

func newFixture() (commands.TransferCommands, *fakeStore, *fakeMailer, *clock.MockClock) {
	store := newFakeStore()
	mailer := &fakeMailer{}
	clk := clock.NewMockClock(baseTime)
	return commands.NewTransferCommands(store, mailer, clk), store, mailer, clk
}

func TestTransferCommands_Initiate(t *testing.T) {
	shelterID := uuid.New()

	t.Run("immediate mode for registered recipient", func(t *testing.T) {
		cmd, store, mailer, _ := newFixture()
		animalID := store.seedShelterAnimal(t, shelterID)
		recipient := store.seedAccount(t, "adopter@example.com")

		out, err := cmd.Initiate(t.Context(), animalID, "  Adopter@Example.COM ", shelterID)
		require.NoError(t, err)
		require.Equal(t, commands.ModeImmediate, out.Mode)
		require.NotNil(t, out.RecipientUserID)
		assert.Equal(t, recipient.ID, *out.RecipientUserID)
		assert.Nil(t, out.TransferID)

		row := store.animalRow(t, animalID)
		assert.Equal(t, animal.StatusAdopted, row.status)
		require.NotNil(t, row.ownerUserID)
		assert.Equal(t, recipient.ID, *row.ownerUserID)
		assert.Nil(t, row.shelterID)

		notes := store.notificationsFor(recipient.ID)
		require.Len(t, notes, 1)
		assert.Equal(t, commands.NotificationTypeDogReceived, notes[0].notificationType)
		assert.Empty(t, mailer.sent())
	})

	t.Run("deferred mode for unknown recipient", func(t *testing.T) {
		cmd, store, mailer, _ := newFixture()
		animalID := store.seedShelterAnimal(t, shelterID)

		out, err := cmd.Initiate(t.Context(), animalID, "stranger@example.com", shelterID)
		require.NoError(t, err)
		require.Equal(t, commands.ModeDeferred, out.Mode)
		require.NotNil(t, out.TransferID)
		assert.Len(t, out.ClaimToken, transfer.TokenLength)
		require.NotNil(t, out.ExpiresAt)
		assert.Equal(t, baseTime.Add(transfer.TTL), *out.ExpiresAt)

		animalState := store.animalRow(t, animalID)
		assert.Equal(t, animal.StatusPendingTransfer, animalState.status)
		require.NotNil(t, animalState.shelterID)
		assert.Equal(t, shelterID, *animalState.shelterID)

		transferState := store.transferRow(t, *out.TransferID)
		assert.Equal(t, transfer.StatusPending, transferState.status)
		assert.Equal(t, "stranger@example.com", transferState.recipientEmail.Value())

		// The invite goes out on a detached goroutine.
		require.Eventually(t, func() bool { return len(mailer.sent()) == 1 }, time.Second, 5*time.Millisecond)
		invite := mailer.sent()[0]
		assert.Equal(t, "stranger@example.com", invite.recipient)
		assert.Equal(t, out.ClaimToken, invite.invite.ClaimToken)
		assert.Equal(t, "Biscuit", invite.invite.AnimalName)
		assert.Equal(t, 7, invite.invite.ExpiresInDays)
	})

	t.Run("invalid recipient email", func(t *testing.T) {
		cmd, store, _, _ := newFixture()
		animalID := store.seedShelterAnimal(t, shelterID)

		_, err := cmd.Initiate(t.Context(), animalID, "not-an-email", shelterID)
		assert.ErrorIs(t, err, commands.ErrInvalidRecipientEmail)
	})

	t.Run("unknown animal", func(t *testing.T) {
		cmd, _, _, _ := newFixture()

		_, err := cmd.Initiate(t.Context(), uuid.New(), "someone@example.com", shelterID)
		assert.ErrorIs(t, err, commands.ErrAnimalNotFound)
	})

	t.Run("animal owned by another shelter reads as absent", func(t *testing.T) {
		cmd, store, _, _ := newFixture()
		animalID := store.seedShelterAnimal(t, uuid.New())

		_, err := cmd.Initiate(t.Context(), animalID, "someone@example.com", shelterID)
		assert.ErrorIs(t, err, commands.ErrAnimalNotFound)
	})

	t.Run("second initiate conflicts with transfer in flight", func(t *testing.T) {
		cmd, store, _, _ := newFixture()
		animalID := store.seedShelterAnimal(t, shelterID)

		_, err := cmd.Initiate(t.Context(), animalID, "first@example.com", shelterID)
		require.NoError(t, err)

		_, err = cmd.Initiate(t.Context(), animalID, "second@example.com", shelterID)
		assert.ErrorIs(t, err, commands.ErrTransferConflict)
	})
}

func TestTransferCommands_ResolveClaim(t *testing.T) {
	shelterID := uuid.New()

	initiateDeferred := func(t *testing.T, cmd commands.TransferCommands, store *fakeStore, recipientEmail string) (uuid.UUID, *commands.TransferOutcome) {
		t.Helper()
		animalID := store.seedShelterAnimal(t, shelterID)
		out, err := cmd.Initiate(t.Context(), animalID, recipientEmail, shelterID)
		require.NoError(t, err)
		require.Equal(t, commands.ModeDeferred, out.Mode)
		return animalID, out
	}

	t.Run("completes transfer for matching account", func(t *testing.T) {
		cmd, store, _, _ := newFixture()
		animalID, out := initiateDeferred(t, cmd, store, "adopter@example.com")
		accountID := uuid.New()

		claim, err := cmd.ResolveClaim(t.Context(), out.ClaimToken, accountID, " ADOPTER@Example.com ")
		require.NoError(t, err)
		assert.Equal(t, *out.TransferID, claim.TransferID)
		assert.Equal(t, accountID, claim.OwnerUserID)
		assert.Equal(t, "Biscuit", claim.Animal.Name)

		transferState := store.transferRow(t, *out.TransferID)
		assert.Equal(t, transfer.StatusCompleted, transferState.status)
		require.NotNil(t, transferState.recipientUserID)
		assert.Equal(t, accountID, *transferState.recipientUserID)

		animalState := store.animalRow(t, animalID)
		assert.Equal(t, animal.StatusAdopted, animalState.status)
		require.NotNil(t, animalState.ownerUserID)
		assert.Equal(t, accountID, *animalState.ownerUserID)

		require.Len(t, store.notificationsFor(accountID), 1)

		// The claiming account was not in the directory; the claim
		// materializes it.
		entry, err := store.Reads().DirectoryEntryByID(t.Context(), accountID)
		require.NoError(t, err)
		assert.Equal(t, "adopter@example.com", entry.Email)
	})

	t.Run("token is normalized before lookup", func(t *testing.T) {
		cmd, store, _, _ := newFixture()
		_, out := initiateDeferred(t, cmd, store, "adopter@example.com")

		lowered := "  " + strings.ToLower(out.ClaimToken) + " "
		_, err := cmd.ResolveClaim(t.Context(), lowered, uuid.New(), "adopter@example.com")
		require.NoError(t, err)
	})

	t.Run("unknown token", func(t *testing.T) {
		cmd, _, _, _ := newFixture()

		_, err := cmd.ResolveClaim(t.Context(), "ZZZZZZZ99999", uuid.New(), "adopter@example.com")
		assert.ErrorIs(t, err, commands.ErrTransferNotFound)
	})

	t.Run("malformed token", func(t *testing.T) {
		cmd, _, _, _ := newFixture()

		_, err := cmd.ResolveClaim(t.Context(), "!!", uuid.New(), "adopter@example.com")
		assert.ErrorIs(t, err, commands.ErrTransferNotFound)
	})

	t.Run("email mismatch leaves transfer pending", func(t *testing.T) {
		cmd, store, _, _ := newFixture()
		_, out := initiateDeferred(t, cmd, store, "adopter@example.com")

		_, err := cmd.ResolveClaim(t.Context(), out.ClaimToken, uuid.New(), "impostor@example.com")
		assert.ErrorIs(t, err, commands.ErrEmailMismatch)

		assert.Equal(t, transfer.StatusPending, store.transferRow(t, *out.TransferID).status)
	})

	t.Run("cancelled transfer", func(t *testing.T) {
		cmd, store, _, _ := newFixture()
		_, out := initiateDeferred(t, cmd, store, "adopter@example.com")
		require.NoError(t, cmd.Cancel(t.Context(), *out.TransferID, shelterID))

		_, err := cmd.ResolveClaim(t.Context(), out.ClaimToken, uuid.New(), "adopter@example.com")
		assert.ErrorIs(t, err, commands.ErrTransferCancelled)
	})

	t.Run("second claim reports completed", func(t *testing.T) {
		cmd, store, _, _ := newFixture()
		_, out := initiateDeferred(t, cmd, store, "adopter@example.com")

		_, err := cmd.ResolveClaim(t.Context(), out.ClaimToken, uuid.New(), "adopter@example.com")
		require.NoError(t, err)

		_, err = cmd.ResolveClaim(t.Context(), out.ClaimToken, uuid.New(), "adopter@example.com")
		assert.ErrorIs(t, err, commands.ErrTransferAlreadyCompleted)
	})

	t.Run("lazy expiry persists and releases the animal", func(t *testing.T) {
		cmd, store, _, clk := newFixture()
		animalID, out := initiateDeferred(t, cmd, store, "adopter@example.com")

		clk.Add(transfer.TTL + time.Minute)

		_, err := cmd.ResolveClaim(t.Context(), out.ClaimToken, uuid.New(), "adopter@example.com")
		assert.ErrorIs(t, err, commands.ErrTransferExpired)

		assert.Equal(t, transfer.StatusExpired, store.transferRow(t, *out.TransferID).status)
		assert.Equal(t, animal.StatusAvailable, store.animalRow(t, animalID).status)
	})

	t.Run("expiry check precedes identity check", func(t *testing.T) {
		cmd, store, _, clk := newFixture()
		_, out := initiateDeferred(t, cmd, store, "adopter@example.com")

		clk.Add(transfer.TTL + time.Minute)

		_, err := cmd.ResolveClaim(t.Context(), out.ClaimToken, uuid.New(), "impostor@example.com")
		assert.ErrorIs(t, err, commands.ErrTransferExpired)
	})

	t.Run("claim exactly at the deadline succeeds", func(t *testing.T) {
		cmd, store, _, clk := newFixture()
		_, out := initiateDeferred(t, cmd, store, "adopter@example.com")

		clk.Set(*out.ExpiresAt)

		_, err := cmd.ResolveClaim(t.Context(), out.ClaimToken, uuid.New(), "adopter@example.com")
		require.NoError(t, err)
	})

	t.Run("concurrent resolvers admit exactly one winner", func(t *testing.T) {
		cmd, store, _, _ := newFixture()
		_, out := initiateDeferred(t, cmd, store, "adopter@example.com")
		accountID := uuid.New()

		const resolvers = 8
		errors := make([]error, resolvers)
		var wg sync.WaitGroup
		for i := range resolvers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errors[i] = cmd.ResolveClaim(t.Context(), out.ClaimToken, accountID, "adopter@example.com")
			}()
		}
		wg.Wait()

		wins := 0
		for _, err := range errors {
			if err == nil {
				wins++
			} else {
				assert.ErrorIs(t, err, commands.ErrTransferAlreadyCompleted)
			}
		}
		assert.Equal(t, 1, wins)
		assert.Len(t, store.notificationsFor(accountID), 1)
	})
}

func TestTransferCommands_Cancel(t *testing.T) {
	shelterID := uuid.New()

	setup := func(t *testing.T, cmd commands.TransferCommands, store *fakeStore) (uuid.UUID, uuid.UUID) {
		t.Helper()
		animalID := store.seedShelterAnimal(t, shelterID)
		out, err := cmd.Initiate(t.Context(), animalID, "adopter@example.com", shelterID)
		require.NoError(t, err)
		return animalID, *out.TransferID
	}

	t.Run("releases the animal", func(t *testing.T) {
		cmd, store, _, _ := newFixture()
		animalID, transferID := setup(t, cmd, store)

		require.NoError(t, cmd.Cancel(t.Context(), transferID, shelterID))

		assert.Equal(t, transfer.StatusCancelled, store.transferRow(t, transferID).status)
		assert.Equal(t, animal.StatusAvailable, store.animalRow(t, animalID).status)
	})

	t.Run("unknown transfer", func(t *testing.T) {
		cmd, _, _, _ := newFixture()
		err := cmd.Cancel(t.Context(), uuid.New(), shelterID)
		assert.ErrorIs(t, err, commands.ErrTransferNotFound)
	})

	t.Run("another shelter's transfer reads as absent", func(t *testing.T) {
		cmd, store, _, _ := newFixture()
		_, transferID := setup(t, cmd, store)

		err := cmd.Cancel(t.Context(), transferID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrTransferNotFound)
	})

	t.Run("terminal transfer conflicts", func(t *testing.T) {
		cmd, store, _, _ := newFixture()
		_, transferID := setup(t, cmd, store)
		require.NoError(t, cmd.Cancel(t.Context(), transferID, shelterID))

		err := cmd.Cancel(t.Context(), transferID, shelterID)
		assert.ErrorIs(t, err, commands.ErrTransferConflict)
	})
}

func TestTransferCommands_ExpireOverdue(t *testing.T) {
	shelterID := uuid.New()

	t.Run("flips overdue transfers and releases holds", func(t *testing.T) {
		cmd, store, _, clk := newFixture()

		firstAnimal := store.seedShelterAnimal(t, shelterID)
		first, err := cmd.Initiate(t.Context(), firstAnimal, "one@example.com", shelterID)
		require.NoError(t, err)

		secondAnimal := store.seedShelterAnimal(t, shelterID)
		second, err := cmd.Initiate(t.Context(), secondAnimal, "two@example.com", shelterID)
		require.NoError(t, err)

		clk.Add(transfer.TTL + time.Hour)

		freshAnimal := store.seedShelterAnimal(t, shelterID)
		fresh, err := cmd.Initiate(t.Context(), freshAnimal, "three@example.com", shelterID)
		require.NoError(t, err)

		count, err := cmd.ExpireOverdue(t.Context(), shelterID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		assert.Equal(t, transfer.StatusExpired, store.transferRow(t, *first.TransferID).status)
		assert.Equal(t, transfer.StatusExpired, store.transferRow(t, *second.TransferID).status)
		assert.Equal(t, transfer.StatusPending, store.transferRow(t, *fresh.TransferID).status)

		assert.Equal(t, animal.StatusAvailable, store.animalRow(t, firstAnimal).status)
		assert.Equal(t, animal.StatusAvailable, store.animalRow(t, secondAnimal).status)
		assert.Equal(t, animal.StatusPendingTransfer, store.animalRow(t, freshAnimal).status)
	})

	t.Run("nothing overdue", func(t *testing.T) {
		cmd, store, _, _ := newFixture()
		animalID := store.seedShelterAnimal(t, shelterID)
		_, err := cmd.Initiate(t.Context(), animalID, "adopter@example.com", shelterID)
		require.NoError(t, err)

		count, err := cmd.ExpireOverdue(t.Context(), shelterID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
