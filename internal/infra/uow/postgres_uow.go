package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"pawhaven/internal/domain/animal"
	"pawhaven/internal/domain/transfer"
	"pawhaven/internal/domain/user"
	"pawhaven/internal/infra/db"
	"pawhaven/internal/infra/readstore"
	"pawhaven/internal/infra/repository"
	"pawhaven/internal/pkg/errs"
	"pawhaven/internal/usecase/shared"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) Reads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask the high bit so the conversion stays positive
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	animalRepo       shared.AnimalRepository
	transferRepo     shared.TransferRepository
	notificationRepo shared.NotificationRepository
	userRepo         shared.UserRepository
}

func (t *pgTx) Animals() shared.AnimalRepository {
	if t.animalRepo == nil {
		t.animalRepo = repository.NewAnimalRepository(t.dbtx)
	}
	return t.animalRepo
}

func (t *pgTx) Transfers() shared.TransferRepository {
	if t.transferRepo == nil {
		t.transferRepo = repository.NewTransferRepository(t.dbtx)
	}
	return t.transferRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.dbtx)
	}
	return t.userRepo
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	animalStore   *readstore.AnimalReadStore
	transferStore *readstore.TransferReadStore
	userStore     *readstore.UserReadStore
}

func (r *commandReads) animals() *readstore.AnimalReadStore {
	if r.animalStore == nil {
		r.animalStore = readstore.NewAnimalReadStore(r.dbtx)
	}
	return r.animalStore
}

func (r *commandReads) transfers() *readstore.TransferReadStore {
	if r.transferStore == nil {
		r.transferStore = readstore.NewTransferReadStore(r.dbtx)
	}
	return r.transferStore
}

func (r *commandReads) users() *readstore.UserReadStore {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.dbtx)
	}
	return r.userStore
}

func (r *commandReads) AnimalByID(ctx context.Context, id uuid.UUID) (*animal.Animal, error) {
	return r.animals().FindEntityByID(ctx, id)
}

func (r *commandReads) TransferByToken(ctx context.Context, token transfer.ClaimToken) (*transfer.PendingTransfer, error) {
	return r.transfers().FindEntityByToken(ctx, token)
}

func (r *commandReads) TransferByID(ctx context.Context, id uuid.UUID) (*transfer.PendingTransfer, error) {
	return r.transfers().FindEntityByID(ctx, id)
}

func (r *commandReads) OverduePendingTransfers(ctx context.Context, shelterID uuid.UUID, now time.Time) ([]*transfer.PendingTransfer, error) {
	return r.transfers().FindOverdueEntities(ctx, shelterID, now)
}

func (r *commandReads) DirectoryEntryByEmail(ctx context.Context, email user.Email) (*shared.DirectoryEntry, error) {
	view, err := r.users().FindByEmail(ctx, email.Value())
	if err != nil {
		return nil, err
	}
	return toDirectoryEntry(view.ID, view.Email, view.DisplayName, view.Role), nil
}

func (r *commandReads) DirectoryEntryByID(ctx context.Context, id uuid.UUID) (*shared.DirectoryEntry, error) {
	view, err := r.users().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDirectoryEntry(view.ID, view.Email, view.DisplayName, view.Role), nil
}

func toDirectoryEntry(id uuid.UUID, email, displayName, role string) *shared.DirectoryEntry {
	return &shared.DirectoryEntry{
		ID:          id,
		Email:       email,
		DisplayName: displayName,
		Role:        role,
	}
}
