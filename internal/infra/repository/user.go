package repository

import (
	"context"

	"github.com/google/uuid"

	"pawhaven/internal/domain/user"
	"pawhaven/internal/infra"
	"pawhaven/internal/infra/db"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, email, password_hash, display_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.DisplayName(),
		u.Role().String(),
		u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err, classifyConstraint(err))
	}

	return nil
}

// EnsureDirectoryEntry creates a directory row for an externally authenticated
// account. The password hash is empty because such accounts never log in
// through the local credential path.
func (r *UserRepository) EnsureDirectoryEntry(ctx context.Context, id uuid.UUID, email user.Email, displayName string) error {
	const query = `
		INSERT INTO users (id, email, password_hash, display_name, role, is_active)
		VALUES ($1, $2, '', $3, 'individual', TRUE)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, id, email.Value(), displayName)
	if err != nil {
		return infra.WrapRepoErr("failed to ensure directory entry", err, classifyConstraint(err))
	}

	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	const query = `
		UPDATE users
		SET last_login = now(),
		    updated_at = now()
		WHERE id = $1
	`

	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}

	return nil
}
