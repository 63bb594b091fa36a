package readstore

import (
	"context"

	"github.com/google/uuid"

	"pawhaven/internal/infra"
	"pawhaven/internal/infra/db"
	"pawhaven/internal/pkg/pgconv"
	"pawhaven/internal/usecase/queries"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, display_name, role, is_active
		FROM users
		WHERE id = $1
	`

	var view queries.AuthorizedUserView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.Email,
		&view.DisplayName,
		&view.Role,
		&view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	return &view, nil
}

// FindByEmail expects a normalized address; writes normalize before storing.
func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, display_name, role, is_active
		FROM users
		WHERE email = $1
	`

	var view queries.AuthorizedUserView
	err := s.db.QueryRow(ctx, query, email).Scan(
		&view.ID,
		&view.Email,
		&view.DisplayName,
		&view.Role,
		&view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, nil
}

func (s *UserReadStore) FindAuthUserByEmail(ctx context.Context, email string) (*queries.AuthUserView, error) {
	const query = `
		SELECT id, email, password_hash, display_name, role, is_active
		FROM users
		WHERE email = $1
	`

	var view queries.AuthUserView
	err := s.db.QueryRow(ctx, query, email).Scan(
		&view.ID,
		&view.Email,
		&view.PasswordHash,
		&view.DisplayName,
		&view.Role,
		&view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find auth user", err)
	}

	return &view, nil
}

var _ queries.UserReadStore = (*UserReadStore)(nil)
