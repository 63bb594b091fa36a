package queries

import (
	"context"

	"github.com/google/uuid"

	"pawhaven/internal/infra"
	"pawhaven/internal/pkg/errs"
)

var (
	ErrUserViewNotFound = errs.New("user not found")
)

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindAuthUserByEmail(ctx context.Context, email string) (*AuthUserView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserViewNotFound
		}
		return nil, err
	}
	return view, nil
}
