package queries

import (
	"context"

	"github.com/google/uuid"
)

type NotificationQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*NotificationView, error)
}

type NotificationReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*NotificationView, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return q.store.FindByUserID(ctx, userID, int32(limit))
}
