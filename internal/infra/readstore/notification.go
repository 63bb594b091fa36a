package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"pawhaven/internal/infra"
	"pawhaven/internal/infra/db"
	"pawhaven/internal/pkg/pgconv"
	"pawhaven/internal/usecase/queries"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(dbtx db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: dbtx}
}

func (s *NotificationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	const query = `
		SELECT id, type, payload, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	var result []*queries.NotificationView
	for rows.Next() {
		var (
			view      queries.NotificationView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Type, &view.Payload, &view.IsRead, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification rows", err)
	}

	return result, nil
}
