package repository

import (
	"context"

	"github.com/google/uuid"

	"pawhaven/internal/infra"
	"pawhaven/internal/infra/db"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

func (r *NotificationRepository) Create(ctx context.Context, userID uuid.UUID, notificationType string, payload []byte) error {
	const query = `
		INSERT INTO notifications (id, user_id, type, payload)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, uuid.New(), userID, notificationType, payload)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification", err, classifyConstraint(err))
	}

	return nil
}
