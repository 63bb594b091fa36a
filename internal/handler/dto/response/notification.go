package response

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"pawhaven/internal/usecase/queries"
)

type NotificationResponse struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	IsRead    bool            `json:"isRead"`
	CreatedAt time.Time       `json:"createdAt"`
}

func FromNotificationView(view *queries.NotificationView) *NotificationResponse {
	return &NotificationResponse{
		ID:        view.ID,
		Type:      view.Type,
		Payload:   json.RawMessage(view.Payload),
		IsRead:    view.IsRead,
		CreatedAt: view.CreatedAt,
	}
}
