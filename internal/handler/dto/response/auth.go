package response

import (
	"github.com/google/uuid"

	"pawhaven/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
}
