package usecase

import (
	"github.com/google/uuid"

	"pawhaven/internal/domain/user"
	"pawhaven/internal/pkg/jwt"
)

// Principal is the authenticated identity extracted from an access token.
// Email rides along because claim resolution compares it against the
// transfer's recipient address.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   user.Role
}

// TokenValidator provides access-token validation for middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Principal, error) {
	claims, err := t.jwtService.ValidateAccessToken(tokenString)
	if err != nil {
		return Principal{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Principal{}, err
	}

	return Principal{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   role,
	}, nil
}
