package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"pawhaven/internal/domain/user"
	"pawhaven/internal/infra"
	"pawhaven/internal/pkg/errs"
	"pawhaven/internal/pkg/jwt"
	"pawhaven/internal/pkg/password"
	"pawhaven/internal/usecase/queries"
	"pawhaven/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrEmailTaken           = errs.New("email already registered")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type RegisterResult struct {
	UserID uuid.UUID
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	Register(ctx context.Context, email, plainPassword, displayName, role string) (*RegisterResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	normalized := user.NormalizeEmail(email)

	authUser, err := a.readStore.FindAuthUserByEmail(ctx, normalized)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	if !authUser.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(authUser.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(authUser.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.generateTokenPair(authUser.ID, authUser.Email, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, authUser.ID)
	})
	if err != nil {
		// Login stands; last_login is bookkeeping only.
		slog.Warn("failed to update last login", "user_id", authUser.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    authUser.ID,
		Role:      role,
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	// Revalidate against the directory so a deactivated account cannot keep
	// refreshing its way in.
	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return a.generateTokenPair(view.ID, view.Email, role)
}

func (a *authCommandsImpl) Register(ctx context.Context, email, plainPassword, displayName, role string) (*RegisterResult, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	if _, err := user.NewPassword(plainPassword); err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	roleVO, err := user.NewRole(role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.HashPassword(plainPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	u := user.NewUser(emailVO, hash, displayName, roleVO)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RegisterResult{UserID: u.ID()}, nil
}

func (a *authCommandsImpl) generateTokenPair(userID uuid.UUID, email string, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, email, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, email, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
