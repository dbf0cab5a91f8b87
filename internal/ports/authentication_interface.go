package ports

import (
	"context"

	"multipoles-backend/internal/model"
)

type AuthenticationService interface {
	Login(ctx context.Context, email, password, userAgent, ipAddress string) (*model.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error)
	Logout(ctx context.Context, refreshToken string)
	CleanupExpiredSessions(ctx context.Context) (int64, error)
	CurrentUser(ctx context.Context, userID string) (*model.PublicUser, error)
}
