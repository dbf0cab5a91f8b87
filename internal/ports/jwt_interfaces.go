package ports

import (
	"context"
	"time"

	"multipoles-backend/internal/model"
	"multipoles-backend/internal/security"
)

type SessionRepository interface {
	Save(ctx context.Context, session *model.RefreshSession) error
	FindByTokenID(ctx context.Context, tokenID string) (*model.RefreshSession, error)
	Revoke(ctx context.Context, tokenID string, at time.Time) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type JWTServiceInterface interface {
	IssueAccessToken(userID, email, role string) (string, error)
	IssueRefreshToken(userID, tokenID string) (string, error)
	VerifyAccessToken(tokenStr string) (*security.AccessClaims, error)
	VerifyRefreshToken(tokenStr string) (*security.RefreshClaims, error)
	RefreshTTL() (time.Duration, error)
}
