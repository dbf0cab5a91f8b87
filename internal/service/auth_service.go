package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"multipoles-backend/internal/model"
	"multipoles-backend/internal/ports"
	"multipoles-backend/internal/repository"
	"multipoles-backend/internal/security"
	"multipoles-backend/internal/util"
)

// AuthenticationService owns the session lifecycle: it issues token
// pairs on login, exchanges refresh tokens for fresh access tokens,
// revokes sessions on logout and sweeps expired rows.
type AuthenticationService struct {
	userRepository    ports.UserRepository
	sessionRepository ports.SessionRepository
	jwtService        ports.JWTServiceInterface
}

func NewAuthenticationService(
	userRepository ports.UserRepository,
	sessionRepository ports.SessionRepository,
	jwtService ports.JWTServiceInterface,
) *AuthenticationService {
	return &AuthenticationService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		jwtService:        jwtService,
	}
}

func (s *AuthenticationService) Login(ctx context.Context, email, password, userAgent, ipAddress string) (*model.AuthResult, error) {
	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, util.LogError("[AuthService] user lookup failed", err)
	}

	if !security.CompareSecret(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if err := s.userRepository.UpdateLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		return nil, util.LogError("[AuthService] stamping last login failed", err)
	}

	accessToken, err := s.jwtService.IssueAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, util.LogError("[AuthService] issuing access token failed", err)
	}

	tokenID := uuid.New().String()
	refreshToken, err := s.jwtService.IssueRefreshToken(user.ID, tokenID)
	if err != nil {
		return nil, util.LogError("[AuthService] issuing refresh token failed", err)
	}

	// The hash covers the entire signed token string, so a stolen
	// token_id alone can never satisfy a refresh.
	tokenHash, err := security.HashSecret(refreshToken)
	if err != nil {
		return nil, util.LogError("[AuthService] hashing refresh token failed", err)
	}

	ttl, err := s.jwtService.RefreshTTL()
	if err != nil {
		return nil, util.LogError("[AuthService] reading refresh ttl failed", err)
	}

	session := &model.RefreshSession{
		TokenID:   tokenID,
		TokenHash: tokenHash,
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
	session.ID = uuid.New().String()
	if userAgent != "" {
		session.UserAgent = &userAgent
	}
	if ipAddress != "" {
		session.IPAddress = &ipAddress
	}

	if err := s.sessionRepository.Save(ctx, session); err != nil {
		return nil, util.LogError("[AuthService] persisting refresh session failed", err)
	}

	return &model.AuthResult{
		Tokens: model.TokensPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
		User: user.PublicView(),
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself is returned unchanged; the stored session stays
// valid until it expires or is revoked.
func (s *AuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	claims, err := s.jwtService.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrRefreshInvalid
	}

	session, err := s.sessionRepository.FindByTokenID(ctx, claims.TokenID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRefreshInvalid
		}
		return nil, util.LogError("[AuthService] session lookup failed", err)
	}

	if !session.Usable(time.Now().UTC()) ||
		session.UserID != claims.Subject ||
		!security.CompareSecret(refreshToken, session.TokenHash) {
		return nil, ErrRefreshInvalid
	}

	user, err := s.userRepository.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRefreshInvalid
		}
		return nil, util.LogError("[AuthService] user lookup failed", err)
	}

	accessToken, err := s.jwtService.IssueAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, util.LogError("[AuthService] issuing access token failed", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout is best-effort: an unusable token already satisfies the
// caller's intent, so every failure branch is deliberately discarded.
func (s *AuthenticationService) Logout(ctx context.Context, refreshToken string) {
	claims, err := s.jwtService.VerifyRefreshToken(refreshToken)
	if err != nil {
		return
	}

	if err := s.sessionRepository.Revoke(ctx, claims.TokenID, time.Now().UTC()); err != nil {
		log.Printf("[AuthService] revoking session on logout failed: %v", err)
	}
}

// CleanupExpiredSessions removes every session past its expiry,
// regardless of revocation state. Meant for a recurring schedule, not
// the request path.
func (s *AuthenticationService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	deleted, err := s.sessionRepository.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, util.LogError("[AuthService] session cleanup failed", err)
	}
	return deleted, nil
}

func (s *AuthenticationService) CurrentUser(ctx context.Context, userID string) (*model.PublicUser, error) {
	user, err := s.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.PublicView(), nil
}

// RunSessionCleanup blocks until ctx is done, sweeping expired
// sessions on every tick.
func RunSessionCleanup(ctx context.Context, auth ports.AuthenticationService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := auth.CleanupExpiredSessions(ctx)
			if err != nil {
				log.Printf("session cleanup failed: %v", err)
				continue
			}
			if deleted > 0 {
				log.Printf("session cleanup removed %d expired sessions", deleted)
			}
		}
	}
}
