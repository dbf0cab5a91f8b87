package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"multipoles-backend/internal/model"
	"multipoles-backend/internal/repository"
	"multipoles-backend/internal/security"
	"multipoles-backend/internal/service"
)

// ===== MOCKS =====

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search, role string) ([]model.User, error) {
	args := m.Called(ctx, search, role)
	if users, ok := args.Get(0).([]model.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Save(ctx context.Context, session *model.RefreshSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepository) FindByTokenID(ctx context.Context, tokenID string) (*model.RefreshSession, error) {
	args := m.Called(ctx, tokenID)
	if s, ok := args.Get(0).(*model.RefreshSession); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionRepository) Revoke(ctx context.Context, tokenID string, at time.Time) error {
	return m.Called(ctx, tokenID, at).Error(0)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) IssueAccessToken(userID, email, role string) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}

func (m *MockJWTService) IssueRefreshToken(userID, tokenID string) (string, error) {
	args := m.Called(userID, tokenID)
	return args.String(0), args.Error(1)
}

func (m *MockJWTService) VerifyAccessToken(tokenStr string) (*security.AccessClaims, error) {
	args := m.Called(tokenStr)
	if c, ok := args.Get(0).(*security.AccessClaims); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) VerifyRefreshToken(tokenStr string) (*security.RefreshClaims, error) {
	args := m.Called(tokenStr)
	if c, ok := args.Get(0).(*security.RefreshClaims); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) RefreshTTL() (time.Duration, error) {
	args := m.Called()
	return args.Get(0).(time.Duration), args.Error(1)
}

// ===== HELPERS =====

func newTestAuthService() (*service.AuthenticationService, *MockUserRepository, *MockSessionRepository, *MockJWTService) {
	mockUserRepo := new(MockUserRepository)
	mockSessionRepo := new(MockSessionRepository)
	mockJWT := new(MockJWTService)

	svc := service.NewAuthenticationService(mockUserRepo, mockSessionRepo, mockJWT)
	return svc, mockUserRepo, mockSessionRepo, mockJWT
}

func testUser(password string) *model.User {
	hash, _ := security.HashSecret(password)
	user := &model.User{
		Email:        "admin@multipoles.fr",
		PasswordHash: hash,
		Role:         model.RoleSuperAdmin,
	}
	user.ID = "u1"
	return user
}

func refreshClaims(userID, tokenID string) *security.RefreshClaims {
	return &security.RefreshClaims{
		TokenID:   tokenID,
		TokenType: security.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: userID,
		},
	}
}

// ===== LOGIN =====

func TestLogin_Success(t *testing.T) {
	svc, userRepo, sessionRepo, jwtService := newTestAuthService()
	ctx := context.Background()
	user := testUser("goodpass")

	userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	userRepo.On("UpdateLastLogin", ctx, "u1", mock.Anything).Return(nil)
	jwtService.On("IssueAccessToken", "u1", user.Email, model.RoleSuperAdmin).Return("access", nil)
	jwtService.On("IssueRefreshToken", "u1", mock.Anything).Return("refresh", nil)
	jwtService.On("RefreshTTL").Return(7*24*time.Hour, nil)
	sessionRepo.On("Save", ctx, mock.MatchedBy(func(s *model.RefreshSession) bool {
		return s.UserID == "u1" && !s.Revoked && s.ExpiresAt.After(time.Now())
	})).Return(nil)

	result, err := svc.Login(ctx, user.Email, "goodpass", "agent", "127.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, "access", result.Tokens.AccessToken)
	assert.Equal(t, "refresh", result.Tokens.RefreshToken)
	assert.Equal(t, "u1", result.User.ID)
	userRepo.AssertExpectations(t)
	sessionRepo.AssertExpectations(t)
	jwtService.AssertExpectations(t)
}

func TestLogin_PersistsHashedSession(t *testing.T) {
	svc, userRepo, sessionRepo, jwtService := newTestAuthService()
	ctx := context.Background()
	user := testUser("goodpass")

	var saved *model.RefreshSession
	userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	userRepo.On("UpdateLastLogin", ctx, "u1", mock.Anything).Return(nil)
	jwtService.On("IssueAccessToken", "u1", user.Email, model.RoleSuperAdmin).Return("access", nil)
	jwtService.On("IssueRefreshToken", "u1", mock.Anything).Return("refresh-token-string", nil)
	jwtService.On("RefreshTTL").Return(time.Hour, nil)
	sessionRepo.On("Save", ctx, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*model.RefreshSession)
	}).Return(nil)

	_, err := svc.Login(ctx, user.Email, "goodpass", "agent", "127.0.0.1")

	require.NoError(t, err)
	require.NotNil(t, saved)
	// The row stores a bcrypt hash of the full token, never the token.
	assert.NotEqual(t, "refresh-token-string", saved.TokenHash)
	assert.True(t, security.CompareSecret("refresh-token-string", saved.TokenHash))
	require.NotNil(t, saved.UserAgent)
	assert.Equal(t, "agent", *saved.UserAgent)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, userRepo, _, _ := newTestAuthService()
	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "ghost@multipoles.fr").Return(nil, repository.ErrNotFound)

	_, err := svc.Login(ctx, "ghost@multipoles.fr", "whatever", "", "")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	userRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, userRepo, _, _ := newTestAuthService()
	ctx := context.Background()
	user := testUser("goodpass")

	userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)

	_, err := svc.Login(ctx, user.Email, "badpass", "", "")

	// Wrong password and unknown email must be indistinguishable.
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	userRepo.AssertExpectations(t)
}

func TestLogin_SaveSessionError(t *testing.T) {
	svc, userRepo, sessionRepo, jwtService := newTestAuthService()
	ctx := context.Background()
	user := testUser("goodpass")

	userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	userRepo.On("UpdateLastLogin", ctx, "u1", mock.Anything).Return(nil)
	jwtService.On("IssueAccessToken", "u1", user.Email, model.RoleSuperAdmin).Return("access", nil)
	jwtService.On("IssueRefreshToken", "u1", mock.Anything).Return("refresh", nil)
	jwtService.On("RefreshTTL").Return(time.Hour, nil)
	sessionRepo.On("Save", ctx, mock.Anything).Return(errors.New("db error"))

	_, err := svc.Login(ctx, user.Email, "goodpass", "", "")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
}

// ===== REFRESH =====

func refreshFixture(t *testing.T, refreshToken string) (*model.RefreshSession, *security.RefreshClaims) {
	t.Helper()
	hash, err := security.HashSecret(refreshToken)
	require.NoError(t, err)

	session := &model.RefreshSession{
		TokenID:   "tok1",
		TokenHash: hash,
		UserID:    "u1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	session.ID = "s1"
	return session, refreshClaims("u1", "tok1")
}

func TestRefresh_Success(t *testing.T) {
	svc, userRepo, sessionRepo, jwtService := newTestAuthService()
	ctx := context.Background()
	user := testUser("irrelevant")
	session, claims := refreshFixture(t, "the-refresh-token")

	jwtService.On("VerifyRefreshToken", "the-refresh-token").Return(claims, nil)
	sessionRepo.On("FindByTokenID", ctx, "tok1").Return(session, nil)
	userRepo.On("FindByID", ctx, "u1").Return(user, nil)
	jwtService.On("IssueAccessToken", "u1", user.Email, model.RoleSuperAdmin).Return("new-access", nil)

	tokens, err := svc.Refresh(ctx, "the-refresh-token")

	require.NoError(t, err)
	assert.Equal(t, "new-access", tokens.AccessToken)
	// No rotation: the same refresh token comes back.
	assert.Equal(t, "the-refresh-token", tokens.RefreshToken)
	jwtService.AssertExpectations(t)
}

func TestRefresh_BadToken(t *testing.T) {
	svc, _, _, jwtService := newTestAuthService()

	jwtService.On("VerifyRefreshToken", "garbage").Return(nil, security.ErrInvalidToken)

	_, err := svc.Refresh(context.Background(), "garbage")

	assert.ErrorIs(t, err, service.ErrRefreshInvalid)
}

func TestRefresh_SessionNotFound(t *testing.T) {
	svc, _, sessionRepo, jwtService := newTestAuthService()
	ctx := context.Background()

	jwtService.On("VerifyRefreshToken", "tok").Return(refreshClaims("u1", "tok1"), nil)
	sessionRepo.On("FindByTokenID", ctx, "tok1").Return(nil, repository.ErrNotFound)

	_, err := svc.Refresh(ctx, "tok")

	assert.ErrorIs(t, err, service.ErrRefreshInvalid)
}

func TestRefresh_RevokedSession(t *testing.T) {
	svc, _, sessionRepo, jwtService := newTestAuthService()
	ctx := context.Background()
	session, claims := refreshFixture(t, "tok")
	session.Revoked = true

	jwtService.On("VerifyRefreshToken", "tok").Return(claims, nil)
	sessionRepo.On("FindByTokenID", ctx, "tok1").Return(session, nil)

	_, err := svc.Refresh(ctx, "tok")

	assert.ErrorIs(t, err, service.ErrRefreshInvalid)
}

func TestRefresh_ExpiredSession(t *testing.T) {
	svc, _, sessionRepo, jwtService := newTestAuthService()
	ctx := context.Background()
	session, claims := refreshFixture(t, "tok")
	session.ExpiresAt = time.Now().Add(-time.Minute)

	jwtService.On("VerifyRefreshToken", "tok").Return(claims, nil)
	sessionRepo.On("FindByTokenID", ctx, "tok1").Return(session, nil)

	_, err := svc.Refresh(ctx, "tok")

	assert.ErrorIs(t, err, service.ErrRefreshInvalid)
}

func TestRefresh_SubjectMismatch(t *testing.T) {
	svc, _, sessionRepo, jwtService := newTestAuthService()
	ctx := context.Background()
	session, _ := refreshFixture(t, "tok")

	// Claims point at a different user than the stored session.
	jwtService.On("VerifyRefreshToken", "tok").Return(refreshClaims("attacker", "tok1"), nil)
	sessionRepo.On("FindByTokenID", ctx, "tok1").Return(session, nil)

	_, err := svc.Refresh(ctx, "tok")

	assert.ErrorIs(t, err, service.ErrRefreshInvalid)
}

func TestRefresh_HashMismatch(t *testing.T) {
	svc, _, sessionRepo, jwtService := newTestAuthService()
	ctx := context.Background()
	session, claims := refreshFixture(t, "the-original-token")

	// A forged token that decodes to the right token_id but was never
	// the one hashed into the session row.
	jwtService.On("VerifyRefreshToken", "a-different-token").Return(claims, nil)
	sessionRepo.On("FindByTokenID", ctx, "tok1").Return(session, nil)

	_, err := svc.Refresh(ctx, "a-different-token")

	assert.ErrorIs(t, err, service.ErrRefreshInvalid)
}

func TestRefresh_UserDeleted(t *testing.T) {
	svc, userRepo, sessionRepo, jwtService := newTestAuthService()
	ctx := context.Background()
	session, claims := refreshFixture(t, "tok")

	jwtService.On("VerifyRefreshToken", "tok").Return(claims, nil)
	sessionRepo.On("FindByTokenID", ctx, "tok1").Return(session, nil)
	userRepo.On("FindByID", ctx, "u1").Return(nil, repository.ErrNotFound)

	_, err := svc.Refresh(ctx, "tok")

	assert.ErrorIs(t, err, service.ErrRefreshInvalid)
}

// ===== LOGOUT =====

func TestLogout_RevokesSession(t *testing.T) {
	svc, _, sessionRepo, jwtService := newTestAuthService()
	ctx := context.Background()

	jwtService.On("VerifyRefreshToken", "tok").Return(refreshClaims("u1", "tok1"), nil)
	sessionRepo.On("Revoke", ctx, "tok1", mock.Anything).Return(nil)

	svc.Logout(ctx, "tok")

	sessionRepo.AssertExpectations(t)
}

func TestLogout_InvalidTokenIsSilent(t *testing.T) {
	svc, _, sessionRepo, jwtService := newTestAuthService()

	jwtService.On("VerifyRefreshToken", "garbage").Return(nil, security.ErrInvalidToken)

	svc.Logout(context.Background(), "garbage")

	sessionRepo.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogout_RevokeErrorIsSwallowed(t *testing.T) {
	svc, _, sessionRepo, jwtService := newTestAuthService()
	ctx := context.Background()

	jwtService.On("VerifyRefreshToken", "tok").Return(refreshClaims("u1", "tok1"), nil)
	sessionRepo.On("Revoke", ctx, "tok1", mock.Anything).Return(errors.New("db down"))

	// Must not panic, must not propagate.
	svc.Logout(ctx, "tok")
}

// ===== CLEANUP =====

func TestCleanupExpiredSessions(t *testing.T) {
	svc, _, sessionRepo, _ := newTestAuthService()
	ctx := context.Background()

	sessionRepo.On("DeleteExpired", ctx, mock.Anything).Return(int64(3), nil)

	deleted, err := svc.CleanupExpiredSessions(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}
