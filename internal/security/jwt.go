package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"multipoles-backend/config"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	tokenIssuer = "multipoles-backend"
)

var ErrInvalidToken = errors.New("invalid token")

// AccessClaims is the payload of a short-lived access token.
// Subject carries the user id.
type AccessClaims struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// RefreshClaims is the payload of a refresh token. TokenID is the
// lookup key into the session store, never the token itself.
type RefreshClaims struct {
	TokenID   string `json:"token_id"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies tokens with two independent secrets so
// that leaking one key cannot be used to mint the other token kind.
type JWTService struct {
	*config.JWTConfig
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{cfg}
}

func (service *JWTService) IssueAccessToken(userID, email, role string) (string, error) {
	ttl, err := time.ParseDuration(service.AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("parsing access token ttl: %w", err)
	}

	claims := AccessClaims{
		Email:     email,
		Role:      role,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    tokenIssuer,
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(service.AccessSecret))
}

func (service *JWTService) IssueRefreshToken(userID, tokenID string) (string, error) {
	ttl, err := service.RefreshTTL()
	if err != nil {
		return "", err
	}

	claims := RefreshClaims{
		TokenID:   tokenID,
		TokenType: TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    tokenIssuer,
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(service.RefreshSecret))
}

func (service *JWTService) VerifyAccessToken(tokenStr string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := service.parse(tokenStr, claims, []byte(service.AccessSecret)); err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (service *JWTService) VerifyRefreshToken(tokenStr string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := service.parse(tokenStr, claims, []byte(service.RefreshSecret)); err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (service *JWTService) parse(tokenStr string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	return nil
}

// RefreshTTL exposes the parsed refresh lifetime so the session store
// can stamp the same expiry on the persisted row.
func (service *JWTService) RefreshTTL() (time.Duration, error) {
	ttl, err := time.ParseDuration(service.RefreshTokenTTL)
	if err != nil {
		return 0, fmt.Errorf("parsing refresh token ttl: %w", err)
	}
	return ttl, nil
}
