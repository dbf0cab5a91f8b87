package model

import "time"

// RefreshSession is the server-side record backing a refresh token.
// Rows are written once on login and only ever mutated to flip revoked;
// re-authentication always creates a new row.
type RefreshSession struct {
	Base
	TokenID   string     `db:"token_id"`
	TokenHash string     `db:"token_hash"`
	UserID    string     `db:"user_id"`
	ExpiresAt time.Time  `db:"expires_at"`
	Revoked   bool       `db:"revoked"`
	RevokedAt *time.Time `db:"revoked_at"`
	UserAgent *string    `db:"user_agent"`
	IPAddress *string    `db:"ip_address"`
}

// Usable reports whether the session may still authorize a refresh.
func (s *RefreshSession) Usable(now time.Time) bool {
	return !s.Revoked && s.ExpiresAt.After(now)
}

type TokensPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthResult is what a successful login hands back to the client.
type AuthResult struct {
	Tokens TokensPair  `json:"tokens"`
	User   *PublicUser `json:"user"`
}
