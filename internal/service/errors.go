package service

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong
	// password; callers must not learn which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrRefreshInvalid is the only failure a refresh can surface.
	// Bad signature, expiry, unknown token id, hash mismatch,
	// revocation and subject mismatch all collapse into it.
	ErrRefreshInvalid = errors.New("refresh token invalid")

	ErrEmailTaken = errors.New("email already in use")
)
