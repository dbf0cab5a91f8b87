package requestresponse

import "multipoles-backend/internal/model"

// LoginRequest : credentials posted to /auth/login
type LoginRequest struct {
	Email    string `json:"email" example:"admin@multipoles.fr"`
	Password string `json:"password" example:"P@ssw0rd123"`
}

func (r *LoginRequest) Validate() error {
	errs := fieldErrors{}
	errs.require("email", r.Email)
	errs.require("password", r.Password)
	if _, ok := errs["email"]; !ok {
		errs.email("email", r.Email)
	}
	return errs.err()
}

// RefreshTokenRequest : body for /auth/refresh and /auth/logout
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" example:"eyJhbGciOiJIUzUxMiIs..."`
}

func (r *RefreshTokenRequest) Validate() error {
	errs := fieldErrors{}
	errs.require("refreshToken", r.RefreshToken)
	return errs.err()
}

// LoginResponse : token pair plus the authenticated user
type LoginResponse struct {
	Tokens model.TokensPair  `json:"tokens"`
	User   *model.PublicUser `json:"user"`
}

// RefreshTokenResponse : fresh access token, refresh token unchanged
type RefreshTokenResponse struct {
	AccessToken  string `json:"accessToken" example:"eyJhbGciOiJIUzUxMiIs..."`
	RefreshToken string `json:"refreshToken" example:"eyJhbGciOiJIUzUxMiIs..."`
}
